// Code generated by "enumer -type=ConvKind -trimprefix=Conv -output=gen_convkind_enumer.go customcall.go"; DO NOT EDIT.

package gpuplan

import (
	"fmt"
	"strings"
)

const _ConvKindName = "ForwardBackwardInputBackwardFilterForwardActivation"

var _ConvKindIndex = [...]uint8{0, 7, 20, 34, 51}

const _ConvKindLowerName = "forwardbackwardinputbackwardfilterforwardactivation"

func (i ConvKind) String() string {
	if i < 0 || i >= ConvKind(len(_ConvKindIndex)-1) {
		return fmt.Sprintf("ConvKind(%d)", i)
	}
	return _ConvKindName[_ConvKindIndex[i]:_ConvKindIndex[i+1]]
}

// An "invalid array index" compiler error signifies that the constant values have changed.
// Re-run the enumer command to generate them again.
func _ConvKindNoOp() {
	var x [1]struct{}
	_ = x[ConvForward-(0)]
	_ = x[ConvBackwardInput-(1)]
	_ = x[ConvBackwardFilter-(2)]
	_ = x[ConvForwardActivation-(3)]
}

var _ConvKindValues = []ConvKind{ConvForward, ConvBackwardInput, ConvBackwardFilter, ConvForwardActivation}

var _ConvKindNameToValueMap = map[string]ConvKind{
	_ConvKindName[0:7]:      ConvForward,
	_ConvKindLowerName[0:7]: ConvForward,
	_ConvKindName[7:20]:      ConvBackwardInput,
	_ConvKindLowerName[7:20]: ConvBackwardInput,
	_ConvKindName[20:34]:      ConvBackwardFilter,
	_ConvKindLowerName[20:34]: ConvBackwardFilter,
	_ConvKindName[34:51]:      ConvForwardActivation,
	_ConvKindLowerName[34:51]: ConvForwardActivation,
}

var _ConvKindNames = []string{
	_ConvKindName[0:7],
	_ConvKindName[7:20],
	_ConvKindName[20:34],
	_ConvKindName[34:51],
}

// ConvKindString retrieves an enum value from the enum constants string name.
// Throws an error if the param is not part of the enum.
func ConvKindString(s string) (ConvKind, error) {
	if val, ok := _ConvKindNameToValueMap[s]; ok {
		return val, nil
	}

	if val, ok := _ConvKindNameToValueMap[strings.ToLower(s)]; ok {
		return val, nil
	}
	return 0, fmt.Errorf("%s does not belong to ConvKind values", s)
}

// ConvKindValues returns all values of the enum
func ConvKindValues() []ConvKind {
	return _ConvKindValues
}

// ConvKindStrings returns a slice of all String values of the enum
func ConvKindStrings() []string {
	strs := make([]string, len(_ConvKindNames))
	copy(strs, _ConvKindNames)
	return strs
}

// IsAConvKind returns "true" if the value is listed in the enum definition. "false" otherwise
func (i ConvKind) IsAConvKind() bool {
	for _, v := range _ConvKindValues {
		if i == v {
			return true
		}
	}
	return false
}
