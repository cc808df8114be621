// Code generated by "enumer -type=OpType -output=gen_optype_enumer.go optypes.go"; DO NOT EDIT.

package optypes

import (
	"fmt"
	"strings"
)

const _OpTypeName = "InvalidParameterConstantAddMultiplyMaximumReduceDotConvolutionCholeskyBatchNormForInferenceBatchNormForTrainingBatchNormGradientTransposeReshapeSliceTupleFusionCustomCallLast"

var _OpTypeIndex = [...]uint8{0, 7, 16, 24, 27, 35, 42, 48, 51, 62, 70, 91, 111, 128, 137, 144, 149, 154, 160, 170, 174}

const _OpTypeLowerName = "invalidparameterconstantaddmultiplymaximumreducedotconvolutioncholeskybatchnormforinferencebatchnormfortrainingbatchnormgradienttransposereshapeslicetuplefusioncustomcalllast"

func (i OpType) String() string {
	if i < 0 || i >= OpType(len(_OpTypeIndex)-1) {
		return fmt.Sprintf("OpType(%d)", i)
	}
	return _OpTypeName[_OpTypeIndex[i]:_OpTypeIndex[i+1]]
}

// An "invalid array index" compiler error signifies that the constant values have changed.
// Re-run the enumer command to generate them again.
func _OpTypeNoOp() {
	var x [1]struct{}
	_ = x[Invalid-(0)]
	_ = x[Parameter-(1)]
	_ = x[Constant-(2)]
	_ = x[Add-(3)]
	_ = x[Multiply-(4)]
	_ = x[Maximum-(5)]
	_ = x[Reduce-(6)]
	_ = x[Dot-(7)]
	_ = x[Convolution-(8)]
	_ = x[Cholesky-(9)]
	_ = x[BatchNormForInference-(10)]
	_ = x[BatchNormForTraining-(11)]
	_ = x[BatchNormGradient-(12)]
	_ = x[Transpose-(13)]
	_ = x[Reshape-(14)]
	_ = x[Slice-(15)]
	_ = x[Tuple-(16)]
	_ = x[Fusion-(17)]
	_ = x[CustomCall-(18)]
	_ = x[Last-(19)]
}

var _OpTypeValues = []OpType{Invalid, Parameter, Constant, Add, Multiply, Maximum, Reduce, Dot, Convolution, Cholesky, BatchNormForInference, BatchNormForTraining, BatchNormGradient, Transpose, Reshape, Slice, Tuple, Fusion, CustomCall, Last}

var _OpTypeNameToValueMap = map[string]OpType{
	_OpTypeName[0:7]:      Invalid,
	_OpTypeLowerName[0:7]: Invalid,
	_OpTypeName[7:16]:      Parameter,
	_OpTypeLowerName[7:16]: Parameter,
	_OpTypeName[16:24]:      Constant,
	_OpTypeLowerName[16:24]: Constant,
	_OpTypeName[24:27]:      Add,
	_OpTypeLowerName[24:27]: Add,
	_OpTypeName[27:35]:      Multiply,
	_OpTypeLowerName[27:35]: Multiply,
	_OpTypeName[35:42]:      Maximum,
	_OpTypeLowerName[35:42]: Maximum,
	_OpTypeName[42:48]:      Reduce,
	_OpTypeLowerName[42:48]: Reduce,
	_OpTypeName[48:51]:      Dot,
	_OpTypeLowerName[48:51]: Dot,
	_OpTypeName[51:62]:      Convolution,
	_OpTypeLowerName[51:62]: Convolution,
	_OpTypeName[62:70]:      Cholesky,
	_OpTypeLowerName[62:70]: Cholesky,
	_OpTypeName[70:91]:      BatchNormForInference,
	_OpTypeLowerName[70:91]: BatchNormForInference,
	_OpTypeName[91:111]:      BatchNormForTraining,
	_OpTypeLowerName[91:111]: BatchNormForTraining,
	_OpTypeName[111:128]:      BatchNormGradient,
	_OpTypeLowerName[111:128]: BatchNormGradient,
	_OpTypeName[128:137]:      Transpose,
	_OpTypeLowerName[128:137]: Transpose,
	_OpTypeName[137:144]:      Reshape,
	_OpTypeLowerName[137:144]: Reshape,
	_OpTypeName[144:149]:      Slice,
	_OpTypeLowerName[144:149]: Slice,
	_OpTypeName[149:154]:      Tuple,
	_OpTypeLowerName[149:154]: Tuple,
	_OpTypeName[154:160]:      Fusion,
	_OpTypeLowerName[154:160]: Fusion,
	_OpTypeName[160:170]:      CustomCall,
	_OpTypeLowerName[160:170]: CustomCall,
	_OpTypeName[170:174]:      Last,
	_OpTypeLowerName[170:174]: Last,
}

var _OpTypeNames = []string{
	_OpTypeName[0:7],
	_OpTypeName[7:16],
	_OpTypeName[16:24],
	_OpTypeName[24:27],
	_OpTypeName[27:35],
	_OpTypeName[35:42],
	_OpTypeName[42:48],
	_OpTypeName[48:51],
	_OpTypeName[51:62],
	_OpTypeName[62:70],
	_OpTypeName[70:91],
	_OpTypeName[91:111],
	_OpTypeName[111:128],
	_OpTypeName[128:137],
	_OpTypeName[137:144],
	_OpTypeName[144:149],
	_OpTypeName[149:154],
	_OpTypeName[154:160],
	_OpTypeName[160:170],
	_OpTypeName[170:174],
}

// OpTypeString retrieves an enum value from the enum constants string name.
// Throws an error if the param is not part of the enum.
func OpTypeString(s string) (OpType, error) {
	if val, ok := _OpTypeNameToValueMap[s]; ok {
		return val, nil
	}

	if val, ok := _OpTypeNameToValueMap[strings.ToLower(s)]; ok {
		return val, nil
	}
	return 0, fmt.Errorf("%s does not belong to OpType values", s)
}

// OpTypeValues returns all values of the enum
func OpTypeValues() []OpType {
	return _OpTypeValues
}

// OpTypeStrings returns a slice of all String values of the enum
func OpTypeStrings() []string {
	strs := make([]string, len(_OpTypeNames))
	copy(strs, _OpTypeNames)
	return strs
}

// IsAOpType returns "true" if the value is listed in the enum definition. "false" otherwise
func (i OpType) IsAOpType() bool {
	for _, v := range _OpTypeValues {
		if i == v {
			return true
		}
	}
	return false
}
