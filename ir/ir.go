// Package ir provides a minimal operation-graph representation for the
// kernel-strategy classifiers.
//
// It is deliberately small: an Instruction records only what the decision
// layer queries -- opcode, operands, result shape, reduced axes and the
// custom-call target. It is one of the two operation representations accepted
// by the classifiers (see gpuplan.OpView for the other, graph-free one);
// everything in this package is read-only after construction.
package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gpuplan/types/optypes"
	"github.com/gomlx/gpuplan/types/shapes"
	"github.com/pkg/errors"
)

// Instruction is one node of the operation graph. Immutable once constructed.
type Instruction struct {
	opType     optypes.OpType
	name       string
	operands   []*Instruction
	shape      shapes.Shape
	reduceAxes []int
	callTarget string
}

// New creates a generic instruction with the given result shape and operands.
// Use the specialized constructors (NewReduce, NewDot, NewCustomCall, ...)
// for the operations that carry extra metadata.
func New(opType optypes.OpType, shape shapes.Shape, operands ...*Instruction) *Instruction {
	return &Instruction{opType: opType, shape: shape, operands: operands}
}

// NewParameter creates a graph input with the given name and shape.
func NewParameter(name string, shape shapes.Shape) *Instruction {
	return &Instruction{opType: optypes.Parameter, name: name, shape: shape}
}

// NewConstant creates a constant of the given shape. The decision layer never
// looks at constant data, so none is stored.
func NewConstant(shape shapes.Shape) *Instruction {
	return &Instruction{opType: optypes.Constant, shape: shape}
}

// NewReduce creates a reduction of operand over the given axes, seeded with
// initialValue (a scalar of the operand's dtype).
//
// The result shape keeps the non-reduced axes in their logical order, with
// the default layout: the physical layout of a reduction output is a later
// layout-assignment concern, not an input property.
func NewReduce(operand, initialValue *Instruction, axes ...int) (*Instruction, error) {
	input := operand.Shape()
	seen := make([]bool, input.Rank())
	for _, axis := range axes {
		if axis < 0 || axis >= input.Rank() {
			return nil, errors.Errorf("NewReduce: axis %d out of range for input %s", axis, input)
		}
		if seen[axis] {
			return nil, errors.Errorf("NewReduce: axis %d given more than once", axis)
		}
		seen[axis] = true
	}
	if !initialValue.Shape().IsScalar() || initialValue.Shape().DType != input.DType {
		return nil, errors.Errorf("NewReduce: initial value must be a scalar %s, got %s",
			input.DType, initialValue.Shape())
	}
	var keptDims []int
	for axis, dim := range input.Dimensions {
		if !seen[axis] {
			keptDims = append(keptDims, dim)
		}
	}
	return &Instruction{
		opType:     optypes.Reduce,
		operands:   []*Instruction{operand, initialValue},
		shape:      shapes.Make(input.DType, keptDims...),
		reduceAxes: slices.Clone(axes),
	}, nil
}

// NewDot creates a matrix multiplication lhs x rhs. Both operands must be
// rank-2 with a matching contracting dimension and the same dtype.
func NewDot(lhs, rhs *Instruction) (*Instruction, error) {
	lhsShape, rhsShape := lhs.Shape(), rhs.Shape()
	if lhsShape.DType != rhsShape.DType {
		return nil, errors.Errorf("NewDot: dtypes must match, got %s and %s", lhsShape, rhsShape)
	}
	if lhsShape.Rank() != 2 || rhsShape.Rank() != 2 {
		return nil, errors.Errorf("NewDot: operands must be rank-2, got %s and %s", lhsShape, rhsShape)
	}
	if lhsShape.Dimensions[1] != rhsShape.Dimensions[0] {
		return nil, errors.Errorf("NewDot: contracting dimensions don't match, got %s and %s", lhsShape, rhsShape)
	}
	return &Instruction{
		opType:   optypes.Dot,
		operands: []*Instruction{lhs, rhs},
		shape:    shapes.Make(lhsShape.DType, lhsShape.Dimensions[0], rhsShape.Dimensions[1]),
	}, nil
}

// NewConvolution creates a generic (not yet rewritten) convolution. The
// output shape is given by the caller: window/padding/dilation configuration
// is outside what the decision layer models.
func NewConvolution(input, kernel *Instruction, output shapes.Shape) *Instruction {
	return &Instruction{
		opType:   optypes.Convolution,
		operands: []*Instruction{input, kernel},
		shape:    output,
	}
}

// NewCustomCall creates an operation rewritten into a library call with the
// given call target. The result shape is often a tuple, e.g. a convolution
// call returns {result, scratch} and a cholesky call {result, workspace, info}.
func NewCustomCall(callTarget string, shape shapes.Shape, operands ...*Instruction) *Instruction {
	return &Instruction{
		opType:     optypes.CustomCall,
		operands:   operands,
		shape:      shape,
		callTarget: callTarget,
	}
}

// OpType returns the opcode of the instruction.
func (inst *Instruction) OpType() optypes.OpType { return inst.opType }

// Name returns the name given at construction, if any.
func (inst *Instruction) Name() string { return inst.name }

// Shape returns the result shape.
func (inst *Instruction) Shape() shapes.Shape { return inst.shape }

// OutputShape returns the result shape. Alias of Shape, named for the
// gpuplan.OpView interface.
func (inst *Instruction) OutputShape() shapes.Shape { return inst.shape }

// NumOperands returns the number of operands.
func (inst *Instruction) NumOperands() int { return len(inst.operands) }

// Operand returns the i-th operand instruction.
func (inst *Instruction) Operand(i int) *Instruction {
	if i < 0 || i >= len(inst.operands) {
		exceptions.Panicf("Instruction.Operand(%d) out-of-bounds, %s has %d operands", i, inst, len(inst.operands))
	}
	return inst.operands[i]
}

// OperandShape returns the shape of the i-th operand.
func (inst *Instruction) OperandShape(i int) shapes.Shape { return inst.Operand(i).Shape() }

// ReduceAxes returns a copy of the reduced axes, for Reduce instructions.
// It is nil for every other opcode.
func (inst *Instruction) ReduceAxes() []int { return slices.Clone(inst.reduceAxes) }

// CallTarget returns the library call target, for CustomCall instructions.
// It is empty for every other opcode.
func (inst *Instruction) CallTarget() string { return inst.callTarget }

// String implements fmt.Stringer.
func (inst *Instruction) String() string {
	var b strings.Builder
	b.WriteString(inst.opType.String())
	if inst.name != "" {
		fmt.Fprintf(&b, "(%q)", inst.name)
	}
	if inst.opType == optypes.Reduce {
		fmt.Fprintf(&b, "[axes=%v]", inst.reduceAxes)
	}
	if inst.callTarget != "" {
		fmt.Fprintf(&b, "[target=%q]", inst.callTarget)
	}
	fmt.Fprintf(&b, " -> %s", inst.shape)
	return b.String()
}
