// Package gpuplan decides which GPU kernel strategy applies to the operations
// of a tensor program.
//
// It is the decision layer a code-generation driver consults per operation:
//
//   - Reductions: GetReductionKindAndContiguousComponents classifies an
//     eligible reduction into the canonical [depth, height, width] form and
//     labels it a row or column reduction; GetReductionTiling picks per-thread
//     tile sizes for it; ReductionIsRaceFree proves (or refuses to prove) that
//     the tiled kernel needs no atomics. PlanReduction chains the three.
//   - Contractions: GetConvKind tells which of the cuDNN convolution calls a
//     rewritten operation is; IsCublasGemm, IsCustomCallToBatchNorm and
//     IsCustomCallToSolver identify the other library-call families;
//     IsMatrixMultiplication identifies a not-yet-rewritten dot that a GEMM
//     rewrite pass would accept.
//
// The package never mutates the operation graph and keeps no state: every
// function is a pure function of the operation view and the DeviceInfo passed
// in, so concurrent callers are safe by construction.
//
// A negative answer is routing, not failure: ErrIneligibleReduction,
// ErrNotAContraction and a false from ReductionIsRaceFree all mean "use the
// slower, always-correct strategy instead".
package gpuplan

import (
	"slices"

	"github.com/gomlx/gpuplan/types/optypes"
	"github.com/gomlx/gpuplan/types/shapes"
)

// OpView is the read-only view of one operation that all classifiers work
// against. It decouples the decisions from any concrete graph representation:
// *ir.Instruction implements it for graph nodes, and OpInfo implements it for
// callers that only hold flattened per-operation data.
//
// Accessors that don't apply to the opcode return zero values: CallTarget is
// empty unless OpType is CustomCall, ReduceAxes is nil unless it's Reduce.
type OpView interface {
	// OpType returns the operation's opcode.
	OpType() optypes.OpType

	// CallTarget returns the library call target, for CustomCall operations.
	CallTarget() string

	// NumOperands returns the number of operands.
	NumOperands() int

	// OperandShape returns the shape (with physical layout) of the i-th operand.
	OperandShape(i int) shapes.Shape

	// OutputShape returns the result shape.
	OutputShape() shapes.Shape

	// ReduceAxes returns the reduced axes, for Reduce operations.
	ReduceAxes() []int
}

// OpInfo is a self-contained OpView: a flat record of the facts the
// classifiers query, with no graph behind it. It is the representation used
// after buffer assignment, when the driver no longer walks instruction
// pointers but still needs strategy decisions.
type OpInfo struct {
	Type     optypes.OpType
	Target   string
	Operands []shapes.Shape
	Output   shapes.Shape
	Axes     []int
}

// OpType implements OpView.
func (op OpInfo) OpType() optypes.OpType { return op.Type }

// CallTarget implements OpView.
func (op OpInfo) CallTarget() string { return op.Target }

// NumOperands implements OpView.
func (op OpInfo) NumOperands() int { return len(op.Operands) }

// OperandShape implements OpView.
func (op OpInfo) OperandShape(i int) shapes.Shape { return op.Operands[i] }

// OutputShape implements OpView.
func (op OpInfo) OutputShape() shapes.Shape { return op.Output }

// ReduceAxes implements OpView.
func (op OpInfo) ReduceAxes() []int { return slices.Clone(op.Axes) }
