package gpuplan

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gpuplan/internal/utils"
	"github.com/gomlx/gpuplan/types/optypes"
	"github.com/gomlx/gpuplan/types/shapes"
	"github.com/pkg/errors"
)

// ErrNotAContraction is returned (wrapped) by GetConvKind for operations that
// are not a recognized convolution library call -- including a generic
// Convolution that no rewrite pass has lowered yet. It means "this classifier
// does not apply here", not that the input is malformed.
var ErrNotAContraction = errors.New("operation is not a rewritten convolution library call")

// Call targets of the recognized library calls. A rewrite pass lowers generic
// operations into CustomCalls with one of these targets; the classifiers
// below only accept operations in that post-rewrite state.
const (
	// GemmCallTarget is a call to the general matrix-multiplication routine.
	GemmCallTarget = "__cublas$gemm"

	// Convolution call targets. A convolution relates three arrays -- input,
	// filter and output -- and given any two of them the third can be
	// computed; the target says which one is produced. These calls return a
	// tuple {result, scratch}: scratch is temporary library memory whose
	// content is not well-defined.
	ConvForwardCallTarget               = "__cudnn$convForward"
	ConvBackwardInputCallTarget         = "__cudnn$convBackwardInput"
	ConvBackwardFilterCallTarget        = "__cudnn$convBackwardFilter"
	ConvBiasActivationForwardCallTarget = "__cudnn$convBiasActivationForward"

	// CholeskyCallTarget is a call to the solver's batched Cholesky
	// factorization. It returns a tuple {result, workspace, info}, info being
	// a per-batch success/failure code (see CholeskyOutputShape).
	CholeskyCallTarget = "__cusolver$cholesky"

	// Batch-normalization call targets. epsilon and feature_index travel as
	// constant operands at the end of the operand list; the forward-training
	// call returns 1/sqrt(variance+epsilon) in place of plain variance, and
	// the backward call accepts it in place of the variance operand.
	BatchNormForwardInferenceCallTarget = "__cudnn$batchNormalizationForwardInference"
	BatchNormForwardTrainingCallTarget  = "__cudnn$batchNormalizationForwardTraining"
	BatchNormBackwardCallTarget         = "__cudnn$batchNormalizationBackward"
)

// CallTarget is the decoded identity of a library call. Strings coming from
// the IR are decoded once at the classification boundary; everything internal
// switches on this tag.
type CallTarget int

//go:generate go tool enumer -type=CallTarget -trimprefix=CallTarget -output=gen_calltarget_enumer.go customcall.go

const (
	CallTargetUnknown CallTarget = iota
	CallTargetGemm
	CallTargetConvForward
	CallTargetConvBackwardInput
	CallTargetConvBackwardFilter
	CallTargetConvBiasActivationForward
	CallTargetCholesky
	CallTargetBatchNormForwardInference
	CallTargetBatchNormForwardTraining
	CallTargetBatchNormBackward
)

var callTargetByString = map[string]CallTarget{
	GemmCallTarget:                      CallTargetGemm,
	ConvForwardCallTarget:               CallTargetConvForward,
	ConvBackwardInputCallTarget:         CallTargetConvBackwardInput,
	ConvBackwardFilterCallTarget:        CallTargetConvBackwardFilter,
	ConvBiasActivationForwardCallTarget: CallTargetConvBiasActivationForward,
	CholeskyCallTarget:                  CallTargetCholesky,
	BatchNormForwardInferenceCallTarget: CallTargetBatchNormForwardInference,
	BatchNormForwardTrainingCallTarget:  CallTargetBatchNormForwardTraining,
	BatchNormBackwardCallTarget:         CallTargetBatchNormBackward,
}

// CallTargetFromString decodes a call-target string. Anything outside the
// recognized set decodes to CallTargetUnknown.
func CallTargetFromString(s string) CallTarget {
	return callTargetByString[s]
}

// opCallTarget decodes the call target of op, or CallTargetUnknown for any
// operation that isn't a CustomCall.
func opCallTarget(op OpView) CallTarget {
	if op.OpType() != optypes.CustomCall {
		return CallTargetUnknown
	}
	return CallTargetFromString(op.CallTarget())
}

// ConvKind says which of the three arrays of a convolution relationship a
// rewritten convolution call produces, given the other two as operands.
//
// This describes shapes and connectivity, not values: a backward-input
// convolution is not the mathematical inverse of the forward one, but its
// output has the shape an input would need for the forward convolution to
// produce the given output.
type ConvKind int

//go:generate go tool enumer -type=ConvKind -trimprefix=Conv -output=gen_convkind_enumer.go customcall.go

const (
	// ConvForward computes: input + filter => output.
	ConvForward ConvKind = iota
	// ConvBackwardInput computes: filter + output => input.
	ConvBackwardInput
	// ConvBackwardFilter computes: input + output => filter.
	ConvBackwardFilter
	// ConvForwardActivation computes:
	// activation(conv(input, filter) + broadcast(bias) + optional side input) => output.
	ConvForwardActivation
)

// GetConvKind returns which convolution library call op is. It errors with
// (a wrapped) ErrNotAContraction for anything else, including a generic
// Convolution operation that has not been rewritten into a library call yet:
// kind classification is only meaningful post-rewrite, and guessing here
// would corrupt the generated kernel.
func GetConvKind(op OpView) (ConvKind, error) {
	switch opCallTarget(op) {
	case CallTargetConvForward:
		return ConvForward, nil
	case CallTargetConvBackwardInput:
		return ConvBackwardInput, nil
	case CallTargetConvBackwardFilter:
		return ConvBackwardFilter, nil
	case CallTargetConvBiasActivationForward:
		return ConvForwardActivation, nil
	}
	return 0, errors.WithMessagef(ErrNotAContraction, "op %s with call target %q",
		op.OpType(), op.CallTarget())
}

// IsCustomCallToConvolution returns whether op will run as a call to the
// convolution library. It is false for generic Convolution operations: those
// are either lowered to generic code or rewritten into one of these calls.
func IsCustomCallToConvolution(op OpView) bool {
	switch opCallTarget(op) {
	case CallTargetConvForward, CallTargetConvBackwardInput,
		CallTargetConvBackwardFilter, CallTargetConvBiasActivationForward:
		return true
	}
	return false
}

// IsCublasGemm returns whether op is a matrix multiplication already
// rewritten into a GEMM library call. After the GEMM rewrite pass, every
// dispatchable matrix multiplication is in this form.
func IsCublasGemm(op OpView) bool {
	return opCallTarget(op) == CallTargetGemm
}

// IsCustomCallToBatchNorm returns whether op will run as a call to a
// batch-normalization library routine. It is false for the generic batch-norm
// opcodes, which are lowered either to plain operations or to one of these
// calls.
func IsCustomCallToBatchNorm(op OpView) bool {
	switch opCallTarget(op) {
	case CallTargetBatchNormForwardInference, CallTargetBatchNormForwardTraining,
		CallTargetBatchNormBackward:
		return true
	}
	return false
}

// IsCustomCallToSolver returns whether op will run as a call to a solver
// routine (currently only the batched Cholesky factorization). It is false
// for a generic Cholesky opcode.
func IsCustomCallToSolver(op OpView) bool {
	return opCallTarget(op) == CallTargetCholesky
}

// gemmDTypes are the element types the matrix-multiplication library accepts.
var gemmDTypes = utils.SetWith(
	dtypes.Float16,
	dtypes.BFloat16,
	dtypes.Float32,
	dtypes.Float64,
	dtypes.Complex64,
	dtypes.Complex128,
)

// IsMatrixMultiplication returns whether op is a generic Dot that the GEMM
// rewrite pass would accept: a supported element type and plain rank-2
// operands and result. It never returns true for operations already rewritten
// into library calls -- see IsCublasGemm for those.
func IsMatrixMultiplication(op OpView) bool {
	if op.OpType() != optypes.Dot || op.NumOperands() < 2 {
		return false
	}
	output := op.OutputShape()
	if !gemmDTypes.Has(output.DType) {
		return false
	}
	lhs, rhs := op.OperandShape(0), op.OperandShape(1)
	if lhs.Size() == 0 || rhs.Size() == 0 {
		// Zero-element operands are folded away, never dispatched.
		return false
	}
	return lhs.Rank() == 2 && rhs.Rank() == 2 && output.Rank() == 2
}

// CholeskyOutputShape returns the tuple shape {result, workspace, info} of a
// Cholesky library call for the given (batched) matrix input: result has the
// input's shape, workspace is library scratch of workspaceSize elements, and
// info is one int32 status per batch element.
func CholeskyOutputShape(input shapes.Shape, workspaceSize int) (shapes.Shape, error) {
	if input.Rank() < 2 {
		return shapes.Invalid(), errors.Errorf("cholesky input must be a (batched) matrix, got %s", input)
	}
	if input.Dim(-1) != input.Dim(-2) {
		return shapes.Invalid(), errors.Errorf("cholesky input matrices must be square, got %s", input)
	}
	if !input.DType.IsFloat() && !input.DType.IsComplex() {
		return shapes.Invalid(), errors.Errorf("cholesky input must be float or complex, got %s", input)
	}
	batchDims := input.Dimensions[:input.Rank()-2]
	result := input.Clone()
	workspace := shapes.Make(input.DType, workspaceSize)
	info := shapes.Make(dtypes.Int32, batchDims...)
	return shapes.MakeTuple([]shapes.Shape{result, workspace, info}), nil
}
