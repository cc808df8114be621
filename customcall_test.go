package gpuplan

import (
	"testing"

	"github.com/gomlx/gpuplan/ir"
	"github.com/gomlx/gpuplan/types/optypes"
	"github.com/gomlx/gpuplan/types/shapes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// convCall builds a CustomCall with the conventional {result, scratch} tuple
// output of the convolution library calls.
func convCall(target string) *ir.Instruction {
	input := ir.NewParameter("input", S(F32, 1, 28, 28, 64))
	filter := ir.NewParameter("filter", S(F32, 3, 3, 64, 64))
	output := shapes.MakeTuple([]shapes.Shape{S(F32, 1, 26, 26, 64), S(U8, 1<<20)})
	return ir.NewCustomCall(target, output, input, filter)
}

func TestGetConvKind(t *testing.T) {
	testCases := []struct {
		target string
		want   ConvKind
	}{
		{ConvForwardCallTarget, ConvForward},
		{ConvBackwardInputCallTarget, ConvBackwardInput},
		{ConvBackwardFilterCallTarget, ConvBackwardFilter},
		{ConvBiasActivationForwardCallTarget, ConvForwardActivation},
	}
	for _, testCase := range testCases {
		t.Run(testCase.target, func(t *testing.T) {
			got := must.M1(GetConvKind(convCall(testCase.target)))
			assert.Equal(t, testCase.want, got)
		})
	}

	// An unrecognized target is not a contraction call.
	_, err := GetConvKind(convCall("__cudnn$someFutureCall"))
	require.ErrorIs(t, err, ErrNotAContraction)

	// Neither is a generic Convolution that no rewrite pass has touched.
	generic := ir.NewConvolution(
		ir.NewParameter("input", S(F32, 1, 28, 28, 64)),
		ir.NewParameter("filter", S(F32, 3, 3, 64, 64)),
		S(F32, 1, 26, 26, 64))
	_, err = GetConvKind(generic)
	require.ErrorIs(t, err, ErrNotAContraction)
}

func TestConvKindStrings(t *testing.T) {
	assert.Equal(t, "Forward", ConvForward.String())
	assert.Equal(t, "BackwardInput", ConvBackwardInput.String())
	assert.Equal(t, "BackwardFilter", ConvBackwardFilter.String())
	assert.Equal(t, "ForwardActivation", ConvForwardActivation.String())
}

func TestCallTargetFromString(t *testing.T) {
	assert.Equal(t, CallTargetGemm, CallTargetFromString(GemmCallTarget))
	assert.Equal(t, CallTargetCholesky, CallTargetFromString(CholeskyCallTarget))
	assert.Equal(t, CallTargetUnknown, CallTargetFromString("not_a_target"))
	assert.Equal(t, CallTargetUnknown, CallTargetFromString(""))
	assert.Equal(t, "Gemm", CallTargetGemm.String())
	assert.Equal(t, "BatchNormForwardTraining", CallTargetBatchNormForwardTraining.String())
}

func TestCustomCallPredicates(t *testing.T) {
	assert.True(t, IsCustomCallToConvolution(convCall(ConvForwardCallTarget)))
	assert.True(t, IsCustomCallToConvolution(convCall(ConvBackwardFilterCallTarget)))
	assert.False(t, IsCustomCallToConvolution(convCall(GemmCallTarget)))
	assert.False(t, IsCustomCallToConvolution(ir.NewParameter("x", S(F32, 4))))

	gemm := ir.NewCustomCall(GemmCallTarget, S(F32, 4, 16),
		ir.NewParameter("lhs", S(F32, 4, 8)), ir.NewParameter("rhs", S(F32, 8, 16)))
	assert.True(t, IsCublasGemm(gemm))
	assert.False(t, IsCublasGemm(convCall(ConvForwardCallTarget)))
	// A generic Dot is not a GEMM call until the rewrite pass converts it.
	dot := must.M1(ir.NewDot(ir.NewParameter("lhs", S(F32, 4, 8)), ir.NewParameter("rhs", S(F32, 8, 16))))
	assert.False(t, IsCublasGemm(dot))

	for _, target := range []string{
		BatchNormForwardInferenceCallTarget,
		BatchNormForwardTrainingCallTarget,
		BatchNormBackwardCallTarget,
	} {
		call := ir.NewCustomCall(target, S(F32, 1, 28, 28, 64),
			ir.NewParameter("operand", S(F32, 1, 28, 28, 64)))
		assert.Truef(t, IsCustomCallToBatchNorm(call), "target %s", target)
	}
	// Generic batch-norm opcodes are not library calls.
	for _, opType := range []optypes.OpType{
		optypes.BatchNormForInference,
		optypes.BatchNormForTraining,
		optypes.BatchNormGradient,
	} {
		generic := OpInfo{Type: opType, Output: S(F32, 1, 28, 28, 64)}
		assert.Falsef(t, IsCustomCallToBatchNorm(generic), "opType %s", opType)
	}

	choleskyOutput := must.M1(CholeskyOutputShape(S(F32, 4, 16, 16), 1000))
	cholesky := ir.NewCustomCall(CholeskyCallTarget, choleskyOutput,
		ir.NewParameter("a", S(F32, 4, 16, 16)))
	assert.True(t, IsCustomCallToSolver(cholesky))
	assert.False(t, IsCustomCallToSolver(OpInfo{Type: optypes.Cholesky, Output: S(F32, 4, 16, 16)}))
}

func TestIsMatrixMultiplication(t *testing.T) {
	dot := must.M1(ir.NewDot(ir.NewParameter("lhs", S(F32, 4, 8)), ir.NewParameter("rhs", S(F32, 8, 16))))
	assert.True(t, IsMatrixMultiplication(dot))

	// Integer matrix multiplications have no library routine.
	intDot := must.M1(ir.NewDot(ir.NewParameter("lhs", S(I32, 4, 8)), ir.NewParameter("rhs", S(I32, 8, 16))))
	assert.False(t, IsMatrixMultiplication(intDot))

	// Batched (rank-3) dots are out: only plain rank-2 operands qualify.
	batched := OpInfo{
		Type:     optypes.Dot,
		Operands: []shapes.Shape{S(F32, 2, 4, 8), S(F32, 2, 8, 16)},
		Output:   S(F32, 2, 4, 16),
	}
	assert.False(t, IsMatrixMultiplication(batched))

	// Already-rewritten GEMM calls are classified by IsCublasGemm instead.
	gemm := ir.NewCustomCall(GemmCallTarget, S(F32, 4, 16),
		ir.NewParameter("lhs", S(F32, 4, 8)), ir.NewParameter("rhs", S(F32, 8, 16)))
	assert.False(t, IsMatrixMultiplication(gemm))
}

func TestCholeskyOutputShape(t *testing.T) {
	tuple := must.M1(CholeskyOutputShape(S(F32, 4, 16, 16), 1000))
	require.True(t, tuple.IsTuple())
	require.Equal(t, 3, tuple.TupleSize())
	assert.True(t, tuple.TupleShapes[0].Equal(S(F32, 4, 16, 16)))
	assert.True(t, tuple.TupleShapes[1].Equal(S(F32, 1000)))
	assert.True(t, tuple.TupleShapes[2].Equal(S(I32, 4)))

	// An unbatched matrix gets a scalar info.
	unbatched := must.M1(CholeskyOutputShape(S(F32, 16, 16), 512))
	assert.Equal(t, 0, unbatched.TupleShapes[2].Rank())

	_, err := CholeskyOutputShape(S(F32, 16), 512)
	require.Error(t, err) // Rank too low.
	_, err = CholeskyOutputShape(S(F32, 16, 8), 512)
	require.Error(t, err) // Not square.
	_, err = CholeskyOutputShape(S(I32, 16, 16), 512)
	require.Error(t, err) // Integer input.
}
