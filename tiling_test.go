package gpuplan

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ampere = NewDeviceInfo(ComputeCapability{Major: 8, Minor: 0})

func TestComputeCapability(t *testing.T) {
	cc := ComputeCapability{Major: 7, Minor: 5}
	assert.Equal(t, "7.5", cc.String())
	assert.True(t, cc.IsAtLeast(7, 5))
	assert.True(t, cc.IsAtLeast(6, 0))
	assert.False(t, cc.IsAtLeast(8, 0))
	assert.False(t, cc.IsAtLeast(7, 6))
}

func TestGetReductionTiling(t *testing.T) {
	// Row reduction: the depth tile follows the batch, capped at the
	// race-free bound; the width is unrolled 16x per thread.
	rowDims := ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{1, 4, 12800}}
	assert.Equal(t, [3]int{1, 1, 16}, GetReductionTiling(rowDims, ampere))

	batchedDims := ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{5, 100, 64}}
	assert.Equal(t, [3]int{5, 1, 16}, GetReductionTiling(batchedDims, ampere))

	largeBatchDims := ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{100, 100, 64}}
	assert.Equal(t, [3]int{8, 1, 16}, GetReductionTiling(largeBatchDims, ampere))

	// Column reduction.
	columnDims := ReductionDimensions{IsRowReduction: false, Dimensions: [3]int{8, 4096, 2}}
	assert.Equal(t, [3]int{1, 128, 1}, GetReductionTiling(columnDims, ampere))

	// Determinism: identical inputs, identical plan.
	assert.Equal(t, GetReductionTiling(batchedDims, ampere), GetReductionTiling(batchedDims, ampere))
}

func TestReductionIsRaceFree(t *testing.T) {
	// Row reduction: the whole width must fit one block...
	atWidthBound := ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{1, 4, 16 * 1024}}
	assert.True(t, ReductionIsRaceFree(atWidthBound, GetReductionTiling(atWidthBound, ampere), ampere))
	overWidthBound := ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{1, 4, 16*1024 + 1}}
	assert.False(t, ReductionIsRaceFree(overWidthBound, GetReductionTiling(overWidthBound, ampere), ampere))

	// ... and a batched row reduction must keep the batch within the bound,
	// for any tiling.
	overBatchBound := ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{9, 100, 64}}
	for _, tiling := range [][3]int{
		GetReductionTiling(overBatchBound, ampere),
		{1, 1, 16},
		{9, 1, 64},
		{16, 8, 1024},
	} {
		assert.Falsef(t, ReductionIsRaceFree(overBatchBound, tiling, ampere),
			"batch of 9 must never be race-free, tiling %v", tiling)
	}
	atBatchBound := ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{8, 100, 64}}
	assert.True(t, ReductionIsRaceFree(atBatchBound, GetReductionTiling(atBatchBound, ampere), ampere))

	// Column reduction: the reduced height must fit the block's warps.
	atHeightBound := ReductionDimensions{IsRowReduction: false, Dimensions: [3]int{8, 32 * 128, 2}}
	assert.True(t, ReductionIsRaceFree(atHeightBound, GetReductionTiling(atHeightBound, ampere), ampere))
	overHeightBound := ReductionDimensions{IsRowReduction: false, Dimensions: [3]int{8, 32*128 + 1, 2}}
	assert.False(t, ReductionIsRaceFree(overHeightBound, GetReductionTiling(overHeightBound, ampere), ampere))

	// The bounds come from the device description, not from package state.
	relaxed := ampere
	relaxed.BatchedReductionRaceFreeBound = 16
	assert.True(t, ReductionIsRaceFree(overBatchBound, GetReductionTiling(overBatchBound, relaxed), relaxed))
}

func TestShouldTileReduction(t *testing.T) {
	row := func(width int) ReductionDimensions {
		return ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{1, 8, width}}
	}
	assert.False(t, ShouldTileReduction(row(31), ampere))
	assert.True(t, ShouldTileReduction(row(32), ampere))

	column := func(height, width int) ReductionDimensions {
		return ReductionDimensions{IsRowReduction: false, Dimensions: [3]int{1, height, width}}
	}
	assert.False(t, ShouldTileReduction(column(16, 1000), ampere)) // Height below a warp.
	assert.False(t, ShouldTileReduction(column(48, 16), ampere))
	assert.False(t, ShouldTileReduction(column(100, 4), ampere))
	assert.False(t, ShouldTileReduction(column(200, 2), ampere))
	assert.True(t, ShouldTileReduction(column(48, 64), ampere))
	assert.True(t, ShouldTileReduction(column(1024, 1024), ampere))
}

func TestPlanReduction(t *testing.T) {
	plan := must.M1(PlanReduction(reduceOp(t, S(F32, 8, 4, 2), 2), ampere))
	assert.True(t, plan.Dimensions.IsRowReduction)
	assert.Equal(t, [3]int{8, 4, 2}, plan.Dimensions.Dimensions)
	assert.Equal(t, [3]int{8, 1, 16}, plan.Tiling)
	assert.True(t, plan.RaceFree)

	// A batch beyond the bound still gets a plan, just not a race-free one.
	batched := must.M1(PlanReduction(reduceOp(t, S(F32, 100, 64, 512), 0, 2), ampere))
	assert.True(t, batched.Dimensions.IsRowReduction)
	assert.Equal(t, [3]int{100, 64, 512}, batched.Dimensions.Dimensions)
	assert.False(t, batched.RaceFree)

	// Ineligible reductions don't get a plan at all.
	_, err := PlanReduction(reduceOp(t, S(F32, 4, 5, 6, 7), 0, 2), ampere)
	require.ErrorIs(t, err, ErrIneligibleReduction)

	// Determinism, including the device descriptor.
	again := must.M1(PlanReduction(reduceOp(t, S(F32, 8, 4, 2), 2), ampere))
	assert.Equal(t, plan, again)
}
