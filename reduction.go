package gpuplan

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gpuplan/types/optypes"
	"github.com/gomlx/gpuplan/types/shapes"
	"github.com/pkg/errors"
)

// ErrIneligibleReduction is returned (wrapped) by
// GetReductionKindAndContiguousComponents when neither the reduced nor the
// kept axes are physically contiguous. It is recoverable: the caller must
// pick a non-specialized codegen strategy for that reduction.
var ErrIneligibleReduction = errors.New("reduction is neither from nor to physically contiguous dimensions")

// ReductionDimensions is the canonical form of an eligible reduction: the
// N-dimensional problem merged down to at most three contiguous components.
type ReductionDimensions struct {
	// IsRowReduction indicates a row reduction (reduced component is the
	// physically minor-most one) as opposed to a column reduction (reduced
	// component is interior, kept components on both sides).
	IsRowReduction bool

	// Dimensions holds the sizes of the three contiguous components
	// [depth, height, width], major-to-minor.
	//
	// For a row reduction the output keeps [depth, height] ([D, H, W] -> [D, H]);
	// in the batched variant depth is instead the leading reduced run, folded
	// into the same kernel. For a column reduction the output keeps
	// [depth, width] ([D, H, W] -> [D, W]).
	Dimensions [3]int
}

// IsReductionFromOrToContiguousDimensions returns whether op is a reduction
// whose reduced dimensions, or whose kept dimensions, are contiguous in the
// physical (minor-to-major) order of its input.
//
// This is the eligibility gate for GetReductionKindAndContiguousComponents
// and everything downstream of it. It returns false for any non-Reduce
// operation, and for a reduction over zero axes.
func IsReductionFromOrToContiguousDimensions(op OpView) bool {
	if op.OpType() != optypes.Reduce {
		return false
	}
	reduceAxes := op.ReduceAxes()
	if len(reduceAxes) == 0 {
		return false
	}
	input, _, keptAxes := splitReduceAxes(op)
	return input.AreAxesConsecutive(keptAxes) || input.AreAxesConsecutive(reduceAxes)
}

// GetReductionKindAndContiguousComponents classifies an eligible reduction
// into its canonical [depth, height, width] form:
//
//   - Physically adjacent axes of the same category (reduced vs kept) are
//     merged into single components, scanning major-to-minor; size-1 axes are
//     invisible in memory and dropped before merging.
//   - Reduced component minor-most, kept prefix before it: row reduction
//     [outer-kept, minor-most-kept, reduced].
//   - Reduced runs on both ends (batched row reduction):
//     [leading-reduced, kept, trailing-reduced].
//   - Reduced component interior or major-most: column reduction
//     [major-kept, reduced, minor-kept].
//   - A reduction over all axes is a degenerate row reduction [1, 1, size].
//
// Missing components are padded with 1, preserving canonical position.
//
// If neither axis category is contiguous it returns an error wrapping
// ErrIneligibleReduction. Calling it with a non-Reduce operation, a
// zero-axis reduction, or out-of-range axes is a caller bug and panics.
func GetReductionKindAndContiguousComponents(op OpView) (ReductionDimensions, error) {
	if op.OpType() != optypes.Reduce {
		exceptions.Panicf("GetReductionKindAndContiguousComponents: expected a %s operation, got %s",
			optypes.Reduce, op.OpType())
	}
	reduceAxes := op.ReduceAxes()
	if len(reduceAxes) == 0 {
		exceptions.Panicf("GetReductionKindAndContiguousComponents: reduction of %s over zero axes",
			op.OperandShape(0))
	}
	input, isReduced, keptAxes := splitReduceAxes(op)

	if len(keptAxes) == 0 {
		// Reduction to a scalar.
		return ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{1, 1, input.Size()}}, nil
	}
	if !input.AreAxesConsecutive(keptAxes) && !input.AreAxesConsecutive(reduceAxes) {
		return ReductionDimensions{}, errors.WithMessagef(ErrIneligibleReduction,
			"input %s reducing axes %v", input, reduceAxes)
	}

	runs := mergePhysicalRuns(input, isReduced)
	switch {
	case len(runs) == 0:
		// Every axis has dimension 1.
		return ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{1, 1, 1}}, nil

	case len(runs) == 1:
		if runs[0].reduced {
			return ReductionDimensions{IsRowReduction: true, Dimensions: [3]int{1, 1, runs[0].size}}, nil
		}
		// All reduced axes have dimension 1: nothing is actually contracted,
		// the kept data is copied through a single column pass.
		return ReductionDimensions{IsRowReduction: false, Dimensions: [3]int{1, 1, runs[0].size}}, nil

	case runs[len(runs)-1].reduced:
		if runs[0].reduced {
			// Batched row reduction (reduced, kept, reduced): the leading
			// reduced run becomes the batch (depth) component.
			return ReductionDimensions{
				IsRowReduction: true,
				Dimensions:     [3]int{runs[0].size, runs[1].size, runs[2].size},
			}, nil
		}
		// Plain row reduction (kept, reduced): the minor-most kept axis is
		// the height, any kept axes above it merge into the depth.
		depth, height := splitKeptComponents(input, isReduced)
		return ReductionDimensions{
			IsRowReduction: true,
			Dimensions:     [3]int{depth, height, runs[len(runs)-1].size},
		}, nil

	case len(runs) == 2:
		// (reduced, kept): a column reduction with no major kept component.
		return ReductionDimensions{IsRowReduction: false, Dimensions: [3]int{1, runs[0].size, runs[1].size}}, nil

	default:
		// (kept, reduced, kept).
		return ReductionDimensions{
			IsRowReduction: false,
			Dimensions:     [3]int{runs[0].size, runs[1].size, runs[2].size},
		}, nil
	}
}

// splitReduceAxes resolves the operation's axis sets against its input shape.
// Panics on out-of-range or repeated axes: those are caller bugs, and a wrong
// axis set would silently corrupt the generated kernel.
func splitReduceAxes(op OpView) (input shapes.Shape, isReduced []bool, keptAxes []int) {
	input = op.OperandShape(0)
	isReduced = make([]bool, input.Rank())
	for _, axis := range op.ReduceAxes() {
		if axis < 0 || axis >= input.Rank() {
			exceptions.Panicf("reduce axis %d out of range for input %s", axis, input)
		}
		if isReduced[axis] {
			exceptions.Panicf("reduce axis %d given more than once for input %s", axis, input)
		}
		isReduced[axis] = true
	}
	for axis := range input.Rank() {
		if !isReduced[axis] {
			keptAxes = append(keptAxes, axis)
		}
	}
	return
}

// axisRun is one merged component: physically adjacent axes of one category.
type axisRun struct {
	size    int
	reduced bool
}

// mergePhysicalRuns scans the axes major-to-minor in physical order, merging
// adjacent axes of the same category and dropping size-1 axes.
//
// After the contiguity precondition holds, the result has at most 3 runs and
// adjacent runs alternate categories.
func mergePhysicalRuns(input shapes.Shape, isReduced []bool) []axisRun {
	layout := input.LayoutMinorToMajor()
	var runs []axisRun
	for i := len(layout) - 1; i >= 0; i-- {
		axis := layout[i]
		dim := input.Dimensions[axis]
		if dim == 1 {
			continue
		}
		if len(runs) > 0 && runs[len(runs)-1].reduced == isReduced[axis] {
			runs[len(runs)-1].size *= dim
		} else {
			runs = append(runs, axisRun{size: dim, reduced: isReduced[axis]})
		}
	}
	return runs
}

// splitKeptComponents splits the kept axes of a plain row reduction into the
// canonical depth and height: the physically minor-most kept axis (of size
// > 1) is the height, all kept axes above it merge into the depth.
func splitKeptComponents(input shapes.Shape, isReduced []bool) (depth, height int) {
	depth, height = 1, 1
	foundHeight := false
	for _, axis := range input.LayoutMinorToMajor() {
		if isReduced[axis] || input.Dimensions[axis] == 1 {
			continue
		}
		if !foundHeight {
			height = input.Dimensions[axis]
			foundHeight = true
		} else {
			depth *= input.Dimensions[axis]
		}
	}
	return
}
