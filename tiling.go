package gpuplan

import (
	"fmt"

	"k8s.io/klog/v2"
)

const (
	// WarpSize is the number of threads that execute in lockstep and can
	// exchange values with intra-warp shuffles.
	WarpSize = 32

	// MinThreadsXRowReduction is the minimum threads/block for reasonable
	// tree-reduction performance on a row reduction (assuming all data fits).
	MinThreadsXRowReduction = 1024

	// BatchedReductionRaceFreeBound is how big the batch (depth) component of
	// a batched row reduction can be while a single block still covers the
	// whole batch. It is an empirical correctness cutoff, not derived from
	// other hardware parameters; flag any change here for review.
	BatchedReductionRaceFreeBound = 8
)

// ComputeCapability identifies the target GPU architecture generation.
type ComputeCapability struct {
	Major, Minor int
}

// IsAtLeast returns whether the capability is >= major.minor.
func (cc ComputeCapability) IsAtLeast(major, minor int) bool {
	return cc.Major > major || (cc.Major == major && cc.Minor >= minor)
}

// String implements fmt.Stringer, e.g. "8.0".
func (cc ComputeCapability) String() string {
	return fmt.Sprintf("%d.%d", cc.Major, cc.Minor)
}

// DeviceInfo describes the target hardware for the tiling planner and the
// race-freedom checker. It is supplied by the driver and threaded as a value
// into every call -- there is no package-level hardware state -- so one
// process can plan for several architectures at once.
type DeviceInfo struct {
	WarpSize          int
	ComputeCapability ComputeCapability

	// MinThreadsXRowReduction and BatchedReductionRaceFreeBound default to
	// the package constants; tests may override them.
	MinThreadsXRowReduction       int
	BatchedReductionRaceFreeBound int
}

// NewDeviceInfo returns the DeviceInfo for the given compute capability with
// the standard architecture constants.
func NewDeviceInfo(cc ComputeCapability) DeviceInfo {
	return DeviceInfo{
		WarpSize:                      WarpSize,
		ComputeCapability:             cc,
		MinThreadsXRowReduction:       MinThreadsXRowReduction,
		BatchedReductionRaceFreeBound: BatchedReductionRaceFreeBound,
	}
}

// GetReductionTiling returns the per-thread tile sizes for the given
// reduction, in the same [depth, height, width] order as its canonical
// dimensions. Pure and deterministic: identical inputs always produce the
// identical plan, which codegen reproducibility depends on.
//
// Row reductions tile the batch (depth) component up to the race-free bound
// and unroll 16 elements of the reduced width per thread; column reductions
// keep depth and width at 1 for coalesced loads and give each thread a
// 128-element column strip.
func GetReductionTiling(reductionDimensions ReductionDimensions, device DeviceInfo) [3]int {
	if reductionDimensions.IsRowReduction {
		tileDepth := min(reductionDimensions.Dimensions[0], device.BatchedReductionRaceFreeBound)
		return [3]int{tileDepth, 1, 16}
	}
	// Column reduction.
	return [3]int{1, 128, 1}
}

// ReductionIsRaceFree returns whether the reduction, tiled as given, can be
// generated without atomics: every output element is written by exactly one
// physical execution unit.
//
// For a row reduction that requires the whole reduced width to fit in one
// block (width <= MinThreadsXRowReduction x width-tile) and, when batched,
// the batch (depth) component to stay within the race-free bound so a single
// block covers it. For a column reduction it requires the reduced height to
// fit the block's warps (height <= WarpSize x height-tile).
//
// A false result is not an error: it routes the caller to an atomics-based
// or multi-pass strategy.
func ReductionIsRaceFree(reductionDimensions ReductionDimensions, tiling [3]int, device DeviceInfo) bool {
	if reductionDimensions.IsRowReduction {
		return reductionDimensions.Dimensions[2] <= device.MinThreadsXRowReduction*tiling[2] &&
			reductionDimensions.Dimensions[0] <= device.BatchedReductionRaceFreeBound
	}
	return reductionDimensions.Dimensions[1] <= device.WarpSize*tiling[1]
}

// ShouldTileReduction returns whether the tiled reduction emitter is expected
// to beat the elementwise one for the given canonical dimensions. Small
// reductions don't amortize the tiling machinery.
//
// The column cutoffs were found by sweeping small column reductions; treat
// them as empirical.
func ShouldTileReduction(reductionDimensions ReductionDimensions, device DeviceInfo) bool {
	if reductionDimensions.IsRowReduction {
		// The block reduces along the width, which needs to be large enough
		// to keep a warp busy.
		return reductionDimensions.Dimensions[2] >= device.WarpSize
	}
	height := reductionDimensions.Dimensions[1]
	width := reductionDimensions.Dimensions[2]
	warp := device.WarpSize
	preferElemental := height < warp ||
		(height < 2*warp && width < warp) ||
		(height < 4*warp && width < 8) ||
		(height < 8*warp && width < 3)
	return !preferElemental
}

// ReductionPlan is the full strategy decision for one reduction.
type ReductionPlan struct {
	Dimensions ReductionDimensions
	Tiling     [3]int

	// RaceFree reports whether the plan needs no atomics. When false the
	// caller must fall back to an atomics-based or multi-pass strategy.
	RaceFree bool
}

// PlanReduction classifies the reduction, plans its tiling and checks race
// freedom, in the order a codegen driver consumes them. It fails with (a
// wrapped) ErrIneligibleReduction when no specialized strategy applies.
func PlanReduction(op OpView, device DeviceInfo) (ReductionPlan, error) {
	reductionDimensions, err := GetReductionKindAndContiguousComponents(op)
	if err != nil {
		return ReductionPlan{}, err
	}
	tiling := GetReductionTiling(reductionDimensions, device)
	plan := ReductionPlan{
		Dimensions: reductionDimensions,
		Tiling:     tiling,
		RaceFree:   ReductionIsRaceFree(reductionDimensions, tiling, device),
	}
	if klog.V(2).Enabled() {
		klog.Infof("reduction %s: row=%v dims=%v tiling=%v raceFree=%v (cc=%s)",
			op.OperandShape(0), reductionDimensions.IsRowReduction, reductionDimensions.Dimensions,
			plan.Tiling, plan.RaceFree, device.ComputeCapability)
	}
	return plan, nil
}
