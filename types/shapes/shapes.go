// Package shapes defines Shape: the dimensions, element type (DType) and
// physical layout of a multi-dimensional array.
//
// Contrary to most tensor libraries, Shape carries the physical layout of the
// data (the minor-to-major ordering of its axes), because every kernel
// strategy decision in this module is about *physical* contiguity, not the
// logical ordering of axes.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of an array.
//   - Axis: the index of a dimension. Axis 0 is the logically major-most one.
//   - Dimension: the size of the array on one of its axes.
//   - DType: the data type of the unit element, defined in github.com/gomlx/gopjrt/dtypes.
//   - Minor-to-major: the physical layout permutation. MinorToMajor[0] is the
//     axis whose consecutive elements are adjacent in memory (fastest varying).
//
// The default (nil) layout is the descending permutation [rank-1, ..., 1, 0],
// meaning the last logical axis is the minor-most one -- plain row-major order.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// Shape represents the shape of a multi-dimensional array: element type,
// dimensions and the physical layout of the axes.
//
// Use Make to create one. Shape values are treated as immutable: none of the
// methods mutate the receiver.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int

	// MinorToMajor is the physical layout: a permutation of the axis indices,
	// minor-most (fastest varying in memory) first. nil means the default
	// descending layout [rank-1, ..., 1, 0].
	MinorToMajor []int

	// TupleShapes are the element shapes, if this is a tuple (library calls
	// return tuples, e.g. {result, workspace, info}).
	TupleShapes []Shape
}

// Make returns a Shape with the given element type and dimensions, with the
// default (row-major) layout. It panics if any dimension is <= 0.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim <= 0 {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with an axis with dimension <= 0", s)
		}
	}
	return s
}

// WithLayout returns a copy of the shape with the given minor-to-major layout.
// It panics if the layout is not a permutation of the shape's axis indices.
func (s Shape) WithLayout(minorToMajor ...int) Shape {
	if len(minorToMajor) != s.Rank() {
		exceptions.Panicf("Shape.WithLayout(%v): layout must have exactly one entry per axis of %s", minorToMajor, s)
	}
	seen := make([]bool, s.Rank())
	for _, axis := range minorToMajor {
		if axis < 0 || axis >= s.Rank() || seen[axis] {
			exceptions.Panicf("Shape.WithLayout(%v): layout must be a permutation of the axes of %s", minorToMajor, s)
		}
		seen[axis] = true
	}
	s2 := s.Clone()
	s2.MinorToMajor = slices.Clone(minorToMajor)
	return s2
}

// MakeTuple returns a shape representing a tuple of elements with the given shapes.
func MakeTuple(elements []Shape) Shape {
	return Shape{DType: dtypes.InvalidDType, TupleShapes: elements}
}

// Invalid returns an invalid shape: Invalid().Ok() == false.
func Invalid() Shape { return Shape{DType: dtypes.InvalidDType} }

// Ok returns whether this is a valid Shape.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType || len(s.TupleShapes) > 0 }

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape has rank 0.
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// IsTuple returns whether the shape represents a tuple.
func (s Shape) IsTuple() bool { return s.DType == dtypes.InvalidDType && len(s.TupleShapes) > 0 }

// TupleSize returns the number of elements, if this is a tuple.
func (s Shape) TupleSize() int { return len(s.TupleShapes) }

// Dim returns the dimension of the given axis. A negative axis counts from
// the end, so Dim(-1) is the dimension of the last axis.
func (s Shape) Dim(axis int) int {
	adjusted := axis
	if adjusted < 0 {
		adjusted += s.Rank()
	}
	if adjusted < 0 || adjusted >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjusted]
}

// Size returns the number of elements of DType the shape holds: the product
// of all dimensions.
func (s Shape) Size() (size int) {
	size = 1
	for _, dim := range s.Dimensions {
		size *= dim
	}
	return
}

// LayoutMinorToMajor returns the effective layout: MinorToMajor if set, or
// the default descending permutation otherwise. The returned slice must not
// be modified.
func (s Shape) LayoutMinorToMajor() []int {
	if s.MinorToMajor != nil {
		return s.MinorToMajor
	}
	layout := make([]int, s.Rank())
	for i := range layout {
		layout[i] = s.Rank() - 1 - i
	}
	return layout
}

// HasDefaultLayout returns whether the effective layout is the descending
// (row-major) one.
func (s Shape) HasDefaultLayout() bool {
	if s.MinorToMajor == nil {
		return true
	}
	for i, axis := range s.MinorToMajor {
		if axis != s.Rank()-1-i {
			return false
		}
	}
	return true
}

// AreAxesConsecutive returns whether the given axes, located in the shape's
// physical minor-to-major order, form one unbroken run -- no gaps, no
// interleaving with axes outside the set.
//
// This is the eligibility gate for every specialized reduction strategy: a
// reduction is only classifiable when either its reduced or its kept axes are
// consecutive in this sense.
//
// An empty set and a single axis are trivially consecutive. It panics if an
// axis is out of range.
func (s Shape) AreAxesConsecutive(axes []int) bool {
	layout := s.LayoutMinorToMajor()
	positions := make([]int, 0, len(axes))
	for _, axis := range axes {
		position := slices.Index(layout, axis)
		if position < 0 {
			exceptions.Panicf("Shape.AreAxesConsecutive(%v): axis %d out of range for %s", axes, axis, s)
		}
		positions = append(positions, position)
	}
	slices.Sort(positions)
	for i := 1; i < len(positions); i++ {
		if positions[i]-positions[i-1] != 1 {
			return false
		}
	}
	return true
}

// Equal compares dtype, dimensions and effective layout. For tuples it
// compares elements recursively.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType {
		return false
	}
	if s.IsTuple() || s2.IsTuple() {
		if s.TupleSize() != s2.TupleSize() {
			return false
		}
		for i, element := range s.TupleShapes {
			if !element.Equal(s2.TupleShapes[i]) {
				return false
			}
		}
		return true
	}
	return slices.Equal(s.Dimensions, s2.Dimensions) &&
		slices.Equal(s.LayoutMinorToMajor(), s2.LayoutMinorToMajor())
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() (s2 Shape) {
	s2.DType = s.DType
	s2.Dimensions = slices.Clone(s.Dimensions)
	s2.MinorToMajor = slices.Clone(s.MinorToMajor)
	if s.TupleSize() > 0 {
		s2.TupleShapes = make([]Shape, 0, len(s.TupleShapes))
		for _, element := range s.TupleShapes {
			s2.TupleShapes = append(s2.TupleShapes, element.Clone())
		}
	}
	return
}

// String implements fmt.Stringer. Non-default layouts are printed after the
// dimensions, e.g. "(Float32)[8 4 2]{0,1,2}".
func (s Shape) String() string {
	if s.TupleSize() > 0 {
		parts := make([]string, 0, s.TupleSize())
		for _, element := range s.TupleShapes {
			parts = append(parts, element.String())
		}
		return fmt.Sprintf("Tuple<%s>", strings.Join(parts, ", "))
	}
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	if s.HasDefaultLayout() {
		return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
	}
	layout := make([]string, s.Rank())
	for i, axis := range s.MinorToMajor {
		layout[i] = fmt.Sprintf("%d", axis)
	}
	return fmt.Sprintf("(%s)%v{%s}", s.DType, s.Dimensions, strings.Join(layout, ","))
}
