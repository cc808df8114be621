// Package optypes defines OpType, the closed set of operations the strategy
// classifiers can be asked about.
//
// The list is intentionally much smaller than a full IR dialect: it only needs
// the opcodes that the kernel-strategy decisions distinguish (Reduce, Dot,
// Convolution, CustomCall, ...) plus a few generic ones so that callers can
// represent the surrounding graph in tests.
package optypes

// OpType is an enum identifying the operation kind of a graph node.
type OpType int

//go:generate go tool enumer -type=OpType -output=gen_optype_enumer.go optypes.go

const (
	Invalid OpType = iota
	Parameter
	Constant

	Add
	Multiply
	Maximum

	Reduce
	Dot
	Convolution
	Cholesky
	BatchNormForInference
	BatchNormForTraining
	BatchNormGradient

	Transpose
	Reshape
	Slice
	Tuple
	Fusion

	// CustomCall is an operation rewritten into a library call.
	// Its semantics are identified by a call-target string, not by the opcode.
	CustomCall

	// Last is kept as the last value, it is used as a counter/marker.
	Last
)
