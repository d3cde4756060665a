package knapsack

import "errors"

var (
	// ErrEmptyInput indicates a dataset file contains no integers.
	ErrEmptyInput = errors.New("knapsack: input file is empty")
	// ErrLengthMismatch indicates weights and profits differ in length.
	ErrLengthMismatch = errors.New("knapsack: weights and profits have different length")
	// ErrInvalidWeight indicates a zero or negative item weight.
	ErrInvalidWeight = errors.New("knapsack: all weights must be positive integers")
	// ErrInvalidCapacity indicates a negative capacity.
	ErrInvalidCapacity = errors.New("knapsack: capacity cannot be negative")
	// ErrCapacityBelowMinWeight indicates no item fits the knapsack at all.
	ErrCapacityBelowMinWeight = errors.New("knapsack: capacity is smaller than the minimum weight; no items can be selected")
	// ErrBadInteger indicates a dataset line that does not parse as an integer.
	ErrBadInteger = errors.New("knapsack: invalid integer in input file")
)
