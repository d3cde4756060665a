package knapsack

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a knapsack instance from three text files, one integer per
// line (blank lines skipped): the capacity (first value of its file), the
// item weights and the item profits.
//
// Validation is fail-fast, in priority order, each failure wrapping a
// package sentinel testable with errors.Is:
//
//  1. ErrEmptyInput               — any file contains no integers.
//  2. ErrLengthMismatch           — len(weights) != len(profits).
//  3. ErrInvalidWeight            — any weight ≤ 0.
//  4. ErrInvalidCapacity          — capacity < 0.
//  5. ErrCapacityBelowMinWeight   — capacity < min(weights).
//
// This is the single validation edge of the package: Build and BuildAux
// assume these invariants and never re-check them. No partial instance is
// ever returned on failure.
func Load(capacityPath, weightsPath, profitsPath string) (capacity int, weights []int, profits []float64, err error) {
	capacityList, err := readIntegers(capacityPath)
	if err != nil {
		return 0, nil, nil, err
	}
	weights, err = readIntegers(weightsPath)
	if err != nil {
		return 0, nil, nil, err
	}
	rawProfits, err := readIntegers(profitsPath)
	if err != nil {
		return 0, nil, nil, err
	}

	// 1. Empty files.
	if len(capacityList) == 0 {
		return 0, nil, nil, fmt.Errorf("capacity file %s: %w", capacityPath, ErrEmptyInput)
	}
	if len(weights) == 0 {
		return 0, nil, nil, fmt.Errorf("weights file %s: %w", weightsPath, ErrEmptyInput)
	}
	if len(rawProfits) == 0 {
		return 0, nil, nil, fmt.Errorf("profits file %s: %w", profitsPath, ErrEmptyInput)
	}

	capacity = capacityList[0]

	// 2. Parallel-sequence shape.
	if len(weights) != len(rawProfits) {
		return 0, nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(weights), len(rawProfits))
	}

	// 3. Weight positivity.
	minWeight := weights[0]
	for _, w := range weights {
		if w <= 0 {
			return 0, nil, nil, fmt.Errorf("%w: got %d", ErrInvalidWeight, w)
		}
		if w < minWeight {
			minWeight = w
		}
	}

	// 4. Capacity sign (zero is a valid, trivially-solved instance).
	if capacity < 0 {
		return 0, nil, nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	// 5. At least one item must fit, unless the capacity is the trivial 0.
	if capacity > 0 && capacity < minWeight {
		return 0, nil, nil, fmt.Errorf("%w: capacity %d < min weight %d", ErrCapacityBelowMinWeight, capacity, minWeight)
	}

	profits = make([]float64, len(rawProfits))
	for i, p := range rawProfits {
		profits[i] = float64(p)
	}

	return capacity, weights, profits, nil
}

// readIntegers parses a whitespace-tolerant one-integer-per-line file.
// Missing files surface the os error unchanged; unparsable lines wrap
// ErrBadInteger.
func readIntegers(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, convErr := strconv.Atoi(line)
		if convErr != nil {
			return nil, fmt.Errorf("%w: %s in %s", ErrBadInteger, line, path)
		}
		values = append(values, v)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return values, nil
}
