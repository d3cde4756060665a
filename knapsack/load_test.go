package knapsack_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quboin/knapsack"
)

// writeLines drops a one-value-per-line dataset file into dir.
func writeLines(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// validInstance lays out the classic p01 instance (capacity 165, 10 items).
func validInstance(t *testing.T, dir string) (capacityPath, weightsPath, profitsPath string) {
	t.Helper()
	capacityPath = writeLines(t, dir, "p01_c.txt", "165\n")
	weightsPath = writeLines(t, dir, "p01_w.txt",
		"23\n31\n29\n44\n53\n38\n63\n85\n89\n82\n")
	profitsPath = writeLines(t, dir, "p01_p.txt",
		"92\n57\n49\n68\n60\n43\n67\n84\n87\n72\n")

	return capacityPath, weightsPath, profitsPath
}

// TestLoad_Valid parses a well-formed instance.
func TestLoad_Valid(t *testing.T) {
	cPath, wPath, pPath := validInstance(t, t.TempDir())

	capacity, weights, profits, err := knapsack.Load(cPath, wPath, pPath)
	require.NoError(t, err)
	assert.Equal(t, 165, capacity)
	assert.Equal(t, []int{23, 31, 29, 44, 53, 38, 63, 85, 89, 82}, weights)
	assert.Equal(t, []float64{92, 57, 49, 68, 60, 43, 67, 84, 87, 72}, profits)
}

// TestLoad_SkipsBlankLines tolerates surrounding whitespace and blanks.
func TestLoad_SkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	cPath := writeLines(t, dir, "c.txt", "\n  10  \n")
	wPath := writeLines(t, dir, "w.txt", "2\n\n3\n")
	pPath := writeLines(t, dir, "p.txt", "4\n5\n\n")

	capacity, weights, profits, err := knapsack.Load(cPath, wPath, pPath)
	require.NoError(t, err)
	assert.Equal(t, 10, capacity)
	assert.Equal(t, []int{2, 3}, weights)
	assert.Equal(t, []float64{4, 5}, profits)
}

// TestLoad_EmptyFiles checks ErrEmptyInput for each of the three inputs.
func TestLoad_EmptyFiles(t *testing.T) {
	for _, empty := range []string{"capacity", "weights", "profits"} {
		t.Run(empty, func(t *testing.T) {
			dir := t.TempDir()
			cPath, wPath, pPath := validInstance(t, dir)
			emptyPath := writeLines(t, dir, "empty.txt", "\n\n")
			switch empty {
			case "capacity":
				cPath = emptyPath
			case "weights":
				wPath = emptyPath
			case "profits":
				pPath = emptyPath
			}

			_, _, _, err := knapsack.Load(cPath, wPath, pPath)
			assert.ErrorIs(t, err, knapsack.ErrEmptyInput)
		})
	}
}

// TestLoad_LengthMismatch verifies the parallel-sequence check and that
// the message carries both lengths.
func TestLoad_LengthMismatch(t *testing.T) {
	dir := t.TempDir()
	cPath, wPath, _ := validInstance(t, dir)
	shortProfits := writeLines(t, dir, "short.txt", "1\n2\n3\n")

	_, _, _, err := knapsack.Load(cPath, wPath, shortProfits)
	assert.ErrorIs(t, err, knapsack.ErrLengthMismatch)
	assert.Contains(t, err.Error(), "10 != 3")
}

// TestLoad_InvalidWeight rejects zero and negative weights.
func TestLoad_InvalidWeight(t *testing.T) {
	for _, bad := range []string{
		"0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n",
		"1\n2\n3\n4\n5\n6\n7\n8\n9\n-5\n",
	} {
		dir := t.TempDir()
		cPath, _, pPath := validInstance(t, dir)
		wPath := writeLines(t, dir, "bad_w.txt", bad)

		_, _, _, err := knapsack.Load(cPath, wPath, pPath)
		assert.ErrorIs(t, err, knapsack.ErrInvalidWeight)
	}
}

// TestLoad_NegativeCapacity rejects capacity < 0; zero stays valid only
// as long as the min-weight rule is not violated (trivial empty optimum).
func TestLoad_NegativeCapacity(t *testing.T) {
	dir := t.TempDir()
	_, wPath, pPath := validInstance(t, dir)
	cPath := writeLines(t, dir, "neg.txt", "\n-100\n")

	_, _, _, err := knapsack.Load(cPath, wPath, pPath)
	assert.ErrorIs(t, err, knapsack.ErrInvalidCapacity)
	assert.Contains(t, err.Error(), "-100")
}

// TestLoad_CapacityBelowMinWeight rejects an instance no item can enter.
func TestLoad_CapacityBelowMinWeight(t *testing.T) {
	dir := t.TempDir()
	_, wPath, pPath := validInstance(t, dir)
	cPath := writeLines(t, dir, "small.txt", "10\n")

	_, _, _, err := knapsack.Load(cPath, wPath, pPath)
	assert.ErrorIs(t, err, knapsack.ErrCapacityBelowMinWeight)
	assert.Contains(t, err.Error(), "capacity 10 < min weight 23")
}

// TestLoad_ZeroCapacity keeps the trivial zero-capacity instance loadable.
func TestLoad_ZeroCapacity(t *testing.T) {
	dir := t.TempDir()
	_, wPath, pPath := validInstance(t, dir)
	cPath := writeLines(t, dir, "zero.txt", "0\n")

	capacity, _, _, err := knapsack.Load(cPath, wPath, pPath)
	require.NoError(t, err)
	assert.Equal(t, 0, capacity)
}

// TestLoad_BadInteger wraps unparsable lines with ErrBadInteger.
func TestLoad_BadInteger(t *testing.T) {
	dir := t.TempDir()
	cPath, _, pPath := validInstance(t, dir)
	wPath := writeLines(t, dir, "garbage.txt", "1\ntwo\n3\n")

	_, _, _, err := knapsack.Load(cPath, wPath, pPath)
	assert.ErrorIs(t, err, knapsack.ErrBadInteger)
}

// TestLoad_MissingFile surfaces the os error unchanged.
func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cPath, wPath, _ := validInstance(t, dir)

	_, _, _, err := knapsack.Load(cPath, wPath, filepath.Join(dir, "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
