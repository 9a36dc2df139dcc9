package sudoku

import "math"

// DefaultBoxDims returns a square box height/width for an n x n board
// when n is a perfect square (the common case: 9 -> 3x3, 16 -> 4x4),
// and false otherwise so callers know to ask the user for explicit
// dimensions instead of guessing.
func DefaultBoxDims(n int) (h, w int, ok bool) {
	root := int(math.Sqrt(float64(n)))
	if root*root == n {
		return root, root, true
	}
	return 0, 0, false
}
