package blockmerkle

import "strconv"

// InvalidCapacityError is returned from [New]
// when the requested block count is not positive
// or exceeds [MaxLeaves].
type InvalidCapacityError struct {
	Requested int
}

func (e InvalidCapacityError) Error() string {
	return "invalid tree capacity " + strconv.Itoa(e.Requested) +
		": must be in range [1, " + strconv.Itoa(MaxLeaves) + "]"
}

// IndexOutOfRangeError is returned from [*Tree.Read] and [*Tree.Write]
// when the block ID is outside [0, LeafCount).
// The tree is never modified when this error is returned.
type IndexOutOfRangeError struct {
	BlockID, LeafCount int
}

func (e IndexOutOfRangeError) Error() string {
	return "block " + strconv.Itoa(e.BlockID) +
		" out of range [0, " + strconv.Itoa(e.LeafCount) + ")"
}
