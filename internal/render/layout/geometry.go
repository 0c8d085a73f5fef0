package layout

// Column is an absolute horizontal slot produced by SplitColumns.
type Column struct {
	X, W float64
}

// SplitColumns divides a total width starting at x into columns proportional
// to the given weights. Column widths sum to exactly the total width: the
// last column absorbs any remainder left by the proportional division.
func SplitColumns(x, width float64, weights []float64) []Column {
	if len(weights) == 0 || width <= 0 {
		return nil
	}
	sum := 0.0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	cols := make([]Column, len(weights))
	cursor := x
	for i, w := range weights {
		if i == len(weights)-1 {
			cols[i] = Column{X: cursor, W: x + width - cursor}
			break
		}
		cw := 0.0
		if sum > 0 && w > 0 {
			cw = width * w / sum
		} else if sum == 0 {
			cw = width / float64(len(weights))
		}
		cols[i] = Column{X: cursor, W: cw}
		cursor += cw
	}
	return cols
}

// blockShiftPadding is the gap left between a shifted block and the safe
// bottom boundary.
const blockShiftPadding = 2.0

// PlaceBlock returns the y position a block of the given height should be
// drawn at so that it does not cross the safe bottom boundary. When the block
// fits at y it is returned unchanged; otherwise it is shifted upward by the
// minimum amount needed, capped at the block's own height, plus a small
// padding.
func PlaceBlock(y, height, safeBottom float64) float64 {
	overflow := y + height - safeBottom
	if overflow <= 0 {
		return y
	}
	if overflow > height {
		overflow = height
	}
	return y - overflow - blockShiftPadding
}
