package bitarea

// rowMask repeats the row-local pattern row (the low width bits) at the
// offset of every row of a width x height grid. Unused bits stay clear.
func rowMask(width, height int, row uint64) uint64 {
	row &= lowBits(width)
	var mask uint64
	for r := 0; r < height; r++ {
		mask |= row << (wordBits - (r+1)*width)
	}
	return mask
}

// ShiftLeft moves every cell n columns to the left within its own row.
// Column c of the result holds column c+n of b; the n rightmost columns
// become false.
func (b Bitarea) ShiftLeft(n uint) Bitarea {
	if n >= uint(b.width) {
		return Bitarea{width: b.width, height: b.height}
	}
	keep := b.width - int(n)
	mask := rowMask(b.width, b.height, lowBits(keep)<<n)
	return Bitarea{
		data:   (b.data << n) & mask,
		width:  b.width,
		height: b.height,
	}
}

// ShiftRight moves every cell n columns to the right within its own row.
// Column c+n of the result holds column c of b; the n leftmost columns
// become false.
func (b Bitarea) ShiftRight(n uint) Bitarea {
	if n >= uint(b.width) {
		return Bitarea{width: b.width, height: b.height}
	}
	keep := b.width - int(n)
	mask := rowMask(b.width, b.height, lowBits(keep))
	return Bitarea{
		data:   (b.data >> n) & mask,
		width:  b.width,
		height: b.height,
	}
}
