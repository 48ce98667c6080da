package bitarea

import (
	"errors"
	"fmt"
	"strings"
)

const wordBits = 64

var (
	// ErrShape is wrapped by every error (or panic) caused by a grid shape
	// that does not fit in a single 64-bit word.
	ErrShape = errors.New("invalid bitarea shape")
	// ErrBounds is wrapped by panics from out of range cell access.
	ErrBounds = errors.New("cell out of bounds")
)

// Bitarea is a width x height grid of booleans packed into one uint64.
//
// Cell (col, row) is stored in bit 63 - (row*width + col), so the top-left
// cell is the most significant bit. The low 64 - width*height bits are
// unused; they are ignored by Equal and String. Use Equal rather than ==
// to compare two grids.
type Bitarea struct {
	data   uint64
	width  int
	height int
}

func checkShape(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d has an empty dimension", ErrShape, width, height)
	}
	if width > wordBits || height > wordBits || width*height > wordBits {
		return fmt.Errorf("%w: %dx%d needs more than %d bits",
			ErrShape, width, height, wordBits)
	}
	return nil
}

// NewChecked is like New but returns an error instead of panicking.
func NewChecked(width, height int) (Bitarea, error) {
	if err := checkShape(width, height); err != nil {
		return Bitarea{}, err
	}
	return Bitarea{width: width, height: height}, nil
}

// New returns an all-false grid. It panics if width*height > 64.
func New(width, height int) Bitarea {
	b, err := NewChecked(width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// FromRows packs one value per row into a new grid. Each row holds its
// cells in its low width bits, with bit width-1 being column 0.
func FromRows(width, height int, rows ...uint64) Bitarea {
	b := New(width, height)
	if len(rows) != height {
		panic(fmt.Errorf("%w: got %d rows for a grid of height %d",
			ErrShape, len(rows), height))
	}

	full := lowBits(width)
	for r, row := range rows {
		if row&^full != 0 {
			panic(fmt.Errorf("%w: row %d value %#b is wider than %d columns",
				ErrShape, r, row, width))
		}
		b.data |= row << b.rowShift(r)
	}
	return b
}

func (b Bitarea) Width() int { return b.width }
func (b Bitarea) Height() int { return b.height }

// Data returns the raw payload, unused bits included.
func (b Bitarea) Data() uint64 { return b.data }

// Rows is the inverse of FromRows.
func (b Bitarea) Rows() []uint64 {
	full := lowBits(b.width)
	rows := make([]uint64, b.height)
	for r := range rows {
		rows[r] = (b.data >> b.rowShift(r)) & full
	}
	return rows
}

func (b *Bitarea) Set(col, row int, value bool) {
	mask := b.cellMask(col, row)
	if value {
		b.data |= mask
	} else {
		b.data &^= mask
	}
}

func (b Bitarea) Get(col, row int) bool {
	return b.data&b.cellMask(col, row) != 0
}

// Equal reports whether both grids have the same shape and the same
// value in every cell.
func (b Bitarea) Equal(other Bitarea) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	used := b.usedMask()
	return b.data&used == other.data&used
}

func (b Bitarea) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for r := 0; r < b.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.width; c++ {
			if b.Get(c, r) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

func (b Bitarea) cellMask(col, row int) uint64 {
	if col < 0 || col >= b.width || row < 0 || row >= b.height {
		panic(fmt.Errorf("%w: (%d, %d) in a %dx%d grid",
			ErrBounds, col, row, b.width, b.height))
	}
	return uint64(1) << (wordBits - 1 - (row*b.width + col))
}

// Offset of the least significant bit of row r.
func (b Bitarea) rowShift(r int) int {
	return wordBits - (r+1)*b.width
}

func (b Bitarea) usedMask() uint64 {
	return ^lowBits(wordBits - b.width*b.height)
}

// lowBits returns a word with the low n bits set, 0 <= n <= 64.
func lowBits(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return ^uint64(0) >> (wordBits - n)
}
