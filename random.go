package bitarea

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// The fixed 3x4 profile.
const (
	FixedWidth  = 3
	FixedHeight = 4
)

// Parameters of the Gamma distribution that random shapes are drawn from.
const (
	shapeAlpha = 7.0
	shapeScale = 0.5
)

// Source64 produces uniformly distributed 64-bit values.
// *rand.Rand and every math/rand/v2 Source satisfy it.
type Source64 interface {
	Uint64() uint64
}

// Sampler draws a single real value from some distribution.
// distuv.Gamma satisfies it.
type Sampler interface {
	Rand() float64
}

// NewShapeSampler returns the Gamma(7, 0.5) distribution used to pick
// random grid dimensions. Its mean is 3.5.
func NewShapeSampler(src rand.Source) distuv.Gamma {
	return distuv.Gamma{
		Alpha: shapeAlpha,
		Beta:  1 / shapeScale,
		Src:   src,
	}
}

func NewFixed() Bitarea {
	return New(FixedWidth, FixedHeight)
}

// RandomFixed returns a 3x4 grid whose whole payload, unused bits
// included, is drawn from src.
func RandomFixed(src Source64) Bitarea {
	b := NewFixed()
	b.data = src.Uint64()
	return b
}

// Random draws a width and height from shape until they describe a grid
// that fits in 64 bits, then fills the payload from src.
func Random(src Source64, shape Sampler) Bitarea {
	for {
		width := sampleDimension(shape)
		height := sampleDimension(shape)
		if checkShape(width, height) != nil {
			continue
		}
		return Bitarea{
			data:   src.Uint64(),
			width:  width,
			height: height,
		}
	}
}

func sampleDimension(shape Sampler) int {
	v := shape.Rand()
	if v >= wordBits {
		return wordBits
	}
	if v < 0 {
		return 0
	}
	return int(v)
}
