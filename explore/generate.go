package explore

import (
	"iter"
	"math/rand"

	"github.com/npillmayer/prefixsum"
)

// MaxLength is the largest requested length generators produce. Going to
// twice the capacity covers every clamped path with room to spare.
const MaxLength = 2 * prefixsum.Capacity

// Generator produces inputs for a summer.
type Generator interface {
	Inputs() iter.Seq2[prefixsum.Buffer, uint]
}

// GeneratorFunc adapts an iterator constructor to the Generator interface.
type GeneratorFunc func() iter.Seq2[prefixsum.Buffer, uint]

// Inputs calls f.
func (f GeneratorFunc) Inputs() iter.Seq2[prefixsum.Buffer, uint] {
	return f()
}

// emit yields buf with every length 0…MaxLength.
func emit(buf prefixsum.Buffer, yield func(prefixsum.Buffer, uint) bool) bool {
	for n := uint(0); n <= MaxLength; n++ {
		if !yield(buf, n) {
			return false
		}
	}
	return true
}

// CornerBuffers returns the buffers most likely to expose defects: all zeros,
// all 255, ascending 1…8, and a single 255 in each slot.
func CornerBuffers() []prefixsum.Buffer {
	var saturated, ascending prefixsum.Buffer
	for i := range prefixsum.Capacity {
		saturated[i] = 255
		ascending[i] = uint8(i + 1)
	}
	bufs := []prefixsum.Buffer{{}, saturated, ascending}
	for i := range prefixsum.Capacity {
		var b prefixsum.Buffer
		b[i] = 255
		bufs = append(bufs, b)
	}
	return bufs
}

// Corners generates every corner buffer with every length up to MaxLength.
func Corners() Generator {
	return GeneratorFunc(func() iter.Seq2[prefixsum.Buffer, uint] {
		return func(yield func(prefixsum.Buffer, uint) bool) {
			for _, buf := range CornerBuffers() {
				if !emit(buf, yield) {
					return
				}
			}
		}
	})
}

// Random generates count inputs with uniformly distributed samples and
// lengths. Equal seeds generate equal sequences.
func Random(seed int64, count int) Generator {
	return GeneratorFunc(func() iter.Seq2[prefixsum.Buffer, uint] {
		return func(yield func(prefixsum.Buffer, uint) bool) {
			r := rand.New(rand.NewSource(seed))
			src := prefixsum.SourceFunc(func(int) uint8 {
				return uint8(r.Intn(256))
			})
			for range count {
				buf := prefixsum.Fill(src)
				if !yield(buf, uint(r.Intn(MaxLength+1))) {
					return
				}
			}
		}
	})
}

// Exhaustive generates every buffer whose samples are drawn from values,
// each with every length up to MaxLength. This is len(values)^Capacity
// buffers, so values should be a small alphabet.
func Exhaustive(values ...uint8) Generator {
	return GeneratorFunc(func() iter.Seq2[prefixsum.Buffer, uint] {
		return func(yield func(prefixsum.Buffer, uint) bool) {
			if len(values) == 0 {
				return
			}
			var digits [prefixsum.Capacity]int
			for {
				buf := prefixsum.Fill(prefixsum.SourceFunc(func(slot int) uint8 {
					return values[digits[slot]]
				}))
				if !emit(buf, yield) {
					return
				}
				// advance odometer
				i := 0
				for ; i < prefixsum.Capacity; i++ {
					digits[i]++
					if digits[i] < len(values) {
						break
					}
					digits[i] = 0
				}
				if i == prefixsum.Capacity {
					return
				}
			}
		}
	})
}
