package prefixsum

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// Capacity is the fixed number of samples in a Buffer.
	Capacity = 8
	// MaxSum is the largest value SumPrefix can return.
	MaxSum = Capacity * math.MaxUint8
)

// The accumulator of SumPrefix must be able to hold MaxSum.
const _ uint16 = MaxSum

// Buffer is a fully populated, fixed-capacity sequence of samples.
//
// Buffers are values. SumPrefix receives a copy and will therefore never see
// a buffer changing underneath it.
type Buffer [Capacity]uint8

// Source delivers sample values for buffer slots.
//
// Sources may be arbitrary, e.g. random generators or replays of recorded
// test inputs. Byte is called exactly once per slot, in slot order.
type Source interface {
	Byte(slot int) uint8
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(slot int) uint8

// Byte calls f(slot).
func (f SourceFunc) Byte(slot int) uint8 {
	return f(slot)
}

// Fill creates a buffer, assigning every slot from src.
func Fill(src Source) Buffer {
	var buf Buffer
	for i := range buf {
		buf[i] = src.Byte(i)
	}
	return buf
}

// BufferFrom copies b into a new buffer. b must be exactly Capacity bytes
// long, otherwise ErrBufferSize is returned.
func BufferFrom(b []byte) (Buffer, error) {
	var buf Buffer
	if len(b) != Capacity {
		T().Debugf("prefixsum: cannot create buffer from %d bytes", len(b))
		return buf, fmt.Errorf("%w: got %d bytes, need %d", ErrBufferSize, len(b), Capacity)
	}
	copy(buf[:], b)
	return buf, nil
}

// Sum returns the sum of all samples in the buffer.
func (buf Buffer) Sum() uint16 {
	return SumPrefix(buf, Capacity)
}

func (buf Buffer) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range buf {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
	sb.WriteByte(']')
	return sb.String()
}
