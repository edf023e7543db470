package prefixsum

// SumPrefix returns the sum of the first n samples of buf.
//
// n may be any value. If n exceeds Capacity, the whole buffer is summed.
// For n == 0 the result is 0 and no sample is read.
func SumPrefix(buf Buffer, n uint) uint16 {
	var acc uint16
	for _, v := range buf[:min(n, Capacity)] {
		acc += uint16(v)
	}
	return acc
}
