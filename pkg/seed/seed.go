// Package seed turns a seed string into the integer that drives every pick in a plan.
package seed

import "unicode/utf16"

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// Per-category offsets added to Hash(seed) before synthesizing entries.
const (
	OffsetStays   int64 = 0
	OffsetGyms    int64 = 11
	OffsetCoworks int64 = 23
	OffsetSocial  int64 = 37
)

// Hash is 32-bit FNV-1a over the UTF-16 code units of s. The accumulator is read
// back as a signed 32-bit value and its absolute value returned, so the result lies
// in [0, 2^31]. An empty string never narrows the accumulator and yields the offset basis.
func Hash(s string) int64 {
	if s == "" {
		return int64(fnvOffset32)
	}
	h := fnvOffset32
	for _, u := range utf16.Encode([]rune(s)) {
		h ^= uint32(u)
		h *= fnvPrime32
	}
	v := int64(int32(h))
	if v < 0 {
		v = -v
	}
	return v
}

// Pick returns pool[n mod len(pool)]. pool must not be empty.
func Pick[T any](pool []T, n int64) T {
	return pool[index(n, len(pool))]
}

func index(n int64, size int) int {
	i := n % int64(size)
	if i < 0 {
		i += int64(size)
	}
	return int(i)
}
