package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// ReadAsUint64 reads a uint64 from r and casts it into c.
// User must ensure that T can hold an uint64.
func ReadAsUint64[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64(r, (*uint64)(unsafe.Pointer(c)))
}

// ReadAsUint64Slice casts &[]T into *[]uint64 and reads from r into it.
// User must ensure that T can hold an uint64.
func ReadAsUint64Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64Slice(r, *(*[]uint64)(unsafe.Pointer(&c)))
}

// ReadAsUint32Slice casts &[]T into *[]uint32 and reads from r into it.
// User must ensure that T can hold an uint32.
func ReadAsUint32Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint32Slice(r, *(*[]uint32)(unsafe.Pointer(&c)))
}

// ReadUint8 reads a single byte from r into c.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb = [1]byte{}

	var nint int
	if nint, err = r.Read(bb[:]); err != nil {
		return int64(nint), err
	}

	*c = bb[0]

	return int64(nint), nil
}

// ReadUint32 reads a little-endian uint32 from r into c.
func ReadUint32(r Reader, c *uint32) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint32: c is nil")
	}

	var bb = [4]byte{}

	var nint int
	if nint, err = r.Read(bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint32(bb[:])

	return int64(nint), nil
}

// ReadUint64 reads a little-endian uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = r.Read(bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadUint32Slice reads a slice of little-endian uint32 from r into c.
func ReadUint32Slice(r Reader, c []uint32) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	// Peeks at most what is buffered to avoid an EOF.
	size := r.Size()
	if len(c)<<2 < size {
		size = len(c) << 2
	}

	var slice []byte
	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 2

	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+4 {
			c[i] = binary.LittleEndian.Uint32(slice[j:])
		}

		nint, err := r.Discard(N << 2)

		return int64(nint), err
	}

	// Decodes the buffered maximum and recurses on the remainder.
	for i, j := 0, 0; i < buffered; i, j = i+1, j+4 {
		c[i] = binary.LittleEndian.Uint32(slice[j:])
	}

	var inc int
	if inc, err = r.Discard(len(slice)); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	var inc64 int64
	if inc64, err = ReadUint32Slice(r, c[buffered:]); err != nil {
		return n + inc64, err
	}

	return n + inc64, nil
}

// ReadUint64Slice reads a slice of little-endian uint64 from r into c.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	// Peeks at most what is buffered to avoid an EOF.
	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	var slice []byte
	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = binary.LittleEndian.Uint64(slice[j:])
		}

		nint, err := r.Discard(N << 3)

		return int64(nint), err
	}

	// Decodes the buffered maximum and recurses on the remainder.
	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = binary.LittleEndian.Uint64(slice[j:])
	}

	var inc int
	if inc, err = r.Discard(len(slice)); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	var inc64 int64
	if inc64, err = ReadUint64Slice(r, c[buffered:]); err != nil {
		return n + inc64, err
	}

	return n + inc64, nil
}

// ReadFloat64 reads a float64 from r by its IEEE 754 bit pattern.
func ReadFloat64(r Reader, c *float64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var bits uint64
	if n, err = ReadUint64(r, &bits); err != nil {
		return
	}

	*c = math.Float64frombits(bits)

	return
}

// ReadFloat32 reads a float32 from r by its IEEE 754 bit pattern.
func ReadFloat32(r Reader, c *float32) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat32: c is nil")
	}

	var bits uint32
	if n, err = ReadUint32(r, &bits); err != nil {
		return
	}

	*c = math.Float32frombits(bits)

	return
}

// ReadFloat64Slice reads a slice of float64 from r by bit pattern.
func ReadFloat64Slice(r Reader, c []float64) (n int64, err error) {
	return ReadAsUint64Slice(r, c)
}

// ReadFloat32Slice reads a slice of float32 from r by bit pattern.
func ReadFloat32Slice(r Reader, c []float32) (n int64, err error) {
	return ReadAsUint32Slice(r, c)
}
