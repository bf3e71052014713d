package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

// WriteAsUint64 casts &T to an *uint64 and writes it to w.
// User must ensure that T can be stored in an uint64.
func WriteAsUint64[T any](w Writer, c T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return WriteUint64(w, *(*uint64)(unsafe.Pointer(&c)))
}

// WriteAsUint64Slice casts &[]T into *[]uint64 and writes it to w.
// User must ensure that T can be stored in an uint64.
func WriteAsUint64Slice[T any](w Writer, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return WriteUint64Slice(w, *(*[]uint64)(unsafe.Pointer(&c)))
}

// WriteAsUint32Slice casts &[]T into *[]uint32 and writes it to w.
// User must ensure that T can be stored in an uint32.
func WriteAsUint32Slice[T any](w Writer, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return WriteUint32Slice(w, *(*[]uint32)(unsafe.Pointer(&c)))
}

// WriteUint8 writes a single byte to w.
func WriteUint8(w Writer, c uint8) (n int64, err error) {

	if w.Available() == 0 {
		if err = w.Flush(); err != nil {
			return
		}
		if w.Available() == 0 {
			return 0, fmt.Errorf("cannot WriteUint8: available buffer is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:1]
	buf[0] = c

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteUint32 writes a uint32 to w in little-endian byte order.
func WriteUint32(w Writer, c uint32) (n int64, err error) {

	if w.Available()>>2 == 0 {
		if err = w.Flush(); err != nil {
			return
		}
		if w.Available()>>2 == 0 {
			return 0, fmt.Errorf("cannot WriteUint32: available buffer/4 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:4]

	binary.LittleEndian.PutUint32(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteUint64 writes a uint64 to w in little-endian byte order.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}
		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteUint32Slice writes a slice of uint32 to w in little-endian byte order.
func WriteUint32Slice(w Writer, c []uint32) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	available := w.Available() >> 2

	if available == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		available = w.Available() >> 2

		if available == 0 {
			return 0, fmt.Errorf("cannot WriteUint32Slice: available buffer/4 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()

	if N := len(c); N <= available {
		buf = buf[:N<<2]
		for i := 0; i < N; i++ {
			binary.LittleEndian.PutUint32(buf[i<<2:], c[i])
		}

		nint, err := w.Write(buf)

		return int64(nint), err
	}

	// Fills the available space, flushes and recurses on the remainder.
	buf = buf[:available<<2]
	for i := 0; i < available; i++ {
		binary.LittleEndian.PutUint32(buf[i<<2:], c[i])
	}

	var inc int
	if inc, err = w.Write(buf); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	if err = w.Flush(); err != nil {
		return n, err
	}

	var inc64 int64
	inc64, err = WriteUint32Slice(w, c[available:])

	return n + inc64, err
}

// WriteUint64Slice writes a slice of uint64 to w in little-endian byte order.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	available := w.Available() >> 3

	if available == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		available = w.Available() >> 3

		if available == 0 {
			return 0, fmt.Errorf("cannot WriteUint64Slice: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()

	if N := len(c); N <= available {
		buf = buf[:N<<3]
		for i := 0; i < N; i++ {
			binary.LittleEndian.PutUint64(buf[i<<3:], c[i])
		}

		nint, err := w.Write(buf)

		return int64(nint), err
	}

	// Fills the available space, flushes and recurses on the remainder.
	buf = buf[:available<<3]
	for i := 0; i < available; i++ {
		binary.LittleEndian.PutUint64(buf[i<<3:], c[i])
	}

	var inc int
	if inc, err = w.Write(buf); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	if err = w.Flush(); err != nil {
		return n, err
	}

	var inc64 int64
	inc64, err = WriteUint64Slice(w, c[available:])

	return n + inc64, err
}

// WriteFloat64 writes a float64 to w by its IEEE 754 bit pattern.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}

// WriteFloat32 writes a float32 to w by its IEEE 754 bit pattern.
func WriteFloat32(w Writer, c float32) (n int64, err error) {
	return WriteUint32(w, math.Float32bits(c))
}

// WriteFloat64Slice writes a slice of float64 to w by bit pattern.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {
	return WriteAsUint64Slice(w, c)
}

// WriteFloat32Slice writes a slice of float32 to w by bit pattern.
func WriteFloat32Slice(w Writer, c []float32) (n int64, err error) {
	return WriteAsUint32Slice(w, c)
}
