package interp

import (
	"bufio"
	"fmt"
	"io"
	"unsafe"

	"github.com/numericalgo/polint/utils/buffer"
)

// floatSize returns the byte size of the precision T, used as a format tag so
// that a float32 state is not silently deserialized into a float64
// Interpolator or vice versa.
func floatSize[T any]() int {
	var t T
	return int(unsafe.Sizeof(t))
}

// BinarySize returns the serialized size of the object in bytes.
func (itp *Interpolator[T]) BinarySize() (size int) {
	// width tag + stale flag + count + threshold + columns x, y, c + column n
	return 2 + 8 + floatSize[T]()*(1+3*len(itp.n)) + 8*len(itp.n)
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer), it will
// be wrapped into a bufio.Writer. Since this requires allocations, it is
// preferable to pass a buffer.Writer directly.
func (itp *Interpolator[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteUint8(w, uint8(floatSize[T]())); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint8: %w", err)
		}

		n += inc

		var stale uint8
		if itp.stale {
			stale = 1
		}

		if inc, err = buffer.WriteUint8(w, stale); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint8: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteUint64(w, uint64(len(itp.n))); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = writeFloat(w, itp.tau); err != nil {
			return n + inc, err
		}

		n += inc

		for _, col := range [][]T{itp.x, itp.y, itp.c} {
			if inc, err = writeFloatSlice(w, col); err != nil {
				return n + inc, err
			}
			n += inc
		}

		if inc, err = buffer.WriteUint64Slice(w, itp.n); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return itp.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer), it will
// be wrapped into a bufio.Reader. Since this requires allocations, it is
// preferable to pass a buffer.Reader directly.
func (itp *Interpolator[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var width uint8
		if inc, err = buffer.ReadUint8(r, &width); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint8: %w", err)
		}

		n += inc

		if int(width) != floatSize[T]() {
			return n, fmt.Errorf("cannot ReadFrom: serialized float width is %d bytes but the receiver's is %d", width, floatSize[T]())
		}

		var stale uint8
		if inc, err = buffer.ReadUint8(r, &stale); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint8: %w", err)
		}

		n += inc

		itp.stale = stale != 0

		var size uint64
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += inc

		if inc, err = readFloat(r, &itp.tau); err != nil {
			return n + inc, err
		}

		n += inc

		for _, col := range []*[]T{&itp.x, &itp.y, &itp.c} {
			*col = resize(*col, int(size))
			if inc, err = readFloatSlice(r, *col); err != nil {
				return n + inc, err
			}
			n += inc
		}

		itp.n = resize(itp.n, int(size))
		if inc, err = buffer.ReadUint64Slice(r, itp.n); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64Slice: %w", err)
		}

		n += inc

		return n, nil

	default:
		return itp.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a []byte of size object.BinarySize().
// It implements the encoding.BinaryMarshaler interface.
func (itp *Interpolator[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(itp.BinarySize())
	_, err = itp.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a []byte generated by MarshalBinary on the object.
// It implements the encoding.BinaryUnmarshaler interface.
func (itp *Interpolator[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = itp.ReadFrom(buffer.NewBuffer(p))
	return err
}

func writeFloat[T any](w buffer.Writer, c T) (n int64, err error) {
	switch c := any(c).(type) {
	case float64:
		return buffer.WriteFloat64(w, c)
	case float32:
		return buffer.WriteFloat32(w, c)
	default:
		return 0, fmt.Errorf("cannot writeFloat: invalid type %T", c)
	}
}

func readFloat[T any](r buffer.Reader, c *T) (n int64, err error) {
	switch c := any(c).(type) {
	case *float64:
		return buffer.ReadFloat64(r, c)
	case *float32:
		return buffer.ReadFloat32(r, c)
	default:
		return 0, fmt.Errorf("cannot readFloat: invalid type %T", c)
	}
}

func writeFloatSlice[T any](w buffer.Writer, c []T) (n int64, err error) {
	var t T
	switch any(t).(type) {
	case float64:
		return buffer.WriteAsUint64Slice(w, c)
	case float32:
		return buffer.WriteAsUint32Slice(w, c)
	default:
		return 0, fmt.Errorf("cannot writeFloatSlice: invalid type %T", t)
	}
}

func readFloatSlice[T any](r buffer.Reader, c []T) (n int64, err error) {
	var t T
	switch any(t).(type) {
	case float64:
		return buffer.ReadAsUint64Slice(r, c)
	case float32:
		return buffer.ReadAsUint32Slice(r, c)
	default:
		return 0, fmt.Errorf("cannot readFloatSlice: invalid type %T", t)
	}
}

func resize[T any](s []T, size int) []T {
	if cap(s) < size {
		return make([]T, size)
	}
	return s[:size]
}
