package buffer

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("WriteReadRoundTrip", func(t *testing.T) {

		u64 := []uint64{1, 0, 0xFFFFFFFFFFFFFFFF, 42}
		f64 := []float64{0, -1.5, 3.141592653589793, 1e300}
		f32 := []float32{0, -1.5, 3.1415927}

		b := NewBufferSize(8 + len(u64)*8 + len(f64)*8 + len(f32)*4 + 1)

		_, err := WriteUint8(b, 7)
		require.NoError(t, err)
		_, err = WriteUint64(b, 123456789)
		require.NoError(t, err)
		_, err = WriteUint64Slice(b, u64)
		require.NoError(t, err)
		_, err = WriteFloat64Slice(b, f64)
		require.NoError(t, err)
		_, err = WriteFloat32Slice(b, f32)
		require.NoError(t, err)

		var tag uint8
		_, err = ReadUint8(b, &tag)
		require.NoError(t, err)
		require.Equal(t, uint8(7), tag)

		var scalar uint64
		_, err = ReadUint64(b, &scalar)
		require.NoError(t, err)
		require.Equal(t, uint64(123456789), scalar)

		gotU64 := make([]uint64, len(u64))
		_, err = ReadUint64Slice(b, gotU64)
		require.NoError(t, err)
		require.Equal(t, u64, gotU64)

		gotF64 := make([]float64, len(f64))
		_, err = ReadFloat64Slice(b, gotF64)
		require.NoError(t, err)
		require.Equal(t, f64, gotF64)

		gotF32 := make([]float32, len(f32))
		_, err = ReadFloat32Slice(b, gotF32)
		require.NoError(t, err)
		require.Equal(t, f32, gotF32)
	})

	t.Run("WriteBeyondCapacity", func(t *testing.T) {
		b := NewBufferSize(8)
		_, err := WriteUint64(b, 1)
		require.NoError(t, err)
		_, err = WriteUint64(b, 2)
		require.Error(t, err)
	})

	t.Run("SmallBufioWriter", func(t *testing.T) {
		// A bufio.Writer smaller than the payload forces the chunked
		// flush-and-recurse path of the slice writers.
		c := make([]uint64, 100)
		for i := range c {
			c[i] = uint64(i)
		}

		var raw bytes.Buffer
		w := bufio.NewWriterSize(&raw, 64)

		_, err := WriteUint64Slice(w, c)
		require.NoError(t, err)
		require.NoError(t, w.Flush())
		require.Equal(t, len(c)*8, raw.Len())

		got := make([]uint64, len(c))
		_, err = ReadUint64Slice(bufio.NewReaderSize(&raw, 64), got)
		require.NoError(t, err)
		require.Equal(t, c, got)
	})

	t.Run("ReadPastEnd", func(t *testing.T) {
		b := NewBuffer(make([]byte, 4))
		var v uint64
		_, err := ReadUint64(b, &v)
		require.ErrorIs(t, err, io.EOF)
	})
}
