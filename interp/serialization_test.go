package interp

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testInterpolatorState(tb testing.TB) *Interpolator[float64] {
	itp := NewInterpolator[float64]()
	itp.SetMergeThreshold(0.25)
	itp.Insert(1, 10)
	itp.Insert(1.2, 20)
	itp.Insert(5, -3)
	itp.Insert(-2, 0.5)
	require.NoError(tb, itp.Interpolate())
	return itp
}

func TestInterpolatorSerialization(t *testing.T) {

	t.Run("MarshalBinary", func(t *testing.T) {
		itp := testInterpolatorState(t)

		p, err := itp.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, itp.BinarySize(), len(p))

		restored := NewInterpolator[float64]()
		require.NoError(t, restored.UnmarshalBinary(p))

		if d := cmp.Diff(itp.Points(), restored.Points()); d != "" {
			t.Fatalf("restored points differ (-want +got):\n%s", d)
		}
		require.Equal(t, itp.MergeThreshold(), restored.MergeThreshold())
		require.Equal(t, itp.Stale(), restored.Stale())
		require.Equal(t, itp.Evaluate(3.7), restored.Evaluate(3.7))
	})

	t.Run("WriteToReadFrom", func(t *testing.T) {
		// Exercises the bufio fallback of the io.Writer/io.Reader path.
		itp := testInterpolatorState(t)
		itp.Insert(9, 9) // serialize a stale state too

		w := new(bytes.Buffer)
		n, err := itp.WriteTo(w)
		require.NoError(t, err)
		require.Equal(t, int64(itp.BinarySize()), n)

		restored := NewInterpolator[float64]()
		_, err = restored.ReadFrom(w)
		require.NoError(t, err)

		require.True(t, restored.Stale())
		if d := cmp.Diff(itp.Points(), restored.Points()); d != "" {
			t.Fatalf("restored points differ (-want +got):\n%s", d)
		}
	})

	t.Run("PrecisionMismatch", func(t *testing.T) {
		itp := testInterpolatorState(t)

		p, err := itp.MarshalBinary()
		require.NoError(t, err)

		require.Error(t, NewInterpolator[float32]().UnmarshalBinary(p))
	})

	t.Run("Empty", func(t *testing.T) {
		itp := NewInterpolator[float64]()

		p, err := itp.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, itp.BinarySize(), len(p))

		restored := NewInterpolator[float64]()
		restored.Insert(1, 1)
		require.NoError(t, restored.UnmarshalBinary(p))
		require.Equal(t, 0, restored.Size())
		require.Equal(t, 4.2, restored.Evaluate(4.2))
	})
}
