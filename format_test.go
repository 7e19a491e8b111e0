package jsonbuf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerFormatting(t *testing.T) {
	var buf [128]byte
	w := NewWriter(buf[:])

	require.NoError(t, w.BeginArray())
	require.NoError(t, w.Int32(-123))
	require.NoError(t, w.Uint32(456))
	require.NoError(t, w.Int64(-789123456789))
	require.NoError(t, w.Uint64(987654321098))
	require.NoError(t, w.EndArray())

	out, err := w.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "[-123,456,-789123456789,987654321098]", string(out))
}

func TestIntegerExtremes(t *testing.T) {
	var buf [128]byte
	w := NewWriter(buf[:])

	require.NoError(t, w.BeginArray())
	require.NoError(t, w.Int32(math.MinInt32))
	require.NoError(t, w.Int32(math.MaxInt32))
	require.NoError(t, w.Uint32(math.MaxUint32))
	require.NoError(t, w.Int64(math.MinInt64))
	require.NoError(t, w.Int64(math.MaxInt64))
	require.NoError(t, w.Uint64(math.MaxUint64))
	require.NoError(t, w.Int64(0))
	require.NoError(t, w.EndArray())

	out, err := w.Finalize()
	require.NoError(t, err)
	assert.Equal(t,
		"[-2147483648,2147483647,4294967295,"+
			"-9223372036854775808,9223372036854775807,18446744073709551615,0]",
		string(out))
}

func TestFloatFormatting(t *testing.T) {
	t.Run("DefaultPrecision", func(t *testing.T) {
		var buf [32]byte
		w := NewWriter(buf[:])

		require.NoError(t, w.Float64(3.14159))
		out, err := w.Finalize()
		require.NoError(t, err)
		assert.Equal(t, "3.142", string(out))
	})

	t.Run("PrecisionTwo", func(t *testing.T) {
		var buf [32]byte
		w := NewWriter(buf[:])
		w.SetFloatPrecision(2)

		require.NoError(t, w.BeginArray())
		require.NoError(t, w.Float32(3.14))
		require.NoError(t, w.Float64(2.718))
		require.NoError(t, w.EndArray())

		out, err := w.Finalize()
		require.NoError(t, err)
		assert.Equal(t, "[3.14,2.72]", string(out))
	})

	t.Run("PrecisionOne", func(t *testing.T) {
		var buf [32]byte
		w := NewWriter(buf[:])
		w.SetFloatPrecision(1)

		require.NoError(t, w.Float64(3.14159))
		out, err := w.Finalize()
		require.NoError(t, err)
		assert.Equal(t, "3.1", string(out))
	})

	t.Run("PrecisionZero", func(t *testing.T) {
		var buf [32]byte
		w := NewWriter(buf[:])
		w.SetFloatPrecision(0)

		require.NoError(t, w.Float64(2.718))
		out, err := w.Finalize()
		require.NoError(t, err)
		assert.Equal(t, "3", string(out))
	})

	t.Run("FixedNotationForLargeValues", func(t *testing.T) {
		var buf [32]byte
		w := NewWriter(buf[:])

		require.NoError(t, w.Float64(1e21))
		out, err := w.Finalize()
		require.NoError(t, err)
		// Fixed notation, never scientific.
		assert.Equal(t, "1000000000000000000000.000", string(out))
	})

	t.Run("MidDocumentPrecisionChange", func(t *testing.T) {
		var buf [64]byte
		w := NewWriter(buf[:])

		require.NoError(t, w.BeginArray())
		require.NoError(t, w.Float64(1.23456))
		w.SetFloatPrecision(1)
		require.NoError(t, w.Float64(1.23456))
		require.NoError(t, w.EndArray())

		out, err := w.Finalize()
		require.NoError(t, err)
		assert.Equal(t, "[1.235,1.2]", string(out))
	})
}

func TestFloatNonFinite(t *testing.T) {
	for name, v := range map[string]float64{
		"NaN":    math.NaN(),
		"PosInf": math.Inf(1),
		"NegInf": math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			var buf [32]byte
			w := NewWriter(buf[:])

			require.NoError(t, w.BeginArray())
			err := w.Float64(v)
			require.ErrorIs(t, err, ErrNonFiniteNumber)
			assert.False(t, w.Ok())
		})
	}
}

func TestFloatCapacity(t *testing.T) {
	t.Run("HugePrecisionHitsCapacity", func(t *testing.T) {
		buf := make([]byte, 32)
		w := NewWriter(buf)
		w.SetFloatPrecision(500)

		err := w.Float64(3.14159)
		require.ErrorIs(t, err, ErrBufferFull)
		// Nothing may have been written past the cursor's last valid state.
		assert.Equal(t, 0, w.Size())
	})

	t.Run("ExactRemainingSpace", func(t *testing.T) {
		buf := make([]byte, 5)
		w := NewWriter(buf)

		require.NoError(t, w.Float64(3.141)) // "3.141" is exactly 5 bytes
		out, err := w.Finalize()
		require.NoError(t, err)
		assert.Equal(t, "3.141", string(out))
	})
}
