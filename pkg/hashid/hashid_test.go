package hashid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	codec, err := New("test-salt")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		for _, id := range []int64{0, 1, 7, 42, 999999} {
			code, err := codec.Encode(id)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(code), 6)

			back, err := codec.Decode(code)
			require.NoError(t, err)
			require.Equal(t, id, back)
		}
	})

	t.Run("salt changes the codes", func(t *testing.T) {
		other, err := New("another-salt")
		require.NoError(t, err)

		a, err := codec.Encode(7)
		require.NoError(t, err)
		b, err := other.Encode(7)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("garbage does not decode", func(t *testing.T) {
		_, err := codec.Decode("!!!")
		require.Error(t, err)
	})
}
