package eth

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	wei := func(s string) *big.Int {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)
		return v
	}

	assert.Equal(t, "0", FormatAmount(nil))
	assert.Equal(t, "0", FormatAmount(big.NewInt(0)))
	assert.Equal(t, "1", FormatAmount(wei("1000000000000000000")))
	assert.Equal(t, "1.5", FormatAmount(wei("1500000000000000000")))
	assert.Equal(t, "0.000000000000000001", FormatAmount(big.NewInt(1)))
	assert.Equal(t, "10", FormatAmount(wei("10000000000000000000")))
}

func TestParseAmount(t *testing.T) {
	t.Run("Whole", func(t *testing.T) {
		got, err := ParseAmount("4")
		require.NoError(t, err)
		assert.Equal(t, "4000000000000000000", got.String())
	})

	t.Run("Fractional", func(t *testing.T) {
		got, err := ParseAmount("0.25")
		require.NoError(t, err)
		assert.Equal(t, "250000000000000000", got.String())
	})

	t.Run("Round Trip", func(t *testing.T) {
		got, err := ParseAmount("6")
		require.NoError(t, err)
		assert.Equal(t, "6", FormatAmount(got))
	})

	t.Run("Rejects Negative", func(t *testing.T) {
		_, err := ParseAmount("-1")
		assert.Error(t, err)
	})

	t.Run("Rejects Empty", func(t *testing.T) {
		_, err := ParseAmount("")
		assert.Error(t, err)
	})

	t.Run("Rejects Excess Precision", func(t *testing.T) {
		_, err := ParseAmount("0.1234567890123456789")
		assert.Error(t, err)
	})

	t.Run("Rejects Garbage", func(t *testing.T) {
		_, err := ParseAmount("ten")
		assert.Error(t, err)
	})
}
