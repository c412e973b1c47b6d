package helpers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarsToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"49.5", 4950},
		{"45", 4500},
		{"0", 0},
		{"19.999", 2000},
		{"10.004", 1000},
		{"10.005", 1001},
		{"92233720368547758.07", 9223372036854775807},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			cents, err := DollarsToCents(decimal.RequireFromString(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, cents)
		})
	}

	t.Run("Should reject amounts that overflow int64 cents", func(t *testing.T) {
		for _, in := range []string{"92233720368547758.08", "184467440737095516.17", "1e20", "-1e20"} {
			_, err := DollarsToCents(decimal.RequireFromString(in))
			assert.ErrorIs(t, err, ErrAmountOutOfRange, in)
		}
	})
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("soon", time.Hour))
}
