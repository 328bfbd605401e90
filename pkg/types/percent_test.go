package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentFraction(t *testing.T) {
	cases := []struct {
		name string
		in   Percent
		want float64
	}{
		{"with suffix", "10%", 0.1},
		{"without suffix", "10", 0.1},
		{"fractional", "2.5%", 0.025},
		{"padded", " 7 % ", 0.07},
		{"zero", "0%", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Fraction()
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestPercentFraction_Invalid(t *testing.T) {
	for _, in := range []Percent{"", "%", "ten%", "10%%"} {
		_, err := in.Fraction()
		assert.Error(t, err, "input %q", in)
	}
}
