package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKrwToUsd(t *testing.T) {
	tests := []struct {
		name     string
		priceKrw int64
		rate     float64
		want     int
	}{
		{
			name:     "exact division",
			priceKrw: 1400000,
			rate:     1400,
			want:     1000,
		},
		{
			name:     "rounds up",
			priceKrw: 450000,
			rate:     1400,
			want:     321, // 321.43
		},
		{
			name:     "rounds half away from zero",
			priceKrw: 2100,
			rate:     1400,
			want:     2, // 1.5
		},
		{
			name:     "zero price",
			priceKrw: 0,
			rate:     1400,
			want:     0,
		},
		{
			name:     "zero rate falls back",
			priceKrw: 1400000,
			rate:     0,
			want:     1000,
		},
		{
			name:     "negative rate falls back",
			priceKrw: 1400000,
			rate:     -5,
			want:     1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KrwToUsd(tt.priceKrw, tt.rate))
		})
	}
}
