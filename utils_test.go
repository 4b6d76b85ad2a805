package probemap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		input uint32
		want  uint32
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{1000, 1024},
		{1 << 20, 1 << 20},
		{(1 << 20) + 1, 1 << 21},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(int(tt.input)), func(t *testing.T) {
			require.Equal(t, tt.want, NextPowerOf2(tt.input))
		})
	}
}
