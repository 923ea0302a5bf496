package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole dollars", amount: 25, want: 2500},
		{name: "cents", amount: 19.99, want: 1999},
		{name: "float artifact", amount: 0.1 + 0.2, want: 30},
		{name: "zero", amount: 0, want: 0},
		{name: "fifty cents", amount: 10.5, want: 1050},
		{name: "negative", amount: -12.34, want: -1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinorUnits(tt.amount))
		})
	}
}
