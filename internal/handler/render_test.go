package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRupiah(t *testing.T) {
	assert.Equal(t, "Rp0", Rupiah(0))
	assert.Equal(t, "Rp500", Rupiah(500))
	assert.Equal(t, "Rp10.000", Rupiah(10_000))
	assert.Equal(t, "Rp1.000.000", Rupiah(1_000_000))
	assert.Equal(t, "-Rp50.000", Rupiah(-50_000))
}
