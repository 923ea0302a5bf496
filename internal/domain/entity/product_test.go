package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductStatus_String(t *testing.T) {
	assert.Equal(t, "active", ProductActive.String())
	assert.Equal(t, "inactive", ProductInactive.String())
}

func TestProductStatus_IsValid(t *testing.T) {
	assert.True(t, ProductActive.IsValid())
	assert.True(t, ProductInactive.IsValid())
	assert.False(t, ProductStatus("archived").IsValid())
	assert.False(t, ProductStatus("").IsValid())
}
