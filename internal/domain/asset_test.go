package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bourse/internal/domain"
)

func TestAsset_EqualityOnAssetID(t *testing.T) {
	a := domain.NewAsset("X")
	b := domain.NewAsset("X")
	c := domain.NewAsset("Y")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
