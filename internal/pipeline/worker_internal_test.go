package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShardFor_SingleShardAlwaysZero(t *testing.T) {
	assert.Equal(t, 0, shardFor("AAPL", 1))
	assert.Equal(t, 0, shardFor("ANYTHING", 1))
}

func TestShardFor_SameAssetSameShard(t *testing.T) {
	a := shardFor("AAPL", 4)
	b := shardFor("AAPL", 4)
	assert.Equal(t, a, b)
}

func TestShardFor_WithinRange(t *testing.T) {
	for _, asset := range []string{"AAPL", "HGLG11", "MSFT", "X", "Y", "Z"} {
		idx := shardFor(asset, 4)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
	}
}
