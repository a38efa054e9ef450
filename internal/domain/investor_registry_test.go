package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bourse/internal/domain"
)

func TestInvestorRegistry_GetOrCreateForBuy_SeedsEmptyHoldings(t *testing.T) {
	reg := domain.NewInvestorRegistry()

	inv := reg.GetOrCreateForBuy("I1", "Jane")
	assert.Equal(t, "I1", inv.InvestorID)
	assert.Empty(t, inv.Holdings)

	got, ok := reg.Get("I1")
	assert.True(t, ok)
	assert.Same(t, inv, got)
}

func TestInvestorRegistry_GetOrCreateForSell_SeedsQuantity(t *testing.T) {
	reg := domain.NewInvestorRegistry()

	inv := reg.GetOrCreateForSell("I1", "Jane", "X", 10)
	assert.Equal(t, uint64(10), inv.Holdings["X"])
}

// TestInvestorRegistry_ReSighting confirms that a previously seen
// investor_id is returned untouched on a later sighting, even if that
// later order would otherwise seed different holdings. This is what
// lets a seller's holdings run dry across multiple orders.
func TestInvestorRegistry_ReSighting_ReturnsExistingRecordUntouched(t *testing.T) {
	reg := domain.NewInvestorRegistry()

	first := reg.GetOrCreateForSell("I1", "Jane", "X", 3)
	assert.Equal(t, uint64(3), first.Holdings["X"])

	second := reg.GetOrCreateForSell("I1", "Jane", "X", 10)
	assert.Same(t, first, second)
	assert.Equal(t, uint64(3), second.Holdings["X"])
}

func TestInvestorRegistry_Get_MissingReturnsFalse(t *testing.T) {
	reg := domain.NewInvestorRegistry()
	_, ok := reg.Get("nope")
	assert.False(t, ok)
}
