package functional

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/test"
)

func TestPortfolioOrderedByAcquisition(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 1000000)

	first := setupAsset(t, r, owner, "1000000", "1000")
	second := setupAsset(t, r, owner, "500000", "500")

	// Acquire the second asset first, then the first one.
	status, _ := buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", second.ID), url.Values{
			"amount":  {"1"},
			"payment": {"1000"},
		})
	assert.Equal(t, 201, status)

	status, _ = buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", first.ID), url.Values{
			"amount":  {"1"},
			"payment": {"1000"},
		})
	assert.Equal(t, 201, status)

	_, raw := r.Get(t, fmt.Sprintf("/portfolios/%s", buyer.Username))
	var portfolio registry.PortfolioResource
	if err := raw.Extract("portfolio", &portfolio); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int64{second.ID, first.ID}, portfolio.Assets)
}

// The portfolio is append-once: an asset stays listed once acquired, even
// when the sub-balance later returns to zero, and re-acquiring does not
// duplicate it.
func TestPortfolioAppendOnce(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 1000000)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	status, _ := buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"10"},
			"payment": {"10000"},
		})
	assert.Equal(t, 201, status)

	// Transfer everything back to the owner: the sub-balance drops to zero
	// but the portfolio keeps the asset.
	status, _ = buyer.Post(t,
		fmt.Sprintf("/assets/%d/transfers", asset.ID), url.Values{
			"destination": {owner.Username},
			"amount":      {"10"},
		})
	assert.Equal(t, 201, status)

	_, raw := r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, buyer.Username))
	var holding registry.HoldingResource
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "0", holding.Value.String())

	_, raw = r.Get(t, fmt.Sprintf("/portfolios/%s", buyer.Username))
	var portfolio registry.PortfolioResource
	if err := raw.Extract("portfolio", &portfolio); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int64{asset.ID}, portfolio.Assets)

	// Re-acquiring does not duplicate the entry.
	status, _ = buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"5"},
			"payment": {"5000"},
		})
	assert.Equal(t, 201, status)

	_, raw = r.Get(t, fmt.Sprintf("/portfolios/%s", buyer.Username))
	if err := raw.Extract("portfolio", &portfolio); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int64{asset.ID}, portfolio.Assets)
}

func TestPortfolioEmptyForUnknownHolder(
	t *testing.T,
) {
	r := test.CreateRegistry(t)

	status, raw := r.Get(t, "/portfolios/nobody")
	assert.Equal(t, 200, status)

	var portfolio registry.PortfolioResource
	if err := raw.Extract("portfolio", &portfolio); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int64{}, portfolio.Assets)
}
