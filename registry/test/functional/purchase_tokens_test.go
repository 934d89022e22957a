package functional

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/test"
)

func setupAsset(
	t *testing.T,
	r *test.Registry,
	owner *test.User,
	totalValue string,
	totalTokens string,
) registry.AssetResource {
	_, raw := owner.Post(t, "/assets", url.Values{
		"location":     {"23 Avenue de la Bourdonnais, Paris"},
		"total_value":  {totalValue},
		"total_tokens": {totalTokens},
	})
	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		t.Fatal(err)
	}
	return asset
}

func TestPurchaseTokensSimple(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 100000)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	status, raw := buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"10"},
			"payment": {"10000"},
		})

	assert.Equal(t, 201, status)

	var purchase registry.PurchaseResource
	if err := raw.Extract("purchase", &purchase); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, asset.ID, purchase.Asset)
	assert.Equal(t, buyer.Username, purchase.Buyer)
	assert.Equal(t, "10", purchase.Amount.String())
	assert.Equal(t, "1000", purchase.PricePerToken.String())
	assert.Equal(t, "10000", purchase.RequiredPayment.String())
	assert.Equal(t, "10000", purchase.PaymentSent.String())
	assert.Equal(t, "0", purchase.Refund.String())

	// Token supply is conserved across the two holders.
	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, owner.Username))
	var holding registry.HoldingResource
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "990", holding.Value.String())

	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, buyer.Username))
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "10", holding.Value.String())

	// The payment moved from the buyer account to the owner account.
	_, raw = buyer.Get(t, fmt.Sprintf("/accounts/%s", buyer.Username))
	var account registry.AccountResource
	if err := raw.Extract("account", &account); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "90000", account.Funds.String())

	_, raw = owner.Get(t, fmt.Sprintf("/accounts/%s", owner.Username))
	if err := raw.Extract("account", &account); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "10000", account.Funds.String())

	// The asset was appended to the buyer portfolio.
	_, raw = r.Get(t, fmt.Sprintf("/portfolios/%s", buyer.Username))
	var portfolio registry.PortfolioResource
	if err := raw.Extract("portfolio", &portfolio); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int64{asset.ID}, portfolio.Assets)
}

func TestPurchaseTokensTruncatedPrice(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 10)

	// 100 value over 1000 tokens truncates to a price of 0 per token.
	asset := setupAsset(t, r, owner, "100", "1000")
	assert.Equal(t, "0", asset.PricePerToken.String())

	status, raw := buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"100"},
			"payment": {"10"},
		})

	assert.Equal(t, 201, status)

	var purchase registry.PurchaseResource
	if err := raw.Extract("purchase", &purchase); err != nil {
		t.Fatal(err)
	}

	// The required payment is 0 so the whole payment comes back as refund.
	assert.Equal(t, "0", purchase.RequiredPayment.String())
	assert.Equal(t, "10", purchase.Refund.String())

	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, owner.Username))
	var holding registry.HoldingResource
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "900", holding.Value.String())

	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, buyer.Username))
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "100", holding.Value.String())

	_, raw = buyer.Get(t, fmt.Sprintf("/accounts/%s", buyer.Username))
	var account registry.AccountResource
	if err := raw.Extract("account", &account); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "10", account.Funds.String())
}

func TestPurchaseTokensPreconditions(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 100000)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	var e errors.ConcreteUserError

	// Unknown asset.
	status, raw := buyer.Post(t, "/assets/42/purchases", url.Values{
		"amount":  {"10"},
		"payment": {"10000"},
	})
	assert.Equal(t, 404, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "asset_not_found", e.Code)

	// Zero amount.
	status, raw = buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"0"},
			"payment": {"10000"},
		})
	assert.Equal(t, 400, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "amount_invalid", e.Code)

	// Insufficient payment.
	status, raw = buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"10"},
			"payment": {"9999"},
		})
	assert.Equal(t, 400, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "payment_insufficient", e.Code)

	// Owner purchasing its own asset.
	status, raw = owner.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"10"},
			"payment": {"10000"},
		})
	assert.Equal(t, 400, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "recipient_invalid", e.Code)

	// No state moved across all the failures above.
	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, owner.Username))
	var holding registry.HoldingResource
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "1000", holding.Value.String())

	_, raw = buyer.Get(t, fmt.Sprintf("/accounts/%s", buyer.Username))
	var account registry.AccountResource
	if err := raw.Extract("account", &account); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "100000", account.Funds.String())
}

func TestPurchaseTokensInsufficientSupply(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 100000000)

	asset := setupAsset(t, r, owner, "10000", "10")

	status, raw := buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"11"},
			"payment": {"11000"},
		})

	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "supply_insufficient", e.Code)

	// State is unchanged.
	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, owner.Username))
	var holding registry.HoldingResource
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "10", holding.Value.String())

	_, raw = buyer.Get(t, fmt.Sprintf("/accounts/%s", buyer.Username))
	var account registry.AccountResource
	if err := raw.Extract("account", &account); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "100000000", account.Funds.String())
}

func TestPurchaseTokensInsufficientFunds(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 500)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	status, raw := buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"1"},
			"payment": {"1000"},
		})

	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "account_insufficient_funds", e.Code)
}
