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

// A purchase whose monetary settlement fails at the very last step (the
// owner account is frozen at credit time) must leave no trace: no token
// moves, no account moves, no portfolio entry, no event.
func TestPurchaseRollsBackWhenOwnerAccountFrozen(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 100000)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	owner.FreezeAccount(t)

	status, raw := buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"10"},
			"payment": {"10000"},
		})

	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "account_frozen", e.Code)

	// Token moves rolled back.
	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, owner.Username))
	var holding registry.HoldingResource
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "1000", holding.Value.String())

	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, buyer.Username))
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "0", holding.Value.String())

	_, raw = r.Get(t, fmt.Sprintf("/balances/%s", buyer.Username))
	var balance registry.BalanceResource
	if err := raw.Extract("balance", &balance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "0", balance.Value.String())

	// Account moves rolled back.
	_, raw = buyer.Get(t, fmt.Sprintf("/accounts/%s", buyer.Username))
	var account registry.AccountResource
	if err := raw.Extract("account", &account); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "100000", account.Funds.String())

	// Portfolio entry rolled back.
	_, raw = r.Get(t, fmt.Sprintf("/portfolios/%s", buyer.Username))
	var portfolio registry.PortfolioResource
	if err := raw.Extract("portfolio", &portfolio); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int64{}, portfolio.Assets)

	// No purchase event; the tokenization event is the only one.
	_, raw = r.Get(t, fmt.Sprintf("/events?asset=%d", asset.ID))
	var events []registry.EventResource
	if err := raw.Extract("events", &events); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, events, 1)
	assert.Equal(t, "asset_tokenized", events[0].Type)
}

// A frozen buyer account fails the purchase up front.
func TestPurchaseRefusedWhenBuyerAccountFrozen(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 100000)
	buyer.FreezeAccount(t)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	status, raw := buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"10"},
			"payment": {"10000"},
		})

	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "account_frozen", e.Code)
}
