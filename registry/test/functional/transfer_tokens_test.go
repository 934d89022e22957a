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

func TestTransferTokensSimple(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	friend := r.CreateUser(t)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	status, raw := owner.Post(t,
		fmt.Sprintf("/assets/%d/transfers", asset.ID), url.Values{
			"destination": {friend.Username},
			"amount":      {"250"},
		})

	assert.Equal(t, 201, status)

	var transfer registry.TransferResource
	if err := raw.Extract("transfer", &transfer); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, asset.ID, transfer.Asset)
	assert.Equal(t, owner.Username, transfer.Source)
	assert.Equal(t, friend.Username, transfer.Destination)
	assert.Equal(t, "250", transfer.Amount.String())

	// Sub-balances moved, supply conserved.
	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, owner.Username))
	var holding registry.HoldingResource
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "750", holding.Value.String())

	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, friend.Username))
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "250", holding.Value.String())

	// Global balances moved as well.
	_, raw = r.Get(t, fmt.Sprintf("/balances/%s", friend.Username))
	var balance registry.BalanceResource
	if err := raw.Extract("balance", &balance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "250", balance.Value.String())

	// The asset was appended to the destination portfolio.
	_, raw = r.Get(t, fmt.Sprintf("/portfolios/%s", friend.Username))
	var portfolio registry.PortfolioResource
	if err := raw.Extract("portfolio", &portfolio); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []int64{asset.ID}, portfolio.Assets)

	// A transfer event was emitted.
	_, raw = r.Get(t, fmt.Sprintf("/events?asset=%d", asset.ID))
	var events []registry.EventResource
	if err := raw.Extract("events", &events); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, events, 2)
	assert.Equal(t, "tokens_transferred", events[1].Type)
	assert.Equal(t, owner.Username, events[1].Holder)
	assert.Equal(t, friend.Username, *events[1].Counterpart)
}

// Transfers do not check the asset active flag: deactivation closes the
// primary market but tokens in circulation keep moving.
func TestTransferTokensAllowedOnInactiveAsset(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	friend := r.CreateUser(t)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	status, _ := owner.Post(t,
		fmt.Sprintf("/assets/%d/deactivate", asset.ID), url.Values{})
	assert.Equal(t, 200, status)

	status, raw := owner.Post(t,
		fmt.Sprintf("/assets/%d/transfers", asset.ID), url.Values{
			"destination": {friend.Username},
			"amount":      {"10"},
		})

	assert.Equal(t, 201, status)

	var transfer registry.TransferResource
	if err := raw.Extract("transfer", &transfer); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "10", transfer.Amount.String())
}

func TestTransferTokensFailures(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	friend := r.CreateUser(t)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	var e errors.ConcreteUserError

	// More tokens than held.
	status, raw := owner.Post(t,
		fmt.Sprintf("/assets/%d/transfers", asset.ID), url.Values{
			"destination": {friend.Username},
			"amount":      {"1001"},
		})
	assert.Equal(t, 400, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "balance_insufficient", e.Code)

	// Transfer to self.
	status, raw = owner.Post(t,
		fmt.Sprintf("/assets/%d/transfers", asset.ID), url.Values{
			"destination": {owner.Username},
			"amount":      {"10"},
		})
	assert.Equal(t, 400, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "recipient_invalid", e.Code)

	// Transfer to an unknown holder.
	status, raw = owner.Post(t,
		fmt.Sprintf("/assets/%d/transfers", asset.ID), url.Values{
			"destination": {"nobody"},
			"amount":      {"10"},
		})
	assert.Equal(t, 400, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "recipient_invalid", e.Code)

	// Zero amount.
	status, raw = owner.Post(t,
		fmt.Sprintf("/assets/%d/transfers", asset.ID), url.Values{
			"destination": {friend.Username},
			"amount":      {"0"},
		})
	assert.Equal(t, 400, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "amount_invalid", e.Code)

	// Nothing moved.
	_, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/%s", asset.ID, owner.Username))
	var holding registry.HoldingResource
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "1000", holding.Value.String())
}
