package functional

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/test"
)

func TestRetrieveAssetAndListAssets(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)

	first := setupAsset(t, r, owner, "1000000", "1000")
	second := setupAsset(t, r, owner, "500000", "500")

	// Reads are public, no authentication needed.
	status, raw := r.Get(t, fmt.Sprintf("/assets/%d", first.ID))
	assert.Equal(t, 200, status)

	var asset registry.AssetResource
	if err := raw.Extract("asset", &asset); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, first.ID, asset.ID)
	assert.Equal(t, "1000", asset.PricePerToken.String())

	status, raw = r.Get(t, "/assets")
	assert.Equal(t, 200, status)

	var assets []registry.AssetResource
	if err := raw.Extract("assets", &assets); err != nil {
		t.Fatal(err)
	}
	var count int
	if err := raw.Extract("count", &count); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 2, count)
	assert.Len(t, assets, 2)
	assert.Equal(t, first.ID, assets[0].ID)
	assert.Equal(t, second.ID, assets[1].ID)
}

func TestRetrieveAssetNotFound(
	t *testing.T,
) {
	r := test.CreateRegistry(t)

	status, raw := r.Get(t, "/assets/42")
	assert.Equal(t, 404, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "asset_not_found", e.Code)
}

func TestRetrieveZeroBalancesAndHoldings(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	// A holder with no recorded balance reads as zero.
	status, raw := r.Get(t, "/balances/nobody")
	assert.Equal(t, 200, status)

	var balance registry.BalanceResource
	if err := raw.Extract("balance", &balance); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "0", balance.Value.String())

	status, raw = r.Get(t,
		fmt.Sprintf("/assets/%d/holdings/nobody", asset.ID))
	assert.Equal(t, 200, status)

	var holding registry.HoldingResource
	if err := raw.Extract("holding", &holding); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "0", holding.Value.String())

	// But a holding on an unknown asset is a 404.
	status, raw = r.Get(t, "/assets/42/holdings/nobody")
	assert.Equal(t, 404, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "asset_not_found", e.Code)
}

func TestRetrieveAccountRestrictedToHolderOrAdmin(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	admin := r.CreateAdmin(t)
	user := r.CreateUser(t)
	other := r.CreateUser(t)
	user.FundAccount(t, 500)

	// The holder reads its own account.
	status, raw := user.Get(t, fmt.Sprintf("/accounts/%s", user.Username))
	assert.Equal(t, 200, status)

	var account registry.AccountResource
	if err := raw.Extract("account", &account); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "500", account.Funds.String())
	assert.Equal(t, "open", account.Status)

	// An admin reads anyone's account.
	status, raw = admin.Get(t, fmt.Sprintf("/accounts/%s", user.Username))
	assert.Equal(t, 200, status)

	// Another user does not.
	status, raw = other.Get(t, fmt.Sprintf("/accounts/%s", user.Username))
	assert.Equal(t, 401, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "not_authorized", e.Code)
}
