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

func TestDeactivateBlocksPurchasesUntilReactivation(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	buyer := r.CreateUser(t)
	buyer.FundAccount(t, 100000)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	status, raw := owner.Post(t,
		fmt.Sprintf("/assets/%d/deactivate", asset.ID), url.Values{})
	assert.Equal(t, 200, status)

	var deactivated registry.AssetResource
	if err := raw.Extract("asset", &deactivated); err != nil {
		t.Fatal(err)
	}
	assert.False(t, deactivated.Active)

	status, raw = buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"10"},
			"payment": {"10000"},
		})
	assert.Equal(t, 400, status)

	var e errors.ConcreteUserError
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "asset_inactive", e.Code)

	status, raw = owner.Post(t,
		fmt.Sprintf("/assets/%d/activate", asset.ID), url.Values{})
	assert.Equal(t, 200, status)

	var activated registry.AssetResource
	if err := raw.Extract("asset", &activated); err != nil {
		t.Fatal(err)
	}
	assert.True(t, activated.Active)

	status, _ = buyer.Post(t,
		fmt.Sprintf("/assets/%d/purchases", asset.ID), url.Values{
			"amount":  {"10"},
			"payment": {"10000"},
		})
	assert.Equal(t, 201, status)
}

func TestActivateDeactivateOwnerOrAdminOnly(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)
	other := r.CreateUser(t)
	admin := r.CreateAdmin(t)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	var e errors.ConcreteUserError

	status, raw := other.Post(t,
		fmt.Sprintf("/assets/%d/deactivate", asset.ID), url.Values{})
	assert.Equal(t, 401, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "not_authorized", e.Code)

	status, raw = other.Post(t,
		fmt.Sprintf("/assets/%d/activate", asset.ID), url.Values{})
	assert.Equal(t, 401, status)
	if err := raw.Extract("error", &e); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "not_authorized", e.Code)

	// The asset is untouched.
	_, raw = r.Get(t, fmt.Sprintf("/assets/%d", asset.ID))
	var current registry.AssetResource
	if err := raw.Extract("asset", &current); err != nil {
		t.Fatal(err)
	}
	assert.True(t, current.Active)

	// An admin who does not own the asset can deactivate and activate it.
	status, raw = admin.Post(t,
		fmt.Sprintf("/assets/%d/deactivate", asset.ID), url.Values{})
	assert.Equal(t, 200, status)
	if err := raw.Extract("asset", &current); err != nil {
		t.Fatal(err)
	}
	assert.False(t, current.Active)

	status, raw = admin.Post(t,
		fmt.Sprintf("/assets/%d/activate", asset.ID), url.Values{})
	assert.Equal(t, 200, status)
	if err := raw.Extract("asset", &current); err != nil {
		t.Fatal(err)
	}
	assert.True(t, current.Active)
}

// Activating an active asset or deactivating an inactive one is a no-op and
// emits no event.
func TestActivateDeactivateIdempotent(
	t *testing.T,
) {
	r := test.CreateRegistry(t)
	owner := r.CreateUser(t)

	asset := setupAsset(t, r, owner, "1000000", "1000")

	status, _ := owner.Post(t,
		fmt.Sprintf("/assets/%d/activate", asset.ID), url.Values{})
	assert.Equal(t, 200, status)

	_, raw := r.Get(t, fmt.Sprintf("/events?asset=%d", asset.ID))
	var events []registry.EventResource
	if err := raw.Extract("events", &events); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, events, 1)

	status, _ = owner.Post(t,
		fmt.Sprintf("/assets/%d/deactivate", asset.ID), url.Values{})
	assert.Equal(t, 200, status)
	status, _ = owner.Post(t,
		fmt.Sprintf("/assets/%d/deactivate", asset.ID), url.Values{})
	assert.Equal(t, 200, status)

	_, raw = r.Get(t, fmt.Sprintf("/events?asset=%d", asset.ID))
	if err := raw.Extract("events", &events); err != nil {
		t.Fatal(err)
	}
	assert.Len(t, events, 2)
	assert.Equal(t, "asset_deactivated", events[1].Type)
}
