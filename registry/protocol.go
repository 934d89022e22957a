package registry

import (
	"context"
	"math/big"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"
)

// UserResource is the representation of a user in the registry API.
type UserResource struct {
	Token   string `json:"token"`
	Created int64  `json:"created"`

	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// NewUserResource generates a new resource.
func NewUserResource(
	ctx context.Context,
	user *model.User,
) UserResource {
	return UserResource{
		Token:   user.Token,
		Created: user.Created.UnixNano() / TimeResolutionNs,

		Username: user.Username,
		Admin:    user.Admin,
	}
}

// AssetResource is the representation of an asset in the registry API.
type AssetResource struct {
	ID      int64  `json:"id"`
	Token   string `json:"token"`
	Created int64  `json:"created"`

	Location      string   `json:"location"`
	TotalValue    *big.Int `json:"total_value"`
	TotalTokens   *big.Int `json:"total_tokens"`
	PricePerToken *big.Int `json:"price_per_token"`
	Active        bool     `json:"active"`
	Owner         string   `json:"owner"`
}

// NewAssetResource generates a new resource.
func NewAssetResource(
	ctx context.Context,
	asset *model.Asset,
) AssetResource {
	return AssetResource{
		ID:      asset.ID,
		Token:   asset.Token,
		Created: asset.Created.UnixNano() / TimeResolutionNs,

		Location:      asset.Location,
		TotalValue:    (*big.Int)(&asset.TotalValue),
		TotalTokens:   (*big.Int)(&asset.TotalTokens),
		PricePerToken: asset.PricePerToken(),
		Active:        asset.Active,
		Owner:         asset.Owner,
	}
}

// BalanceResource is the representation of a global balance in the registry
// API.
type BalanceResource struct {
	Holder string   `json:"holder"`
	Value  *big.Int `json:"value"`
}

// NewBalanceResource generates a new resource.
func NewBalanceResource(
	ctx context.Context,
	balance *model.Balance,
) BalanceResource {
	return BalanceResource{
		Holder: balance.Holder,
		Value:  (*big.Int)(&balance.Value),
	}
}

// HoldingResource is the representation of a per-asset sub-balance in the
// registry API.
type HoldingResource struct {
	Asset  int64    `json:"asset"`
	Holder string   `json:"holder"`
	Value  *big.Int `json:"value"`
}

// NewHoldingResource generates a new resource.
func NewHoldingResource(
	ctx context.Context,
	holding *model.Holding,
) HoldingResource {
	return HoldingResource{
		Asset:  holding.Asset,
		Holder: holding.Holder,
		Value:  (*big.Int)(&holding.Value),
	}
}

// PortfolioResource is the representation of a holder's portfolio in the
// registry API: the asset ids the holder has ever held a nonzero sub-balance
// in, in acquisition order.
type PortfolioResource struct {
	Holder string  `json:"holder"`
	Assets []int64 `json:"assets"`
}

// NewPortfolioResource generates a new resource.
func NewPortfolioResource(
	ctx context.Context,
	holder string,
	entries []*model.PortfolioEntry,
) PortfolioResource {
	assets := []int64{}
	for _, e := range entries {
		assets = append(assets, e.Asset)
	}
	return PortfolioResource{
		Holder: holder,
		Assets: assets,
	}
}

// AccountResource is the representation of a settlement account in the
// registry API.
type AccountResource struct {
	Holder string   `json:"holder"`
	Funds  *big.Int `json:"funds"`
	Status string   `json:"status"`
}

// NewAccountResource generates a new resource.
func NewAccountResource(
	ctx context.Context,
	account *model.Account,
) AccountResource {
	return AccountResource{
		Holder: account.Holder,
		Funds:  (*big.Int)(&account.Funds),
		Status: string(account.Status),
	}
}

// PurchaseResource is the representation of a settled purchase in the
// registry API.
type PurchaseResource struct {
	Asset int64  `json:"asset"`
	Buyer string `json:"buyer"`

	Amount          *big.Int `json:"amount"`
	PricePerToken   *big.Int `json:"price_per_token"`
	RequiredPayment *big.Int `json:"required_payment"`
	PaymentSent     *big.Int `json:"payment_sent"`
	Refund          *big.Int `json:"refund"`
}

// TransferResource is the representation of a peer transfer in the registry
// API.
type TransferResource struct {
	Asset       int64  `json:"asset"`
	Source      string `json:"source"`
	Destination string `json:"destination"`

	Amount *big.Int `json:"amount"`
}

// EventResource is the representation of an observable event in the registry
// API.
type EventResource struct {
	Token   string `json:"token"`
	Created int64  `json:"created"`

	Type        string   `json:"type"`
	Asset       int64    `json:"asset"`
	Holder      string   `json:"holder"`
	Counterpart *string  `json:"counterpart"`
	Amount      *big.Int `json:"amount"`
	Payment     *big.Int `json:"payment"`
}

// NewEventResource generates a new resource.
func NewEventResource(
	ctx context.Context,
	event *model.Event,
) EventResource {
	return EventResource{
		Token:   event.Token,
		Created: event.Created.UnixNano() / TimeResolutionNs,

		Type:        string(event.Type),
		Asset:       event.Asset,
		Holder:      event.Holder,
		Counterpart: event.Counterpart,
		Amount:      (*big.Int)(&event.Amount),
		Payment:     (*big.Int)(&event.Payment),
	}
}
