package endpoint

import (
	"context"
	"math/big"
	"net/http"

	"goji.io/pat"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/db"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/format"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/ptr"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/svc"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/lib/authentication"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"
)

const (
	// EndPtTransferTokens transfers tokens between holders.
	EndPtTransferTokens EndPtName = "TransferTokens"
)

func init() {
	registrar[EndPtTransferTokens] = NewTransferTokens
}

// TransferTokens moves tokens on an asset from the authenticated holder to
// another holder, with no monetary settlement. Transfers are allowed on
// inactive assets: deactivation closes the primary market, not the tokens
// already in circulation.
type TransferTokens struct {
	Source      string
	Asset       int64
	Destination string
	Amount      big.Int
}

// NewTransferTokens constructs and initialiezes the endpoint.
func NewTransferTokens(
	r *http.Request,
) (Endpoint, error) {
	return &TransferTokens{}, nil
}

// Validate validates the input parameters.
func (e *TransferTokens) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Source = authentication.Get(ctx).User.Username

	asset, err := ValidateAssetID(ctx, pat.Param(r, "asset"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Asset = asset

	amount, err := ValidateAmount(ctx, r.PostFormValue("amount"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Amount = *amount

	e.Destination = r.PostFormValue("destination")

	return nil
}

// Execute executes the endpoint.
func (e *TransferTokens) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	asset, err := model.LoadAssetByID(ctx, e.Asset)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if asset == nil {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			404, "asset_not_found",
			"The asset you are trying to transfer tokens on does not "+
				"exist: %d.",
			e.Asset,
		))
	}

	if e.Amount.Cmp(new(big.Int)) == 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "amount_invalid",
			"The amount you provided is invalid: 0. Transfers must be for "+
				"a strictly positive number of tokens.",
		))
	}

	destination, err := model.LoadUserByUsername(ctx, e.Destination)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	if destination == nil || e.Destination == e.Source {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "recipient_invalid",
			"The destination you provided is invalid: %s. Destinations "+
				"must be existing holders other than yourself.",
			e.Destination,
		))
	}

	srcHolding, err := model.LoadHoldingByAssetHolder(ctx,
		asset.ID, e.Source)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	if srcHolding == nil ||
		(*big.Int)(&srcHolding.Value).Cmp(&e.Amount) < 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "balance_insufficient",
			"You do not hold enough tokens on this asset to cover the "+
				"transfer: %d tokens requested.",
			&e.Amount,
		))
	}

	srcBalance, err := model.LoadBalanceByHolder(ctx, e.Source)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	if srcBalance == nil ||
		(*big.Int)(&srcBalance.Value).Cmp(&e.Amount) < 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "balance_insufficient",
			"You do not hold enough tokens to cover the transfer: %d "+
				"tokens requested.",
			&e.Amount,
		))
	}

	// Move the tokens on the global pool.
	(*big.Int)(&srcBalance.Value).Sub(
		(*big.Int)(&srcBalance.Value), &e.Amount)
	err = srcBalance.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	dstBalance, err := model.LoadOrCreateBalanceByHolder(ctx, e.Destination)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	(*big.Int)(&dstBalance.Value).Add(
		(*big.Int)(&dstBalance.Value), &e.Amount)
	err = dstBalance.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	// Move the sub-balances for the asset.
	(*big.Int)(&srcHolding.Value).Sub(
		(*big.Int)(&srcHolding.Value), &e.Amount)
	err = srcHolding.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	dstHolding, err := model.LoadOrCreateHoldingByAssetHolder(ctx,
		asset.ID, e.Destination)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	(*big.Int)(&dstHolding.Value).Add(
		(*big.Int)(&dstHolding.Value), &e.Amount)
	err = dstHolding.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	// Append the asset to the destination portfolio on first acquisition.
	entry, err := model.LoadPortfolioEntryByHolderAsset(ctx,
		e.Destination, asset.ID)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if entry == nil {
		_, err = model.CreatePortfolioEntry(ctx, e.Destination, asset.ID)
		if err != nil {
			return nil, nil, errors.Trace(err) // 500
		}
	}

	_, err = model.CreateEvent(ctx,
		model.EvTpTokensTransferred,
		asset.ID, e.Source, ptr.Str(e.Destination),
		model.Amount(e.Amount), model.Amount{})
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusCreated), &svc.Resp{
		"transfer": format.JSONPtr(registry.TransferResource{
			Asset:       asset.ID,
			Source:      e.Source,
			Destination: e.Destination,
			Amount:      &e.Amount,
		}),
	}, nil
}
