package endpoint

import (
	"context"
	"math/big"
	"net/http"

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
	// EndPtTokenizeAsset tokenizes a new asset.
	EndPtTokenizeAsset EndPtName = "TokenizeAsset"
)

func init() {
	registrar[EndPtTokenizeAsset] = NewTokenizeAsset
}

// TokenizeAsset controls the tokenization of new assets. The authenticated
// user becomes the asset owner; the full token supply is minted to it on the
// global pool along with the full sub-balance for the new asset.
type TokenizeAsset struct {
	Owner       string
	Location    string
	TotalValue  big.Int
	TotalTokens big.Int
}

// NewTokenizeAsset constructs and initialiezes the endpoint.
func NewTokenizeAsset(
	r *http.Request,
) (Endpoint, error) {
	return &TokenizeAsset{}, nil
}

// Validate validates the input parameters.
func (e *TokenizeAsset) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Owner = authentication.Get(ctx).User.Username

	location := r.PostFormValue("location")
	if location == "" {
		return errors.Trace(errors.NewUserErrorf(nil,
			400, "location_invalid",
			"The location you provided is empty. Assets must have a "+
				"descriptive location.",
		))
	}
	e.Location = location

	totalValue, err := ValidateAmount(ctx, r.PostFormValue("total_value"))
	if err != nil {
		totalValue = new(big.Int)
	}
	if totalValue.Cmp(new(big.Int)) == 0 {
		return errors.Trace(errors.NewUserErrorf(err,
			400, "value_invalid",
			"The total value you provided is invalid: %s. Total values "+
				"must be positive integers in the smallest monetary unit.",
			r.PostFormValue("total_value"),
		))
	}
	e.TotalValue = *totalValue

	totalTokens, err := ValidateAmount(ctx, r.PostFormValue("total_tokens"))
	if err != nil {
		totalTokens = new(big.Int)
	}
	if totalTokens.Cmp(new(big.Int)) == 0 {
		return errors.Trace(errors.NewUserErrorf(err,
			400, "tokens_invalid",
			"The total token supply you provided is invalid: %s. Total "+
				"token supplies must be positive integers.",
			r.PostFormValue("total_tokens"),
		))
	}
	e.TotalTokens = *totalTokens

	return nil
}

// Execute executes the endpoint.
func (e *TokenizeAsset) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	ctx = db.Begin(ctx)
	defer db.LoggedRollback(ctx)

	asset, err := model.CreateAsset(ctx,
		e.Location,
		model.Amount(e.TotalValue),
		model.Amount(e.TotalTokens),
		e.Owner,
	)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	// Mint the full supply to the owner on the global pool. This increases
	// total token supply; it is not a transfer from any other holder.
	balance, err := model.LoadOrCreateBalanceByHolder(ctx, e.Owner)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	(*big.Int)(&balance.Value).Add(
		(*big.Int)(&balance.Value), &e.TotalTokens)
	if (*big.Int)(&balance.Value).Cmp(model.MaxAmount) >= 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "tokens_invalid",
			"The resulting owner balance is too large: %s. Balances must "+
				"be integers between 0 and 2^128.",
			(*big.Int)(&balance.Value).String(),
		))
	}
	err = balance.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	_, err = model.CreateHolding(ctx,
		asset.ID, e.Owner, model.Amount(e.TotalTokens))
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	_, err = model.CreatePortfolioEntry(ctx, e.Owner, asset.ID)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	_, err = model.CreateEvent(ctx,
		model.EvTpAssetTokenized,
		asset.ID, e.Owner, nil,
		model.Amount(e.TotalTokens), model.Amount{})
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusCreated), &svc.Resp{
		"asset": format.JSONPtr(registry.NewAssetResource(ctx, asset)),
	}, nil
}
