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
	// EndPtPurchaseTokens purchases tokens on an asset.
	EndPtPurchaseTokens EndPtName = "PurchaseTokens"
)

func init() {
	registrar[EndPtPurchaseTokens] = NewPurchaseTokens
}

// PurchaseTokens settles a token purchase: it validates the asset and
// payment, moves tokens from the asset owner to the buyer (global balance
// and sub-balance), settles the required payment to the owner account and
// refunds any overpayment to the buyer account. Everything runs under one
// transaction: if the monetary settlement cannot complete, the token moves
// roll back with it.
type PurchaseTokens struct {
	Buyer   string
	Asset   int64
	Amount  big.Int
	Payment big.Int
}

// NewPurchaseTokens constructs and initialiezes the endpoint.
func NewPurchaseTokens(
	r *http.Request,
) (Endpoint, error) {
	return &PurchaseTokens{}, nil
}

// Validate validates the input parameters.
func (e *PurchaseTokens) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Buyer = authentication.Get(ctx).User.Username

	asset, err := ValidateAssetID(ctx, pat.Param(r, "asset"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Asset = asset

	// Zero amounts parse here and are rejected in Execute, after the asset
	// existence and active checks, to preserve the precondition order.
	amount, err := ValidateAmount(ctx, r.PostFormValue("amount"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Amount = *amount

	payment, err := ValidateAmount(ctx, r.PostFormValue("payment"))
	if err != nil {
		return errors.Trace(errors.NewUserErrorf(err,
			400, "payment_invalid",
			"The payment you provided is invalid: %s. Payments must be "+
				"integers between 0 and 2^128.",
			r.PostFormValue("payment"),
		))
	}
	e.Payment = *payment

	return nil
}

// Execute executes the endpoint.
func (e *PurchaseTokens) Execute(
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
			"The asset you are trying to purchase tokens on does not "+
				"exist: %d.",
			e.Asset,
		))
	}

	if !asset.Active {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "asset_inactive",
			"The asset you are trying to purchase tokens on is inactive: "+
				"%d. Inactive assets accept no new purchases.",
			asset.ID,
		))
	}

	if e.Amount.Cmp(new(big.Int)) == 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "amount_invalid",
			"The amount you provided is invalid: 0. Purchases must be for "+
				"a strictly positive number of tokens.",
		))
	}

	if e.Buyer == asset.Owner {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "recipient_invalid",
			"You cannot purchase tokens on an asset you own: %d.",
			asset.ID,
		))
	}

	// The price per token is derived from the stored fields; the truncation
	// slightly favors the buyer and is accepted behavior.
	pricePerToken := asset.PricePerToken()
	requiredPayment := new(big.Int).Mul(&e.Amount, pricePerToken)

	if e.Payment.Cmp(requiredPayment) < 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "payment_insufficient",
			"The payment you sent does not cover the required payment: "+
				"%s < %s.",
			e.Payment.String(), requiredPayment.String(),
		))
	}

	ownerBalance, err := model.LoadBalanceByHolder(ctx, asset.Owner)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	if ownerBalance == nil ||
		(*big.Int)(&ownerBalance.Value).Cmp(&e.Amount) < 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "supply_insufficient",
			"The asset owner does not hold enough tokens to cover the "+
				"purchase: %d tokens requested.",
			&e.Amount,
		))
	}

	buyerAccount, err := model.LoadAccountByHolder(ctx, e.Buyer)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if buyerAccount == nil {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "account_not_found",
			"You have no settlement account to pay from.",
		))
	}
	if buyerAccount.Status == model.AcStFrozen {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "account_frozen",
			"Your settlement account is frozen.",
		))
	}
	if (*big.Int)(&buyerAccount.Funds).Cmp(&e.Payment) < 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "account_insufficient_funds",
			"Your settlement account does not cover the payment you are "+
				"sending: %s < %s.",
			(*big.Int)(&buyerAccount.Funds).String(), e.Payment.String(),
		))
	}

	// Debit the payment sent from the buyer account.
	(*big.Int)(&buyerAccount.Funds).Sub(
		(*big.Int)(&buyerAccount.Funds), &e.Payment)

	// Move the tokens on the global pool.
	(*big.Int)(&ownerBalance.Value).Sub(
		(*big.Int)(&ownerBalance.Value), &e.Amount)
	err = ownerBalance.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	buyerBalance, err := model.LoadOrCreateBalanceByHolder(ctx, e.Buyer)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	(*big.Int)(&buyerBalance.Value).Add(
		(*big.Int)(&buyerBalance.Value), &e.Amount)
	err = buyerBalance.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	// Move the sub-balances for the asset.
	ownerHolding, err := model.LoadOrCreateHoldingByAssetHolder(ctx,
		asset.ID, asset.Owner)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	(*big.Int)(&ownerHolding.Value).Sub(
		(*big.Int)(&ownerHolding.Value), &e.Amount)
	if (*big.Int)(&ownerHolding.Value).Cmp(new(big.Int)) < 0 {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "supply_insufficient",
			"The asset owner does not hold enough tokens on this asset to "+
				"cover the purchase: %d tokens requested.",
			&e.Amount,
		))
	}
	err = ownerHolding.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	buyerHolding, err := model.LoadOrCreateHoldingByAssetHolder(ctx,
		asset.ID, e.Buyer)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}
	(*big.Int)(&buyerHolding.Value).Add(
		(*big.Int)(&buyerHolding.Value), &e.Amount)
	err = buyerHolding.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	// Append the asset to the buyer portfolio on first acquisition.
	entry, err := model.LoadPortfolioEntryByHolderAsset(ctx,
		e.Buyer, asset.ID)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if entry == nil {
		_, err = model.CreatePortfolioEntry(ctx, e.Buyer, asset.ID)
		if err != nil {
			return nil, nil, errors.Trace(err) // 500
		}
	}

	// Settle the required payment to the owner account. A missing or frozen
	// owner account aborts the whole purchase, token moves included.
	ownerAccount, err := model.LoadAccountByHolder(ctx, asset.Owner)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if ownerAccount == nil {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "account_not_found",
			"The asset owner has no settlement account to receive the "+
				"payment.",
		))
	}
	if ownerAccount.Status == model.AcStFrozen {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			400, "account_frozen",
			"The asset owner settlement account is frozen. The purchase "+
				"was aborted.",
		))
	}
	(*big.Int)(&ownerAccount.Funds).Add(
		(*big.Int)(&ownerAccount.Funds), requiredPayment)
	err = ownerAccount.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	// Refund the overpayment to the buyer account.
	refund := new(big.Int).Sub(&e.Payment, requiredPayment)
	(*big.Int)(&buyerAccount.Funds).Add(
		(*big.Int)(&buyerAccount.Funds), refund)
	err = buyerAccount.Save(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	_, err = model.CreateEvent(ctx,
		model.EvTpTokensPurchased,
		asset.ID, e.Buyer, ptr.Str(asset.Owner),
		model.Amount(e.Amount), model.Amount(*requiredPayment))
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusCreated), &svc.Resp{
		"purchase": format.JSONPtr(registry.PurchaseResource{
			Asset: asset.ID,
			Buyer: e.Buyer,

			Amount:          &e.Amount,
			PricePerToken:   pricePerToken,
			RequiredPayment: requiredPayment,
			PaymentSent:     &e.Payment,
			Refund:          refund,
		}),
	}, nil
}
