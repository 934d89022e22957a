package endpoint

import (
	"context"
	"net/http"

	"goji.io/pat"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/format"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/ptr"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/svc"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/lib/authentication"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"
)

const (
	// EndPtRetrieveAccount retrieves the settlement account of a holder.
	EndPtRetrieveAccount EndPtName = "RetrieveAccount"
)

func init() {
	registrar[EndPtRetrieveAccount] = NewRetrieveAccount
}

// RetrieveAccount retrieves the settlement account of a holder. Accounts
// carry fund balances so they are only readable by their holder or by an
// admin.
type RetrieveAccount struct {
	Caller *model.User
	Holder string
}

// NewRetrieveAccount constructs and initialiezes the endpoint.
func NewRetrieveAccount(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveAccount{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveAccount) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Caller = authentication.Get(ctx).User
	e.Holder = pat.Param(r, "holder")

	return nil
}

// Execute executes the endpoint.
func (e *RetrieveAccount) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	if e.Caller.Username != e.Holder && !e.Caller.Admin {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			401, "not_authorized",
			"You can only retrieve your own settlement account.",
		))
	}

	account, err := model.LoadAccountByHolder(ctx, e.Holder)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if account == nil {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			404, "account_not_found",
			"The holder has no settlement account: %s.",
			e.Holder,
		))
	}

	return ptr.Int(http.StatusOK), &svc.Resp{
		"account": format.JSONPtr(registry.NewAccountResource(ctx, account)),
	}, nil
}
