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
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"
)

const (
	// EndPtRetrieveBalance retrieves the global balance of a holder.
	EndPtRetrieveBalance EndPtName = "RetrieveBalance"
)

func init() {
	registrar[EndPtRetrieveBalance] = NewRetrieveBalance
}

// RetrieveBalance retrieves the global token balance of a holder. A holder
// with no recorded balance reads as zero.
type RetrieveBalance struct {
	Holder string
}

// NewRetrieveBalance constructs and initialiezes the endpoint.
func NewRetrieveBalance(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveBalance{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveBalance) Validate(
	r *http.Request,
) error {
	e.Holder = pat.Param(r, "holder")
	return nil
}

// Execute executes the endpoint.
func (e *RetrieveBalance) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	balance, err := model.LoadBalanceByHolder(ctx, e.Holder)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if balance == nil {
		balance = &model.Balance{
			Holder: e.Holder,
			Value:  model.Amount{},
		}
	}

	return ptr.Int(http.StatusOK), &svc.Resp{
		"balance": format.JSONPtr(registry.NewBalanceResource(ctx, balance)),
	}, nil
}
