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
	// EndPtRetrievePortfolio retrieves the portfolio of a holder.
	EndPtRetrievePortfolio EndPtName = "RetrievePortfolio"
)

func init() {
	registrar[EndPtRetrievePortfolio] = NewRetrievePortfolio
}

// RetrievePortfolio retrieves the asset ids a holder has ever held tokens
// in, in acquisition order. Assets stay listed even when the sub-balance
// later returns to zero.
type RetrievePortfolio struct {
	Holder string
}

// NewRetrievePortfolio constructs and initialiezes the endpoint.
func NewRetrievePortfolio(
	r *http.Request,
) (Endpoint, error) {
	return &RetrievePortfolio{}, nil
}

// Validate validates the input parameters.
func (e *RetrievePortfolio) Validate(
	r *http.Request,
) error {
	e.Holder = pat.Param(r, "holder")
	return nil
}

// Execute executes the endpoint.
func (e *RetrievePortfolio) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	entries, err := model.LoadPortfolioByHolder(ctx, e.Holder)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	return ptr.Int(http.StatusOK), &svc.Resp{
		"portfolio": format.JSONPtr(
			registry.NewPortfolioResource(ctx, e.Holder, entries)),
	}, nil
}
