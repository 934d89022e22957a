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
	// EndPtRetrieveHolding retrieves the sub-balance of a holder on an asset.
	EndPtRetrieveHolding EndPtName = "RetrieveHolding"
)

func init() {
	registrar[EndPtRetrieveHolding] = NewRetrieveHolding
}

// RetrieveHolding retrieves the per-asset sub-balance of a holder. A holder
// with no recorded sub-balance on an existing asset reads as zero.
type RetrieveHolding struct {
	Asset  int64
	Holder string
}

// NewRetrieveHolding constructs and initialiezes the endpoint.
func NewRetrieveHolding(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveHolding{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveHolding) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	asset, err := ValidateAssetID(ctx, pat.Param(r, "asset"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Asset = asset

	e.Holder = pat.Param(r, "holder")

	return nil
}

// Execute executes the endpoint.
func (e *RetrieveHolding) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	asset, err := model.LoadAssetByID(ctx, e.Asset)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if asset == nil {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			404, "asset_not_found",
			"The asset you are trying to retrieve a holding on does not "+
				"exist: %d.",
			e.Asset,
		))
	}

	holding, err := model.LoadHoldingByAssetHolder(ctx, asset.ID, e.Holder)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if holding == nil {
		holding = &model.Holding{
			Asset:  asset.ID,
			Holder: e.Holder,
			Value:  model.Amount{},
		}
	}

	return ptr.Int(http.StatusOK), &svc.Resp{
		"holding": format.JSONPtr(registry.NewHoldingResource(ctx, holding)),
	}, nil
}
