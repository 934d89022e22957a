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
	// EndPtRetrieveAsset retrieves an asset.
	EndPtRetrieveAsset EndPtName = "RetrieveAsset"
)

func init() {
	registrar[EndPtRetrieveAsset] = NewRetrieveAsset
}

// RetrieveAsset retrieves one asset by id, including its derived price per
// token.
type RetrieveAsset struct {
	Asset int64
}

// NewRetrieveAsset constructs and initialiezes the endpoint.
func NewRetrieveAsset(
	r *http.Request,
) (Endpoint, error) {
	return &RetrieveAsset{}, nil
}

// Validate validates the input parameters.
func (e *RetrieveAsset) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	asset, err := ValidateAssetID(ctx, pat.Param(r, "asset"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Asset = asset

	return nil
}

// Execute executes the endpoint.
func (e *RetrieveAsset) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	asset, err := model.LoadAssetByID(ctx, e.Asset)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	} else if asset == nil {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			404, "asset_not_found",
			"The asset you are trying to retrieve does not exist: %d.",
			e.Asset,
		))
	}

	return ptr.Int(http.StatusOK), &svc.Resp{
		"asset": format.JSONPtr(registry.NewAssetResource(ctx, asset)),
	}, nil
}
