package endpoint

import (
	"context"
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
	// EndPtActivateAsset activates an asset.
	EndPtActivateAsset EndPtName = "ActivateAsset"
)

func init() {
	registrar[EndPtActivateAsset] = NewActivateAsset
}

// ActivateAsset reopens the primary market on an asset. Only the asset owner
// or an admin can activate. Activation is idempotent.
type ActivateAsset struct {
	Holder string
	Admin  bool
	Asset  int64
}

// NewActivateAsset constructs and initialiezes the endpoint.
func NewActivateAsset(
	r *http.Request,
) (Endpoint, error) {
	return &ActivateAsset{}, nil
}

// Validate validates the input parameters.
func (e *ActivateAsset) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	e.Holder = authentication.Get(ctx).User.Username
	e.Admin = authentication.Get(ctx).User.Admin

	asset, err := ValidateAssetID(ctx, pat.Param(r, "asset"))
	if err != nil {
		return errors.Trace(err)
	}
	e.Asset = asset

	return nil
}

// Execute executes the endpoint.
func (e *ActivateAsset) Execute(
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
			"The asset you are trying to activate does not exist: %d.",
			e.Asset,
		))
	}

	if asset.Owner != e.Holder && !e.Admin {
		return nil, nil, errors.Trace(errors.NewUserErrorf(nil,
			401, "not_authorized",
			"Only the asset owner or an admin can activate an asset: %d "+
				"is owned by %s.",
			asset.ID, asset.Owner,
		))
	}

	if !asset.Active {
		asset.Active = true
		err = asset.Save(ctx)
		if err != nil {
			return nil, nil, errors.Trace(err) // 500
		}

		_, err = model.CreateEvent(ctx,
			model.EvTpAssetActivated,
			asset.ID, e.Holder, nil,
			model.Amount{}, model.Amount{})
		if err != nil {
			return nil, nil, errors.Trace(err) // 500
		}
	}

	db.Commit(ctx)

	return ptr.Int(http.StatusOK), &svc.Resp{
		"asset": format.JSONPtr(registry.NewAssetResource(ctx, asset)),
	}, nil
}
