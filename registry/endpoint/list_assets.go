package endpoint

import (
	"context"
	"net/http"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/errors"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/format"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/ptr"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/lib/svc"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry"
	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/model"
)

const (
	// EndPtListAssets lists the registered assets.
	EndPtListAssets EndPtName = "ListAssets"
)

func init() {
	registrar[EndPtListAssets] = NewListAssets
}

// ListAssets lists all registered assets in id order, active or not.
type ListAssets struct{}

// NewListAssets constructs and initialiezes the endpoint.
func NewListAssets(
	r *http.Request,
) (Endpoint, error) {
	return &ListAssets{}, nil
}

// Validate validates the input parameters.
func (e *ListAssets) Validate(
	r *http.Request,
) error {
	return nil
}

// Execute executes the endpoint.
func (e *ListAssets) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	assets, err := model.LoadAssets(ctx)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	resources := []registry.AssetResource{}
	for _, a := range assets {
		resources = append(resources, registry.NewAssetResource(ctx, a))
	}

	return ptr.Int(http.StatusOK), &svc.Resp{
		"assets": format.JSONPtr(resources),
		"count":  format.JSONPtr(len(resources)),
	}, nil
}
