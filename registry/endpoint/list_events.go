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
	// EndPtListEvents lists the registry events.
	EndPtListEvents EndPtName = "ListEvents"
)

func init() {
	registrar[EndPtListEvents] = NewListEvents
}

// ListEvents lists the registry events in creation order, optionally
// filtered by asset id with the `asset` query parameter.
type ListEvents struct {
	Asset int64
}

// NewListEvents constructs and initialiezes the endpoint.
func NewListEvents(
	r *http.Request,
) (Endpoint, error) {
	return &ListEvents{}, nil
}

// Validate validates the input parameters.
func (e *ListEvents) Validate(
	r *http.Request,
) error {
	ctx := r.Context()

	if f := r.URL.Query().Get("asset"); f != "" {
		asset, err := ValidateAssetID(ctx, f)
		if err != nil {
			return errors.Trace(err)
		}
		e.Asset = asset
	}

	return nil
}

// Execute executes the endpoint.
func (e *ListEvents) Execute(
	ctx context.Context,
) (*int, *svc.Resp, error) {
	events, err := model.LoadEvents(ctx, e.Asset)
	if err != nil {
		return nil, nil, errors.Trace(err) // 500
	}

	resources := []registry.EventResource{}
	for _, ev := range events {
		resources = append(resources, registry.NewEventResource(ctx, ev))
	}

	return ptr.Int(http.StatusOK), &svc.Resp{
		"events": format.JSONPtr(resources),
		"count":  format.JSONPtr(len(resources)),
	}, nil
}
