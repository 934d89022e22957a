package app

import (
	goji "goji.io"
	"goji.io/pat"

	"github.com/satyendrapal310-arch/Real-estate-tokenization/registry/endpoint"
)

// Controller binds the API
type Controller struct{}

// Bind registers the API routes.
func (c *Controller) Bind(
	mux *goji.Mux,
) {
	// Admin.
	mux.HandleFunc(pat.Post("/users"), endpoint.HandlerFor(endpoint.EndPtCreateUser))

	// Authenticated.
	mux.HandleFunc(pat.Post("/assets"), endpoint.HandlerFor(endpoint.EndPtTokenizeAsset))
	mux.HandleFunc(pat.Post("/assets/:asset/purchases"), endpoint.HandlerFor(endpoint.EndPtPurchaseTokens))
	mux.HandleFunc(pat.Post("/assets/:asset/transfers"), endpoint.HandlerFor(endpoint.EndPtTransferTokens))
	mux.HandleFunc(pat.Post("/assets/:asset/activate"), endpoint.HandlerFor(endpoint.EndPtActivateAsset))
	mux.HandleFunc(pat.Post("/assets/:asset/deactivate"), endpoint.HandlerFor(endpoint.EndPtDeactivateAsset))
	mux.HandleFunc(pat.Get("/accounts/:holder"), endpoint.HandlerFor(endpoint.EndPtRetrieveAccount))

	// Public.
	mux.HandleFunc(pat.Get("/assets"), endpoint.HandlerFor(endpoint.EndPtListAssets))
	mux.HandleFunc(pat.Get("/assets/:asset"), endpoint.HandlerFor(endpoint.EndPtRetrieveAsset))
	mux.HandleFunc(pat.Get("/assets/:asset/holdings/:holder"), endpoint.HandlerFor(endpoint.EndPtRetrieveHolding))
	mux.HandleFunc(pat.Get("/balances/:holder"), endpoint.HandlerFor(endpoint.EndPtRetrieveBalance))
	mux.HandleFunc(pat.Get("/portfolios/:holder"), endpoint.HandlerFor(endpoint.EndPtRetrievePortfolio))
	mux.HandleFunc(pat.Get("/events"), endpoint.HandlerFor(endpoint.EndPtListEvents))
}
