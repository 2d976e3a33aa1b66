package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nataliebakery/storefront/api/responses"
	"github.com/nataliebakery/storefront/internal/catalog"
	pkgerrors "github.com/nataliebakery/storefront/pkg/errors"
	"github.com/nataliebakery/storefront/pkg/logger"
)

// ContentProvider is the slice of the catalog client the content endpoints use.
type ContentProvider interface {
	GetSiteContent(ctx context.Context) (json.RawMessage, error)
	ListCakeOptions(ctx context.Context) ([]catalog.Option, error)
}

// GetSiteContent proxies the CMS content bag. The payload is editorial and
// must always be served fresh, so caching is disabled on both hops.
func GetSiteContent(svc ContentProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content unavailable"))
			return
		}

		content, err := svc.GetSiteContent(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		responses.WriteSuccess(w, content)
	}
}

// ListCakeOptions exposes the flat option catalog used by the legacy cake
// customizer.
func ListCakeOptions(svc ContentProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content unavailable"))
			return
		}

		options, err := svc.ListCakeOptions(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if options == nil {
			options = []catalog.Option{}
		}
		responses.WriteSuccess(w, options)
	}
}
