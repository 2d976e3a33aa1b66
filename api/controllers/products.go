package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nataliebakery/storefront/api/responses"
	"github.com/nataliebakery/storefront/api/validators"
	"github.com/nataliebakery/storefront/internal/catalog"
	pkgerrors "github.com/nataliebakery/storefront/pkg/errors"
	"github.com/nataliebakery/storefront/pkg/logger"
)

const maxProductLimit = 100

// CatalogBrowser is the slice of the catalog client the browse endpoints use.
type CatalogBrowser interface {
	ListProducts(ctx context.Context, params catalog.ListProductsParams) ([]catalog.Product, error)
	GetProduct(ctx context.Context, slug string) (*catalog.Product, error)
	ListCategories(ctx context.Context) ([]catalog.Category, error)
}

// ListProducts proxies the catalog listing with the storefront's filters.
func ListProducts(svc CatalogBrowser, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, maxProductLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := catalog.ListProductsParams{
			Limit:    limit,
			Featured: validators.ParseQueryBool(r, "featured"),
			Category: strings.TrimSpace(r.URL.Query().Get("category")),
			Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		}
		if params.Featured {
			params.Ordering = "-created_at"
		}

		products, err := svc.ListProducts(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if products == nil {
			products = []catalog.Product{}
		}
		responses.WriteSuccess(w, products)
	}
}

// productDetail decorates a product with the selection the UI should seed
// its option pickers with.
type productDetail struct {
	catalog.Product
	DefaultSelection map[string]string `json:"default_selection,omitempty"`
}

func newProductDetail(product *catalog.Product) productDetail {
	detail := productDetail{Product: *product}
	if product.IsCustomCake {
		if selection := catalog.DefaultSelection(product.AvailableOptions); len(selection) > 0 {
			detail.DefaultSelection = selection
		}
	}
	return detail
}

// GetProduct returns a single product by slug.
func GetProduct(svc CatalogBrowser, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		product, err := svc.GetProduct(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newProductDetail(product))
	}
}

// ListCategories returns the category list.
func ListCategories(svc CatalogBrowser, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if categories == nil {
			categories = []catalog.Category{}
		}
		responses.WriteSuccess(w, categories)
	}
}
