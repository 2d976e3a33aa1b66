package cart

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nataliebakery/storefront/api/middleware"
	"github.com/nataliebakery/storefront/api/responses"
	"github.com/nataliebakery/storefront/api/validators"
	cartsvc "github.com/nataliebakery/storefront/internal/cart"
	"github.com/nataliebakery/storefront/internal/catalog"
	"github.com/nataliebakery/storefront/pkg/enums"
	pkgerrors "github.com/nataliebakery/storefront/pkg/errors"
	"github.com/nataliebakery/storefront/pkg/logger"
)

type productGetter interface {
	GetProduct(ctx context.Context, slug string) (*catalog.Product, error)
}

type cartStore interface {
	Lines(ctx context.Context, sessionID string) cartsvc.Lines
	AddItem(ctx context.Context, sessionID string, snap cartsvc.Snapshot, quantity int, selected map[string]string) cartsvc.Lines
	UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) cartsvc.Lines
	RemoveItem(ctx context.Context, sessionID, lineID string) cartsvc.Lines
	ClearCart(ctx context.Context, sessionID string)
}

// CartFetch returns the session's current cart.
func CartFetch(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(store.Lines(r.Context(), sessionID)))
	}
}

// CartAddItem resolves the product, prices the selection once and merges the
// line into the cart.
func CartAddItem(store cartStore, products productGetter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.GetProduct(r.Context(), payload.Slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		selected := filterSelection(payload.SelectedOptions)
		if !product.IsCustomCake {
			selected = nil
		}

		snap := cartsvc.Snapshot{
			ProductID:    product.ID,
			Slug:         product.Slug,
			Name:         product.Name,
			Image:        product.Image,
			UnitPrice:    cartsvc.ResolveProductPrice(product, selected),
			IsCustomCake: product.IsCustomCake,
		}

		lines := store.AddItem(r.Context(), sessionID, snap, payload.quantity(), selected)
		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(lines))
	}
}

// CartUpdateItem sets a line's quantity. Unknown line ids are a no-op, so the
// response is always the current cart.
func CartUpdateItem(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines := store.UpdateQuantity(r.Context(), sessionID, chi.URLParam(r, "lineID"), *payload.Quantity)
		responses.WriteSuccess(w, newCartView(lines))
	}
}

// CartRemoveItem drops a line from the cart.
func CartRemoveItem(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines := store.RemoveItem(r.Context(), sessionID, chi.URLParam(r, "lineID"))
		responses.WriteSuccess(w, newCartView(lines))
	}
}

// CartClear empties the cart.
func CartClear(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionFromRequest(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.ClearCart(r.Context(), sessionID)
		responses.WriteSuccess(w, newCartView(cartsvc.Lines{}))
	}
}

// filterSelection keeps only the known customization axes so stray keys
// never enter line identities or cart payloads.
func filterSelection(selected map[string]string) map[string]string {
	if len(selected) == 0 {
		return nil
	}
	filtered := make(map[string]string, len(selected))
	for _, optionType := range enums.OptionTypes() {
		if value, ok := selected[optionType.Key()]; ok {
			filtered[optionType.Key()] = value
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

func sessionFromRequest(r *http.Request, store cartStore) (string, error) {
	if store == nil {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable")
	}
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "cart session missing")
	}
	return sessionID, nil
}
