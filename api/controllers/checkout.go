package controllers

import (
	"context"
	"net/http"

	"github.com/nataliebakery/storefront/api/middleware"
	"github.com/nataliebakery/storefront/api/responses"
	"github.com/nataliebakery/storefront/api/validators"
	"github.com/nataliebakery/storefront/internal/catalog"
	checkoutsvc "github.com/nataliebakery/storefront/internal/checkout"
	pkgerrors "github.com/nataliebakery/storefront/pkg/errors"
	"github.com/nataliebakery/storefront/pkg/logger"
)

type orderPlacer interface {
	PlaceOrder(ctx context.Context, sessionID string, details checkoutsvc.CustomerDetails, slot checkoutsvc.PickupSlot) (*catalog.OrderConfirmation, error)
}

type checkoutRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	PickupDate   string `json:"pickup_date" validate:"required"`
	PickupTime   string `json:"pickup_time" validate:"required"`
}

// Checkout submits the session's cart as a pickup order.
func Checkout(svc orderPlacer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.PlaceOrder(r.Context(), sessionID,
			checkoutsvc.CustomerDetails{
				Name:  payload.CustomerName,
				Email: payload.Email,
				Phone: payload.Phone,
			},
			checkoutsvc.PickupSlot{
				Date: payload.PickupDate,
				Time: payload.PickupTime,
			},
		)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}
