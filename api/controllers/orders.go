package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourarttoy/arttoy-backend/api/middleware"
	"github.com/yourarttoy/arttoy-backend/api/responses"
	"github.com/yourarttoy/arttoy-backend/api/validators"
	"github.com/yourarttoy/arttoy-backend/internal/orders"
	pkgAuth "github.com/yourarttoy/arttoy-backend/pkg/auth"
	pkgerrors "github.com/yourarttoy/arttoy-backend/pkg/errors"
	"github.com/yourarttoy/arttoy-backend/pkg/logger"
	"github.com/yourarttoy/arttoy-backend/pkg/types"
)

func principal(r *http.Request) (pkgAuth.Principal, error) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		return pkgAuth.Principal{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "Not authorized to access this route")
	}
	return p, nil
}

func orderID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	return id, nil
}

// ListOrders handles the caller-scoped order listing.
func ListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := principal(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := svc.ListOrders(r.Context(), p)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, types.ListEnvelope{
			Count: len(records),
			Data:  records,
		})
	}
}

// GetOrder handles single order lookup for the owner or an admin.
func GetOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := principal(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := orderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetOrder(r.Context(), p, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

type createOrderRequest struct {
	ArtToyID    string `json:"artToy" validate:"required"`
	// no required tag: a zero amount must reach the service so the range
	// message comes back instead of a generic decode failure
	OrderAmount int `json:"orderAmount"`
}

type updateOrderRequest struct {
	OrderAmount int `json:"orderAmount"`
}

// CreateOrder handles pre-order placement.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := principal(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		artToyID, err := uuid.Parse(payload.ArtToyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Art toy not found"))
			return
		}

		order, err := svc.CreateOrder(r.Context(), p, orders.CreateOrderInput{
			ArtToyID:    artToyID,
			OrderAmount: payload.OrderAmount,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// UpdateOrder handles amount changes on an existing pre-order.
func UpdateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := principal(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := orderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.UpdateOrder(r.Context(), p, id, orders.UpdateOrderInput{
			OrderAmount: payload.OrderAmount,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// DeleteOrder cancels a pre-order and hands its quota back.
func DeleteOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := principal(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := orderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteOrder(r.Context(), p, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "Order deleted successfully")
	}
}
