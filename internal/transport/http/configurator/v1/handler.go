package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yakkt/campervan-configurator/internal/model"
)

type ConfiguratorService interface {
	CreateSession(ctx context.Context) (*model.Session, error)
	Session(ctx context.Context, id uuid.UUID) (*model.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	SelectChassis(ctx context.Context, id uuid.UUID, chassisID string) (*model.Session, error)
	ToggleOption(ctx context.Context, id uuid.UUID, optionID string) (*model.Session, error)
	Reset(ctx context.Context, id uuid.UUID) (*model.Session, error)
	Availability(ctx context.Context, id uuid.UUID) (map[string]bool, error)
	Catalog() *model.Catalog
	ReplaceCatalog(ctx context.Context, chassis []model.Chassis, options []model.Option) error
}

type CheckoutService interface {
	Checkout(ctx context.Context, sessionID uuid.UUID) (*model.CheckoutResult, error)
	OrderByID(ctx context.Context, orderID uuid.UUID) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) error
}

type handler struct {
	svc      ConfiguratorService
	checkout CheckoutService
}

func NewConfiguratorHandler(svc ConfiguratorService, checkout CheckoutService) *handler {
	return &handler{svc: svc, checkout: checkout}
}

func (h *handler) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", h.CreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Put("/chassis", h.SelectChassis)
			r.Post("/options/{optionID}/toggle", h.ToggleOption)
			r.Post("/reset", h.ResetSession)
			r.Post("/checkout", h.Checkout)
		})
		r.Get("/orders/{orderID}", h.GetOrder)
		r.Put("/orders/{orderID}/status", h.UpdateOrderStatus)
		r.Get("/catalog", h.GetCatalog)
		r.Put("/catalog", h.ReplaceCatalog)
	})
}

func (h *handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.CreateSession(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondSession(w, r, http.StatusCreated, s)
}

func (h *handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid session id"))
		return
	}

	s, err := h.svc.Session(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondSession(w, r, http.StatusOK, s)
}

func (h *handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid session id"))
		return
	}

	if err := h.svc.DeleteSession(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) SelectChassis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid session id"))
		return
	}

	var req selectChassisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid request body"))
		return
	}
	if req.ChassisID == "" {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "chassisId is required"))
		return
	}

	s, err := h.svc.SelectChassis(r.Context(), id, req.ChassisID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondSession(w, r, http.StatusOK, s)
}

func (h *handler) ToggleOption(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid session id"))
		return
	}

	optionID := chi.URLParam(r, "optionID")
	if optionID == "" {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "option id is required"))
		return
	}

	s, err := h.svc.ToggleOption(r.Context(), id, optionID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondSession(w, r, http.StatusOK, s)
}

func (h *handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid session id"))
		return
	}

	s, err := h.svc.Reset(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.respondSession(w, r, http.StatusOK, s)
}

func (h *handler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid session id"))
		return
	}

	res, err := h.checkout.Checkout(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, checkoutResultToResponse(res))
}

func (h *handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid order id"))
		return
	}

	ord, err := h.checkout.OrderByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, orderToResponse(ord))
}

func (h *handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid order id"))
		return
	}

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid request body"))
		return
	}

	if err := h.checkout.UpdateOrderStatus(r.Context(), id, model.OrderStatus(req.Status)); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, catalogToResponse(h.svc.Catalog()))
}

func (h *handler) ReplaceCatalog(w http.ResponseWriter, r *http.Request) {
	var req catalogPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, r, http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, "invalid request body"))
		return
	}

	chassis, options := catalogPayloadToModel(req)
	if err := h.svc.ReplaceCatalog(r.Context(), chassis, options); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, catalogToResponse(h.svc.Catalog()))
}

func (h *handler) respondSession(w http.ResponseWriter, r *http.Request, status int, s *model.Session) {
	availability, err := h.svc.Availability(r.Context(), s.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, status, sessionToResponse(s, availability))
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respondJSON(w, r, http.StatusBadRequest, // 400
			newErrorResponse(http.StatusBadRequest, err.Error()))
	case errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrChassisNotFound),
		errors.Is(err, model.ErrOptionNotFound),
		errors.Is(err, model.ErrOrderNotFound):
		respondJSON(w, r, http.StatusNotFound, // 404
			newErrorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, model.ErrOrderConflict):
		respondJSON(w, r, http.StatusConflict, // 409
			newErrorResponse(http.StatusConflict, err.Error()))
	case errors.Is(err, model.ErrChassisRequired):
		respondJSON(w, r, http.StatusUnprocessableEntity, // 422
			newErrorResponse(http.StatusUnprocessableEntity, err.Error()))
	case errors.Is(err, model.ErrBadGateway):
		respondJSON(w, r, http.StatusBadGateway, // 502
			newErrorResponse(http.StatusBadGateway, err.Error()))
	default:
		respondJSON(w, r, http.StatusInternalServerError, // 500
			newErrorResponse(http.StatusInternalServerError, err.Error()))
	}
}
