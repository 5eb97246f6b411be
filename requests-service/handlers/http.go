package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/servicehub/booking-system/requests-service/application"
	"github.com/servicehub/booking-system/shared/api"
)

type transitionUseCase interface {
	Execute(ctx context.Context, cmd *application.TransitionCommand) (*application.RequestResponse, error)
}

// RequestHandlers contains request HTTP handlers
type RequestHandlers struct {
	createRequest   *application.CreateRequest
	getRequest      *application.GetRequest
	listRequests    *application.ListRequests
	assignRequest   *application.AssignRequest
	startRequest    *application.StartRequest
	completeRequest *application.CompleteRequest
	cancelRequest   *application.CancelRequest
	rateRequest     *application.RateRequest
	logger          *slog.Logger
}

// NewRequestHandlers creates new request handlers
func NewRequestHandlers(
	createRequest *application.CreateRequest,
	getRequest *application.GetRequest,
	listRequests *application.ListRequests,
	assignRequest *application.AssignRequest,
	startRequest *application.StartRequest,
	completeRequest *application.CompleteRequest,
	cancelRequest *application.CancelRequest,
	rateRequest *application.RateRequest,
	logger *slog.Logger,
) *RequestHandlers {
	return &RequestHandlers{
		createRequest:   createRequest,
		getRequest:      getRequest,
		listRequests:    listRequests,
		assignRequest:   assignRequest,
		startRequest:    startRequest,
		completeRequest: completeRequest,
		cancelRequest:   cancelRequest,
		rateRequest:     rateRequest,
		logger:          logger,
	}
}

// CreateRequest handles request creation
func (h *RequestHandlers) CreateRequest(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	var cmd application.CreateRequestCommand
	if err := api.DecodeJSON(r, &cmd); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	cmd.RequesterID = identity.UserID.String()

	response, err := h.createRequest.Execute(r.Context(), &cmd)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, response)
}

// GetRequest handles request retrieval
func (h *RequestHandlers) GetRequest(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	response, err := h.getRequest.Execute(r.Context(), &application.GetRequestQuery{
		RequestID:  chi.URLParam(r, "id"),
		CallerID:   identity.UserID.String(),
		CallerRole: identity.Role,
	})
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, response)
}

func (h *RequestHandlers) list(scope application.ListScope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := api.IdentityFrom(r.Context())

		response, err := h.listRequests.Execute(r.Context(), &application.ListRequestsQuery{
			Scope:      scope,
			UserID:     identity.UserID.String(),
			CallerRole: identity.Role,
			Status:     r.URL.Query().Get("status"),
		})
		if err != nil {
			api.WriteError(w, r, h.logger, err)
			return
		}

		api.WriteJSON(w, http.StatusOK, response)
	}
}

func (h *RequestHandlers) transition(useCase transitionUseCase, withBody bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := api.IdentityFrom(r.Context())

		var cmd application.TransitionCommand
		if withBody && r.ContentLength != 0 {
			if err := api.DecodeJSON(r, &cmd); err != nil {
				api.WriteError(w, r, h.logger, err)
				return
			}
		}
		cmd.RequestID = chi.URLParam(r, "id")
		cmd.ActorID = identity.UserID.String()
		cmd.ActorRole = identity.Role

		response, err := useCase.Execute(r.Context(), &cmd)
		if err != nil {
			api.WriteError(w, r, h.logger, err)
			return
		}

		api.WriteJSON(w, http.StatusOK, response)
	}
}

// RateRequest handles the requester's rating of a completed request
func (h *RequestHandlers) RateRequest(w http.ResponseWriter, r *http.Request) {
	identity, _ := api.IdentityFrom(r.Context())

	var cmd application.RateRequestCommand
	if err := api.DecodeJSON(r, &cmd); err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}
	cmd.RequestID = chi.URLParam(r, "id")
	cmd.ActorID = identity.UserID.String()

	response, err := h.rateRequest.Execute(r.Context(), &cmd)
	if err != nil {
		api.WriteError(w, r, h.logger, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers request routes
func (h *RequestHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/requests", func(r chi.Router) {
		r.Use(api.RequireIdentity)

		r.Post("/", h.CreateRequest)
		r.Get("/mine", h.list(application.ListScopeMine))
		r.Get("/assigned", h.list(application.ListScopeAssigned))
		r.Get("/available", h.list(application.ListScopeAvailable))
		r.Get("/{id}", h.GetRequest)
		r.Post("/{id}/assign", h.transition(h.assignRequest, false))
		r.Post("/{id}/start", h.transition(h.startRequest, false))
		r.Post("/{id}/complete", h.transition(h.completeRequest, false))
		r.Post("/{id}/cancel", h.transition(h.cancelRequest, true))
		r.Post("/{id}/rate", h.RateRequest)
	})
}
