package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavprovich/drivehub/internal/service"
)

func (h *ServiceHandler) GetInstructorByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := service.GetInstructorByIDRequest{ID: chi.URLParam(r, "id")}
	resp, err := h.service.GetInstructorByID(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "GetInstructorByID", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) RefreshInstructor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := service.GetInstructorByIDRequest{ID: chi.URLParam(r, "id")}
	resp, err := h.service.RefreshInstructor(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "RefreshInstructor", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func (h *ServiceHandler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	page, err := intParam(query.Get("page"))
	if err != nil {
		h.sendError(ctx, w, "ListInstructors", fmt.Errorf("%w: page: %w", service.ErrValidation, err))
		return
	}
	limit, err := intParam(query.Get("limit"))
	if err != nil {
		h.sendError(ctx, w, "ListInstructors", fmt.Errorf("%w: limit: %w", service.ErrValidation, err))
		return
	}

	req := service.ListInstructorsRequest{
		City:         query.Get("city"),
		Transmission: query.Get("transmission"),
		Page:         page,
		Limit:        limit,
	}
	resp, err := h.service.ListInstructors(ctx, &req)
	if err != nil {
		h.sendError(ctx, w, "ListInstructors", err)
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, resp)
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
