package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type InvalidateResponse struct {
	Removed bool `json:"removed"`
}

func (h *ServiceHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.sendJSON(ctx, w, http.StatusOK, h.service.CacheStats(ctx))
}

func (h *ServiceHandler) InvalidateInstructor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	removed := h.service.InvalidateInstructor(ctx, chi.URLParam(r, "id"))
	h.sendJSON(ctx, w, http.StatusOK, InvalidateResponse{Removed: removed})
}

func (h *ServiceHandler) ClearExpired(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.sendJSON(ctx, w, http.StatusOK, h.service.ClearExpired(ctx))
}

func (h *ServiceHandler) ResetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.service.ResetStats(ctx)
	h.sendJSON(ctx, w, http.StatusOK, h.service.CacheStats(ctx))
}

func (h *ServiceHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.service.ClearCache(ctx)
	h.sendJSON(ctx, w, http.StatusOK, h.service.CacheStats(ctx))
}
