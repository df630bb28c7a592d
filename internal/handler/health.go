package handler

import (
	"net/http"
)

func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.sendJSON(ctx, w, http.StatusOK, h.service.Health(ctx))
}
