package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/drivehub/internal/service"
)

type Handler interface {
	GetInstructorByID(w http.ResponseWriter, r *http.Request)
	ListInstructors(w http.ResponseWriter, r *http.Request)
	RefreshInstructor(w http.ResponseWriter, r *http.Request)
	CacheStats(w http.ResponseWriter, r *http.Request)
	InvalidateInstructor(w http.ResponseWriter, r *http.Request)
	ClearExpired(w http.ResponseWriter, r *http.Request)
	ResetStats(w http.ResponseWriter, r *http.Request)
	ClearCache(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

// StatusClientClosedRequest is answered when the caller gave up before the
// response was ready.
const StatusClientClosedRequest = 499

type ErrorResponse struct {
	Error string `json:"error"`
}

type ServiceHandler struct {
	service service.InstructorService
	logger  *slog.Logger
	cfg     *Config
	render  *render.Render
}

func NewServiceHandler(
	srv service.InstructorService,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *ServiceHandler {
	return &ServiceHandler{
		service: srv,
		logger:  logger,
		cfg:     cfg,
		render:  render,
	}
}

func (h *ServiceHandler) sendJSON(ctx context.Context, w io.Writer, status int, body any) {
	if err := h.render.JSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "render JSON error", slog.Any("error", err))
	}
}

// sendError maps service errors onto HTTP statuses.
func (h *ServiceHandler) sendError(ctx context.Context, w io.Writer, op string, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		status = StatusClientClosedRequest
	}

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, op+" error", slog.Any("error", err))
	} else {
		h.logger.WarnContext(ctx, op+" client error", slog.Any("error", err))
	}

	h.sendJSON(ctx, w, status, ErrorResponse{Error: err.Error()})
}
