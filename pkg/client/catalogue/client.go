package catalogue

import (
	"context"
	"log/slog"
	"net/http"
)

type Client interface {
	GetInstructorByID(
		ctx context.Context,
		req *GetInstructorByIDRequest,
	) (*GetInstructorByIDResponse, error)
	ListInstructors(
		ctx context.Context,
		req *ListInstructorsRequest,
	) (*ListInstructorsResponse, error)
}

type BasicClient struct {
	client *http.Client
	logger *slog.Logger
	cfg    *Config
}

func NewBasicClient(httpClient *http.Client, cfg *Config, log *slog.Logger) *BasicClient {
	return &BasicClient{
		client: httpClient,
		logger: log,
		cfg:    cfg,
	}
}
