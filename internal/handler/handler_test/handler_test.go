package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"

	"github.com/vladislavprovich/drivehub/internal/handler"
	"github.com/vladislavprovich/drivehub/internal/service"
	"github.com/vladislavprovich/drivehub/pkg/cache"
)

type mockInstructorService struct {
	mock.Mock
}

func (m *mockInstructorService) GetInstructorByID(
	ctx context.Context,
	req *service.GetInstructorByIDRequest,
) (*service.Instructor, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*service.Instructor)
	return resp, args.Error(1)
}

func (m *mockInstructorService) ListInstructors(
	ctx context.Context,
	req *service.ListInstructorsRequest,
) (*service.InstructorList, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*service.InstructorList)
	return resp, args.Error(1)
}

func (m *mockInstructorService) RefreshInstructor(
	ctx context.Context,
	req *service.GetInstructorByIDRequest,
) (*service.Instructor, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*service.Instructor)
	return resp, args.Error(1)
}

func (m *mockInstructorService) InvalidateInstructor(ctx context.Context, id string) bool {
	return m.Called(ctx, id).Bool(0)
}

func (m *mockInstructorService) CacheStats(ctx context.Context) *service.CacheStatsResponse {
	resp, _ := m.Called(ctx).Get(0).(*service.CacheStatsResponse)
	return resp
}

func (m *mockInstructorService) ClearExpired(ctx context.Context) *service.ClearExpiredResponse {
	resp, _ := m.Called(ctx).Get(0).(*service.ClearExpiredResponse)
	return resp
}

func (m *mockInstructorService) ResetStats(ctx context.Context) {
	m.Called(ctx)
}

func (m *mockInstructorService) ClearCache(ctx context.Context) {
	m.Called(ctx)
}

func (m *mockInstructorService) Health(ctx context.Context) *service.HealthResponse {
	resp, _ := m.Called(ctx).Get(0).(*service.HealthResponse)
	return resp
}

func newTestServer(t *testing.T, svc service.InstructorService) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := &handler.Config{
		Port:              "0",
		Timeout:           5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       5 * time.Second,
		HTTPClientTimeout: time.Second,
		APIVersion:        "v1",
	}

	h := handler.NewServiceHandler(svc, logger, cfg, render.New())
	server := httptest.NewServer(handler.NewRouter(h, logger, cfg))
	t.Cleanup(server.Close)

	return server
}

func doRequest(t *testing.T, method, url string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, nil)
	require.NoError(t, err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	return res, body
}

func TestHandler_GetInstructorByID(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		svcResp    *service.Instructor
		svcErr     error
		wantStatus int
		wantField  string
		wantValue  any
	}{
		{
			name:       "success",
			id:         "ins-1",
			svcResp:    &service.Instructor{ID: "ins-1", Name: "Maya Patel"},
			wantStatus: http.StatusOK,
			wantField:  "name",
			wantValue:  "Maya Patel",
		},
		{
			name:       "not_found",
			id:         "missing",
			svcErr:     fmt.Errorf("%w: upstream 404", service.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantField:  "error",
			wantValue:  "instructor not found: upstream 404",
		},
		{
			name:       "upstream_failure",
			id:         "ins-2",
			svcErr:     errors.New("connection refused"),
			wantStatus: http.StatusBadGateway,
			wantField:  "error",
			wantValue:  "connection refused",
		},
		{
			name:       "timeout",
			id:         "ins-3",
			svcErr:     fmt.Errorf("fetch: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantField:  "error",
			wantValue:  "fetch: context deadline exceeded",
		},
		{
			name:       "caller_canceled",
			id:         "ins-4",
			svcErr:     context.Canceled,
			wantStatus: handler.StatusClientClosedRequest,
			wantField:  "error",
			wantValue:  "context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockInstructorService)
			svc.On("GetInstructorByID", mock.Anything, &service.GetInstructorByIDRequest{ID: tt.id}).
				Return(tt.svcResp, tt.svcErr).Once()

			server := newTestServer(t, svc)

			res, body := doRequest(t, http.MethodGet, server.URL+"/api/v1/instructors/"+tt.id)
			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.wantValue, body[tt.wantField])

			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_ListInstructors(t *testing.T) {
	svc := new(mockInstructorService)
	svc.On("ListInstructors", mock.Anything, &service.ListInstructorsRequest{
		City:         "Leeds",
		Transmission: "manual",
		Page:         2,
		Limit:        10,
	}).Return(&service.InstructorList{
		Instructors: []service.Instructor{{ID: "ins-1"}},
		Total:       11,
		Page:        2,
	}, nil).Once()

	server := newTestServer(t, svc)

	res, body := doRequest(t, http.MethodGet,
		server.URL+"/api/v1/instructors?city=Leeds&transmission=manual&page=2&limit=10")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.InDelta(t, 11.0, body["total"], 1e-9)

	res, body = doRequest(t, http.MethodGet, server.URL+"/api/v1/instructors?limit=ten")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body["error"], "limit")

	svc.AssertExpectations(t)
}

func TestHandler_RefreshInstructor(t *testing.T) {
	svc := new(mockInstructorService)
	svc.On("RefreshInstructor", mock.Anything, &service.GetInstructorByIDRequest{ID: "ins-1"}).
		Return(&service.Instructor{ID: "ins-1"}, nil).Once()

	server := newTestServer(t, svc)

	res, body := doRequest(t, http.MethodPost, server.URL+"/api/v1/instructors/ins-1/refresh")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ins-1", body["id"])

	svc.AssertExpectations(t)
}

func TestHandler_CacheAdmin(t *testing.T) {
	stats := &service.CacheStatsResponse{
		Instructors: service.CacheStats{
			Stats:     cache.Stats{Hits: 3, Misses: 1, Size: 2, HitRate: 75},
			MaxSize:   100,
			ValidKeys: []string{"instructor:a", "instructor:b"},
		},
	}

	svc := new(mockInstructorService)
	svc.On("CacheStats", mock.Anything).Return(stats)
	svc.On("InvalidateInstructor", mock.Anything, "ins-1").Return(true).Once()
	svc.On("ClearExpired", mock.Anything).Return(&service.ClearExpiredResponse{Instructors: 2, Lists: 1}).Once()
	svc.On("ResetStats", mock.Anything).Once()
	svc.On("ClearCache", mock.Anything).Once()

	server := newTestServer(t, svc)

	res, body := doRequest(t, http.MethodGet, server.URL+"/api/v1/cache/stats")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	instructors, ok := body["instructors"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 75.0, instructors["hit_rate"], 1e-9)
	assert.InDelta(t, 2.0, instructors["size"], 1e-9)

	res, body = doRequest(t, http.MethodDelete, server.URL+"/api/v1/cache/instructors/ins-1")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, body["removed"])

	res, body = doRequest(t, http.MethodPost, server.URL+"/api/v1/cache/clear-expired")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.InDelta(t, 2.0, body["instructors"], 1e-9)

	res, _ = doRequest(t, http.MethodPost, server.URL+"/api/v1/cache/reset-stats")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = doRequest(t, http.MethodDelete, server.URL+"/api/v1/cache")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	svc.AssertExpectations(t)
}

func TestHandler_Health(t *testing.T) {
	svc := new(mockInstructorService)
	svc.On("Health", mock.Anything).Return(&service.HealthResponse{Status: http.StatusOK})

	server := newTestServer(t, svc)

	res, body := doRequest(t, http.MethodGet, server.URL+"/health")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.InDelta(t, 200.0, body["status"], 1e-9)
}
