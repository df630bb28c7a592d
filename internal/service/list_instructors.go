package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vladislavprovich/drivehub/pkg/fetcher"
)

func (s *Service) ListInstructors(
	ctx context.Context,
	req *ListInstructorsRequest,
) (*InstructorList, error) {
	s.logger.InfoContext(ctx, "ListInstructors", slog.Any("req", req))
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, validationError(err)
	}

	key := listKey(req)
	v, _, err := s.shared(ctx, key, func(ctx context.Context) (any, error) {
		return fetcher.Fetch[*InstructorList](ctx, s.caches.Lists, key, s.ttl, func(ctx context.Context) (*InstructorList, error) {
			clientResp, err := s.client.ListInstructors(ctx, s.convectorToClient.ConvertToListInstructorsRequest(req))
			if err != nil {
				return nil, err
			}
			if clientResp == nil {
				return nil, fmt.Errorf("empty catalogue response for %q", key)
			}

			return s.convectorFromClient.ConvertFromListInstructorsResponse(clientResp), nil
		})
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "service ListInstructors", slog.Any("error", err))
		return nil, mapClientError(err)
	}

	return v.(*InstructorList), nil
}

func listKey(req *ListInstructorsRequest) string {
	return fmt.Sprintf("instructors:%s:%s:%d:%d",
		strings.ToLower(strings.TrimSpace(req.City)),
		req.Transmission,
		req.Page,
		req.Limit,
	)
}
