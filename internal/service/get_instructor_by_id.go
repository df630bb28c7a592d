package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vladislavprovich/drivehub/pkg/client/catalogue"
	"github.com/vladislavprovich/drivehub/pkg/fetcher"
)

func (s *Service) GetInstructorByID(
	ctx context.Context,
	req *GetInstructorByIDRequest,
) (*Instructor, error) {
	s.logger.InfoContext(ctx, "GetInstructorByID", slog.Any("req", req))
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, validationError(err)
	}

	key := instructorKey(req.ID)
	v, shared, err := s.shared(ctx, key, func(ctx context.Context) (any, error) {
		store := guard[*Instructor](&s.gens, s.caches.Instructors, key)
		return fetcher.Fetch[*Instructor](ctx, store, key, s.ttl, s.produceInstructor(req))
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "service GetInstructorByID",
			slog.Any("error", err),
			slog.Bool("shared", shared),
		)
		return nil, mapClientError(err)
	}

	return v.(*Instructor), nil
}

// RefreshInstructor drops the cached profile and loads it again from the catalogue.
// A lookup already in flight for the same profile no longer stores its result.
func (s *Service) RefreshInstructor(
	ctx context.Context,
	req *GetInstructorByIDRequest,
) (*Instructor, error) {
	s.logger.InfoContext(ctx, "RefreshInstructor", slog.Any("req", req))
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, validationError(err)
	}

	key := instructorKey(req.ID)
	store := guardedStore[*Instructor]{Store: s.caches.Instructors, gens: &s.gens, gen: s.gens.advance(key)}
	s.group.Forget(key)

	query := fetcher.NewQuery[*Instructor](store, key, s.produceInstructor(req),
		fetcher.WithTTL(s.ttl),
		fetcher.WithLogger(s.logger),
	)
	instructor, err := query.Refetch(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "service RefreshInstructor", slog.Any("error", err))
		return nil, mapClientError(err)
	}

	return instructor, nil
}

func (s *Service) produceInstructor(req *GetInstructorByIDRequest) fetcher.Producer[*Instructor] {
	return func(ctx context.Context) (*Instructor, error) {
		clientResp, err := s.client.GetInstructorByID(ctx, s.convectorToClient.ConvertToGetInstructorByIDRequest(req))
		if err != nil {
			return nil, err
		}
		if clientResp == nil {
			return nil, fmt.Errorf("empty catalogue response for instructor %q", req.ID)
		}

		return s.convectorFromClient.ConvertFromGetInstructorByIDResponse(clientResp), nil
	}
}

func instructorKey(id string) string {
	return "instructor:" + id
}

func mapClientError(err error) error {
	var apiErr *catalogue.APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
