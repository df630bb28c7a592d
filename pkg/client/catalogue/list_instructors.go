package catalogue

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *BasicClient) ListInstructors(
	ctx context.Context,
	req *ListInstructorsRequest,
) (*ListInstructorsResponse, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid ListInstructors request: %w", err)
	}

	query := url.Values{}
	if req.City != "" {
		query.Set("city", req.City)
	}
	if req.Transmission != "" {
		query.Set("transmission", req.Transmission)
	}
	if req.Page > 0 {
		query.Set("page", strconv.Itoa(req.Page))
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	urlForListInstructors := c.cfg.BaseURL + "/instructors"
	if encoded := query.Encode(); encoded != "" {
		urlForListInstructors += "?" + encoded
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, urlForListInstructors, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating new request for ListInstructors: %w", err)
	}

	var resp *ListInstructorsResponse
	if err = c.do(ctx, httpReq, "ListInstructors", &resp); err != nil {
		return nil, err
	}

	return resp, nil
}
