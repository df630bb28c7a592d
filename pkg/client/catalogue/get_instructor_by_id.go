package catalogue

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *BasicClient) GetInstructorByID(
	ctx context.Context,
	req *GetInstructorByIDRequest,
) (*GetInstructorByIDResponse, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid GetInstructorByID request: %w", err)
	}

	urlForGetInstructorByID := fmt.Sprintf("%s/instructors/%s",
		c.cfg.BaseURL,
		url.PathEscape(req.ID),
	)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, urlForGetInstructorByID, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating new request for GetInstructorByID: %w", err)
	}

	var resp *GetInstructorByIDResponse
	if err = c.do(ctx, httpReq, "GetInstructorByID", &resp); err != nil {
		return nil, err
	}

	return resp, nil
}
