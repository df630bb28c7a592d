package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// do sends httpReq and decodes a 200 response into out. Every other status
// becomes *APIError; a body that is not a JSON error is kept as its Message.
func (c *BasicClient) do(ctx context.Context, httpReq *http.Request, op string, out any) error {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Api-Key", c.cfg.APIKey)

	res, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("error doing request for %s: %w", op, err)
	}

	defer func() {
		if err = res.Body.Close(); err != nil {
			c.logger.ErrorContext(ctx,
				"error closing response body for "+op,
				slog.Any("error", err),
			)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("error reading response body for %s: %w", op, err)
	}

	if res.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: int64(res.StatusCode)}
		if err = json.Unmarshal(body, apiErr); err != nil {
			c.logger.WarnContext(ctx, "unparsable error body for "+op,
				slog.Int("status", res.StatusCode),
				slog.Any("error", err),
			)
			apiErr.Code = ""
			apiErr.Message = strings.TrimSpace(string(body))
		}

		return apiErr
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error unmarshalling response body for %s: %w", op, err)
	}

	return nil
}
