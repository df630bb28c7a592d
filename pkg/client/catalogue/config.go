package catalogue

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Config struct {
	APIKey  string `envconfig:"CATALOGUE_API_KEY"`
	BaseURL string `envconfig:"CATALOGUE_BASE_URL"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.BaseURL, validation.Required, is.URL),
	)
}
