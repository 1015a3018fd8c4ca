package payfast

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"swim-shop-api/internal/utils"
)

var ErrNotValid = errors.New("payfast: notification rejected by validate endpoint")

// PostFormFunc posts a form and returns the body; swapped out in tests.
type PostFormFunc func(ctx context.Context, target string, form url.Values) (string, error)

// Validator confirms an ITN with the gateway's validate endpoint.
type Validator struct {
	URL      string
	Post     PostFormFunc
	Retries  int
	Interval time.Duration
}

func NewValidator(sandbox bool) *Validator {
	return &Validator{
		URL:      ValidateURL(sandbox),
		Post:     utils.HttpPostForm,
		Retries:  3,
		Interval: time.Second,
	}
}

// Validate posts the received fields, minus the signature, back to the gateway.
// Transport failures are retried; an answer other than VALID returns ErrNotValid.
func (v *Validator) Validate(ctx context.Context, fields map[string]string) error {
	form := url.Values{}
	for k, val := range fields {
		if k == FieldSignature {
			continue
		}
		form.Set(k, val)
	}

	var body string
	err := utils.DoWithRetry(ctx, v.Retries, v.Interval, func() error {
		var err error
		body, err = v.Post(ctx, v.URL, form)
		return err
	})
	if err != nil {
		return err
	}
	if strings.TrimSpace(body) != "VALID" {
		return ErrNotValid
	}
	return nil
}
