package payments

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

// SessionCreator is the slice of the Stripe API the checkout handler needs,
// narrowed so tests can substitute a fake.
type SessionCreator interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeClient calls the real Stripe API using the process-wide key.
type StripeClient struct{}

func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	return session.New(params)
}

// EventVerifier validates a raw webhook payload against its signature header
// and returns the parsed event. The payload must be the exact request body
// bytes; any re-serialization invalidates the signature.
type EventVerifier func(payload []byte, sigHeader, secret string) (stripe.Event, error)

// VerifyEvent is the production verifier.
func VerifyEvent(payload []byte, sigHeader, secret string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, secret)
}

// ErrorMessage unwraps Stripe API errors to the provider's own message so
// handlers can surface it verbatim.
func ErrorMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
