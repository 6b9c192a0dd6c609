package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v79"

	"backend/internal/models"
	"backend/internal/store"
)

type fakeSessionCreator struct {
	calls   int
	params  *stripe.CheckoutSessionParams
	session *stripe.CheckoutSession
	err     error
}

func (f *fakeSessionCreator) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.calls++
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeOrderStore struct {
	created   []models.Order
	summaries []models.OrderSummary
	createErr error
	listErr   error

	lastUserID string
	lastOpts   store.ListOptions
}

func (f *fakeOrderStore) CreateOrder(ctx context.Context, order models.Order) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, order)
	return fmt.Sprintf("order-%d", len(f.created)), nil
}

func (f *fakeOrderStore) OrdersByUser(ctx context.Context, userID string, opts store.ListOptions) ([]models.OrderSummary, error) {
	f.lastUserID = userID
	f.lastOpts = opts
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.summaries, nil
}

func (f *fakeOrderStore) HasOrderForSession(ctx context.Context, sessionID string) (bool, error) {
	for _, o := range f.created {
		if o.StripeSessionID == sessionID {
			return true, nil
		}
	}
	return false, nil
}

const testWebhookSecret = "whsec_test_secret"

// signPayload produces a Stripe-Signature header that verifies against the
// given secret, using the provider's t=...,v1=... HMAC-SHA256 scheme.
func signPayload(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

// webhookEvent builds a raw event payload around the given session object.
func webhookEvent(t *testing.T, eventType string, sessionObject map[string]any) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":          "evt_test_1",
		"object":      "event",
		"api_version": "2024-06-20",
		"created":     time.Now().Unix(),
		"type":        eventType,
		"data":        map[string]any{"object": sessionObject},
	})
	if err != nil {
		t.Fatalf("marshal event payload: %v", err)
	}
	return payload
}

func completedSessionObject(t *testing.T, lineItems string) map[string]any {
	t.Helper()
	return map[string]any{
		"id":             "cs_test_123",
		"object":         "checkout.session",
		"amount_total":   2500,
		"currency":       "usd",
		"payment_intent": "pi_test_456",
		"metadata": map[string]string{
			"orderNumber": "DK-1-ABCDE",
			"userId":      "u1",
			"userEmail":   "u1@example.com",
			"userName":    "User One",
			"lineItems":   lineItems,
		},
		"shipping_details": map[string]any{
			"name": "User One",
			"address": map[string]any{
				"line1":       "1 Main Street",
				"city":        "Doha",
				"state":       "",
				"postal_code": "00000",
				"country":     "QA",
			},
		},
	}
}
