package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"

	"backend/internal/config"
	"backend/internal/models"
	"backend/internal/payments"
	"backend/internal/store"
)

const checkoutSessionCompleted = "checkout.session.completed"

// HandleWebhook receives Stripe's signed event notifications. Signature
// verification runs against the exact raw body bytes and is never skipped.
// Once an event verifies, the response is 200 regardless of what happens
// downstream, unless strict persistence mode is on: a non-2xx answer makes
// Stripe redeliver the event.
func HandleWebhook(verify payments.EventVerifier, orders store.OrderStore, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /webhook"
		defer handlePanic(c, route)

		payload, err := c.GetRawData()
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "could not read request body")
			return
		}

		event, err := verify(payload, c.GetHeader("Stripe-Signature"), cfg.StripeWebhookSecret)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Webhook Error: "+err.Error())
			return
		}

		if event.Type == checkoutSessionCompleted {
			if err := recordCompletedCheckout(c.Request.Context(), orders, event, cfg.DedupeWebhookEvents); err != nil {
				log.Printf("[%s] order persistence failed: %v", route, err)
				if cfg.StrictWebhookPersistence {
					respondWithError(c, http.StatusInternalServerError, route, "order persistence failed")
					return
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func recordCompletedCheckout(ctx context.Context, orders store.OrderStore, event stripe.Event, dedupe bool) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("decode checkout session: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if dedupe {
		exists, err := orders.HasOrderForSession(ctx, session.ID)
		if err != nil {
			return fmt.Errorf("dedupe lookup for session %s: %w", session.ID, err)
		}
		if exists {
			log.Printf("[POST /webhook] order for session %s already exists, skipping", session.ID)
			return nil
		}
	}

	order, err := orderFromSession(&session, time.Now().UTC())
	if err != nil {
		return err
	}

	id, err := orders.CreateOrder(ctx, order)
	if err != nil {
		return fmt.Errorf("create order %s: %w", order.OrderNumber, err)
	}

	log.Printf("[POST /webhook] order %s created as %s", order.OrderNumber, id)
	return nil
}

func orderFromSession(session *stripe.CheckoutSession, now time.Time) (models.Order, error) {
	meta := session.Metadata

	var cartItems []models.CartLineItem
	if raw := meta["lineItems"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &cartItems); err != nil {
			return models.Order{}, fmt.Errorf("parse lineItems metadata: %w", err)
		}
	}

	lineItems := make([]models.OrderLineItem, 0, len(cartItems))
	for _, item := range cartItems {
		lineItems = append(lineItems, models.OrderLineItem{
			Key:         payments.NewLineItemKey(),
			ProductID:   item.ProductID,
			ProductSlug: item.ProductSlug,
			Title:       item.Title,
			Image:       item.Image,
			Quantity:    item.Qty(),
			Price:       item.Price.Amount(),
		})
	}

	paymentIntentID := ""
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	return models.Order{
		DocType:               "order",
		OrderNumber:           meta["orderNumber"],
		UserID:                meta["userId"],
		UserEmail:             meta["userEmail"],
		UserName:              meta["userName"],
		LineItems:             lineItems,
		ShippingAddress:       shippingAddressFromSession(session),
		Status:                models.OrderStatusPaid,
		StripeSessionID:       session.ID,
		StripePaymentIntentID: paymentIntentID,
		Total:                 payments.MajorUnits(session.AmountTotal),
		Currency:              string(session.Currency),
		CreatedAt:             now,
	}, nil
}

// shippingAddressFromSession prefers the session's shipping details and
// falls back to customer details, mirroring what the provider collects.
func shippingAddressFromSession(session *stripe.CheckoutSession) *models.ShippingAddress {
	var name string
	var addr *stripe.Address

	switch {
	case session.ShippingDetails != nil:
		name = session.ShippingDetails.Name
		addr = session.ShippingDetails.Address
	case session.CustomerDetails != nil:
		name = session.CustomerDetails.Name
		addr = session.CustomerDetails.Address
	default:
		return nil
	}

	out := &models.ShippingAddress{Name: name}
	if addr != nil {
		out.Line1 = addr.Line1
		out.Line2 = addr.Line2
		out.City = addr.City
		out.State = addr.State
		out.PostalCode = addr.PostalCode
		out.Country = addr.Country
	}
	return out
}
