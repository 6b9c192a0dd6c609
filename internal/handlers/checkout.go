package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"

	"backend/internal/models"
	"backend/internal/payments"
)

const (
	checkoutCurrency = "usd"

	defaultSuccessURL = "dokkani://checkout/success?session_id={CHECKOUT_SESSION_ID}"
	defaultCancelURL  = "dokkani://checkout/cancel"
)

var allowedShippingCountries = []string{"US", "QA", "AE", "SA", "KW", "BH", "OM"}

type checkoutRequest struct {
	UserID     string                `json:"userId"`
	UserEmail  string                `json:"userEmail"`
	UserName   string                `json:"userName"`
	LineItems  []models.CartLineItem `json:"lineItems"`
	Total      models.FlexPrice      `json:"total,omitempty"`
	SuccessURL string                `json:"successUrl,omitempty"`
	CancelURL  string                `json:"cancelUrl,omitempty"`
}

func CreateCheckoutSession(client payments.SessionCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /create-checkout-session"
		defer handlePanic(c, route)

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if strings.TrimSpace(req.UserID) == "" || len(req.LineItems) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "Missing required fields")
			return
		}

		orderNumber := payments.NewOrderNumber()

		params, err := buildSessionParams(req, orderNumber)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		session, err := client.CreateCheckoutSession(ctx, params)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, payments.ErrorMessage(err))
			return
		}

		log.Printf("[%s] session %s created, order %s", route, session.ID, orderNumber)

		c.JSON(http.StatusOK, gin.H{
			"checkoutUrl": session.URL,
			"sessionId":   session.ID,
			"orderNumber": orderNumber,
		})
	}
}

func buildSessionParams(req checkoutRequest, orderNumber string) (*stripe.CheckoutSessionParams, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Title),
			Metadata: map[string]string{
				"productId":   item.ProductID,
				"productSlug": item.ProductSlug,
			},
		}
		if item.Image != "" {
			productData.Images = stripe.StringSlice([]string{item.Image})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(checkoutCurrency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(payments.MinorUnits(item.PriceAmount())),
			},
			Quantity: stripe.Int64(item.Qty()),
		})
	}

	// The raw line items ride along in session metadata so the webhook can
	// rebuild the order without any local state.
	itemsSnapshot, err := json.Marshal(req.LineItems)
	if err != nil {
		return nil, fmt.Errorf("serialize line items: %w", err)
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = defaultSuccessURL
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = defaultCancelURL
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		CustomerEmail:      stripe.String(req.UserEmail),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(allowedShippingCountries),
		},
		ShippingOptions: shippingOptions(),
		SuccessURL:      stripe.String(successURL),
		CancelURL:       stripe.String(cancelURL),
	}
	params.Metadata = map[string]string{
		"userId":      req.UserID,
		"userEmail":   req.UserEmail,
		"userName":    req.UserName,
		"orderNumber": orderNumber,
		"lineItems":   string(itemsSnapshot),
	}

	return params, nil
}

func shippingOptions() []*stripe.CheckoutSessionShippingOptionParams {
	return []*stripe.CheckoutSessionShippingOptionParams{
		{
			ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
				Type: stripe.String("fixed_amount"),
				FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
					Amount:   stripe.Int64(0),
					Currency: stripe.String(checkoutCurrency),
				},
				DisplayName: stripe.String("Standard shipping"),
				DeliveryEstimate: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
					Minimum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
						Unit:  stripe.String("business_day"),
						Value: stripe.Int64(5),
					},
					Maximum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
						Unit:  stripe.String("business_day"),
						Value: stripe.Int64(7),
					},
				},
			},
		},
		{
			ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
				Type: stripe.String("fixed_amount"),
				FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
					Amount:   stripe.Int64(1500),
					Currency: stripe.String(checkoutCurrency),
				},
				DisplayName: stripe.String("Express shipping"),
				DeliveryEstimate: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateParams{
					Minimum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMinimumParams{
						Unit:  stripe.String("business_day"),
						Value: stripe.Int64(1),
					},
					Maximum: &stripe.CheckoutSessionShippingOptionShippingRateDataDeliveryEstimateMaximumParams{
						Unit:  stripe.String("business_day"),
						Value: stripe.Int64(3),
					},
				},
			},
		},
	}
}
