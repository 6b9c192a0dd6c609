package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPaid is the only status this service ever writes; other values
// are owned by external tooling and merely decode through these types.
const OrderStatusPaid = "paid"

// OrderLineItem is a snapshot of one purchased cart entry with its price
// normalized to major currency units.
type OrderLineItem struct {
	Key         string  `bson:"key" json:"key"`
	ProductID   string  `bson:"productId" json:"productId"`
	ProductSlug string  `bson:"productSlug" json:"productSlug"`
	Title       string  `bson:"title" json:"title"`
	Image       string  `bson:"image,omitempty" json:"image,omitempty"`
	Quantity    int64   `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
}

// ShippingAddress is the flat address collected by the payment provider.
type ShippingAddress struct {
	Name       string `bson:"name" json:"name"`
	Line1      string `bson:"line1,omitempty" json:"line1,omitempty"`
	Line2      string `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// Order is the persisted order document. It is written exactly once, by the
// webhook handler after signature verification, and never mutated here.
type Order struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DocType               string             `bson:"_type" json:"_type"`
	OrderNumber           string             `bson:"orderNumber" json:"orderNumber"`
	UserID                string             `bson:"userId" json:"userId"`
	UserEmail             string             `bson:"userEmail" json:"userEmail"`
	UserName              string             `bson:"userName" json:"userName"`
	LineItems             []OrderLineItem    `bson:"lineItems" json:"lineItems"`
	ShippingAddress       *ShippingAddress   `bson:"shippingAddress" json:"shippingAddress"`
	Status                string             `bson:"status" json:"status"`
	StripeSessionID       string             `bson:"stripeSessionId" json:"stripeSessionId"`
	StripePaymentIntentID string             `bson:"stripePaymentIntentId" json:"stripePaymentIntentId"`
	Total                 float64            `bson:"total" json:"total"`
	Currency              string             `bson:"currency" json:"currency"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
}

// OrderSummary is the projection returned by the orders listing.
type OrderSummary struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	Status          string             `bson:"status" json:"status"`
	Total           float64            `bson:"total" json:"total"`
	Currency        string             `bson:"currency" json:"currency"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	LineItems       []OrderLineItem    `bson:"lineItems" json:"lineItems"`
	ShippingAddress *ShippingAddress   `bson:"shippingAddress" json:"shippingAddress"`
}
