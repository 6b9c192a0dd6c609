package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/payments"
	"backend/internal/store"
)

// NewRouter wires the three endpoints with permissive CORS and explicit 405
// handling for wrong methods.
func NewRouter(client payments.SessionCreator, verify payments.EventVerifier, orders store.OrderStore, cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type", "Authorization"},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	r.POST("/create-checkout-session", CreateCheckoutSession(client))
	r.GET("/orders", GetOrders(orders))
	r.POST("/webhook", HandleWebhook(verify, orders, cfg))

	return r
}
