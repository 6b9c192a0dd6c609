package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/store"
)

func GetOrders(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		userID := strings.TrimSpace(c.Query("userId"))
		if userID == "" {
			respondWithError(c, http.StatusBadRequest, route, "userId is required")
			return
		}

		opts, err := parseListOptions(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := orders.OrdersByUser(ctx, userID, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}
		if list == nil {
			list = []models.OrderSummary{}
		}

		c.JSON(http.StatusOK, list)
	}
}
