// File: controllers/order.controller.go
package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pasteleria-backend/models"
)

// PedidosPath is the page path whose cached payload order mutations
// invalidate.
const PedidosPath = "/admin/pedidos"

// GetOrders lists orders newest first, each row enriched with the owning
// user's email. Accepts optional limit and status query parameters.
func (ctrl *Controller) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	limit := parseListLimit(c.Query("limit"), 10)

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Estado de pedido desconocido"})
			return
		}
		filter["status"] = status
	}

	orders, err := ctrl.fetchOrders(ctx, filter, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// parseListLimit coerces the limit query parameter, falling back to def for
// anything non-numeric or non-positive and clamping to the global fetch
// bound.
func parseListLimit(raw string, def int64) int64 {
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	if n > fetchLimit {
		return fetchLimit
	}
	return n
}

// fetchOrders reads up to limit orders sorted by creation time descending
// and fills in each owner's email. A failed user lookup leaves that row's
// email blank; it never aborts the batch.
func (ctrl *Controller) fetchOrders(ctx context.Context, filter bson.M, limit int64) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := ctrl.DB.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	users := ctrl.DB.Collection("users")
	for i := range orders {
		var doc models.UserDoc
		if err := users.FindOne(ctx, bson.M{"uid": orders[i].UserID}).Decode(&doc); err == nil {
			orders[i].UserEmail = doc.EmailAny()
		}
	}
	return orders, nil
}

// UpdateOrderStatusRequest carries the new status for an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus writes the new status verbatim. The status set is a
// closed enumeration; anything else is rejected before touching the store.
func (ctrl *Controller) UpdateOrderStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, operationalResult("ID de pedido no válido."))
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, operationalResult("Estado de pedido desconocido."))
		return
	}

	update := bson.M{"$set": bson.M{"status": req.Status}}
	result, err := ctrl.DB.Collection("orders").UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, operationalResult("No se pudo actualizar el estado del pedido."))
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, operationalResult("No se pudo actualizar el estado del pedido."))
		return
	}

	ctrl.Pages.Invalidate(PedidosPath)
	c.JSON(http.StatusOK, successResult())
}
