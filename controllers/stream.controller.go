// File: controllers/stream.controller.go
package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Live list subscriptions. Each open page holds one SSE connection backed
// by a change stream on its collection; every store push is forwarded as-is
// with no debouncing. Closing the page tears the stream down. This path is
// independent of the mutation handlers and of the page cache.

// StreamProducts pushes product collection changes to the client.
func (ctrl *Controller) StreamProducts(c *gin.Context) {
	ctrl.streamCollection(c, "products")
}

// StreamOrders pushes order collection changes to the client.
func (ctrl *Controller) StreamOrders(c *gin.Context) {
	ctrl.streamCollection(c, "orders")
}

func (ctrl *Controller) streamCollection(c *gin.Context, name string) {
	ctx := c.Request.Context()

	stream, err := ctrl.DB.Collection(name).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo abrir la suscripción"})
		return
	}
	defer stream.Close(ctx)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		if !stream.Next(ctx) {
			return false
		}
		var event bson.M
		if err := stream.Decode(&event); err != nil {
			return false
		}
		c.SSEvent("change", gin.H{
			"collection":    name,
			"operationType": event["operationType"],
			"documentKey":   event["documentKey"],
			"fullDocument":  event["fullDocument"],
		})
		return true
	})
}
