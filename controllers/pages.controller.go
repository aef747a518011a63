// File: controllers/pages.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Page handlers return the data payload each admin page renders. Layout is
// the client's concern. The inventario and pedidos payloads are cached per
// path until a mutation invalidates them.

// DashboardPage serves the admin landing page payload.
func (ctrl *Controller) DashboardPage(c *gin.Context) {
	ctrl.GetDashboardStats(c)
}

// LoginPage only exists so the session guard has a route to redirect to and
// away from.
func (ctrl *Controller) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "login"})
}

// InventarioPage serves the product listing payload.
func (ctrl *Controller) InventarioPage(c *gin.Context) {
	if payload, ok := ctrl.Pages.Get(InventarioPath); ok {
		c.JSON(http.StatusOK, payload)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gen := ctrl.Pages.Generation(InventarioPath)
	products, err := ctrl.fetchProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload := gin.H{"products": products}
	ctrl.Pages.Put(InventarioPath, payload, gen)
	c.JSON(http.StatusOK, payload)
}

// PedidosPage serves the order listing payload.
func (ctrl *Controller) PedidosPage(c *gin.Context) {
	if payload, ok := ctrl.Pages.Get(PedidosPath); ok {
		c.JSON(http.StatusOK, payload)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gen := ctrl.Pages.Generation(PedidosPath)
	orders, err := ctrl.fetchOrders(ctx, bson.M{}, fetchLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload := gin.H{"orders": orders}
	ctrl.Pages.Put(PedidosPath, payload, gen)
	c.JSON(http.StatusOK, payload)
}
