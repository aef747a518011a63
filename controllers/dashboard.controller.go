// File: controllers/dashboard.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"pasteleria-backend/models"
)

// HealthCheck reports the database connection status.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetDashboardStats fetches orders, products and users concurrently and
// reduces them into the dashboard summary. If any one fetch fails the whole
// operation fails; partial stats are never reported.
func (ctrl *Controller) GetDashboardStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	stats, err := ctrl.dashboardStats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, operationalResult("No se pudieron cargar los datos del dashboard."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// dashboardFetchers are the three bounded reads the aggregation runs. Kept
// as function values so the fail-all policy can be exercised without a
// live store.
type dashboardFetchers struct {
	orders   func(context.Context) ([]models.Order, error)
	products func(context.Context) ([]models.Product, error)
	users    func(context.Context) ([]models.UserDoc, error)
}

func (ctrl *Controller) dashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return aggregateDashboard(ctx, dashboardFetchers{
		orders: func(ctx context.Context) ([]models.Order, error) {
			return ctrl.fetchOrders(ctx, bson.M{}, fetchLimit)
		},
		products: ctrl.fetchProducts,
		users:    ctrl.fetchUsers,
	})
}

// aggregateDashboard issues the three fetches concurrently and reduces the
// results. Any single failure fails the whole aggregation; no partial stats
// are ever returned.
func aggregateDashboard(ctx context.Context, f dashboardFetchers) (models.DashboardStats, error) {
	var (
		orders   []models.Order
		products []models.Product
		users    []models.UserDoc
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = f.orders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = f.products(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = f.users(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}

	return models.ComputeDashboardStats(orders, products, users), nil
}

func (ctrl *Controller) fetchUsers(ctx context.Context) ([]models.UserDoc, error) {
	opts := options.Find().SetLimit(fetchLimit)
	cursor, err := ctrl.DB.Collection("users").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.UserDoc
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
