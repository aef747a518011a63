// File: models/order.model.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses form a closed enumeration. An order with no status at all
// is treated as pending wherever status matters (display and counting).
const (
	StatusPendiente     = "Pendiente"
	StatusEnPreparacion = "En preparación"
	StatusEntregado     = "Entregado"
)

// ValidStatus reports whether s is one of the three accepted order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPendiente, StatusEnPreparacion, StatusEntregado:
		return true
	}
	return false
}

// OrderItem is the captured snapshot of a product line at purchase time.
// The line total is productPrice × quantity and is never stored.
type OrderItem struct {
	ProductID          string  `json:"productId" bson:"productId"`
	ProductName        string  `json:"productName" bson:"productName"`
	ProductDescription string  `json:"productDescription,omitempty" bson:"productDescription,omitempty"`
	ProductPrice       float64 `json:"productPrice" bson:"productPrice"`
	ProductImageURL    string  `json:"productImageUrl,omitempty" bson:"productImageUrl,omitempty"`
	Quantity           int     `json:"quantity" bson:"quantity"`
}

// ShippingAddress is the address snapshot taken when the order was placed.
type ShippingAddress struct {
	Name       string `json:"name,omitempty" bson:"name,omitempty"`
	Address    string `json:"address,omitempty" bson:"address,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
}

// Order is created outside this admin surface; here it is only listed and
// has its status updated. TotalAmount is stored independently of the line
// items with no reconciliation between the two (kept as found).
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          string             `json:"userId" bson:"userId"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	Items           []OrderItem        `json:"items" bson:"items"`
	TotalAmount     float64            `json:"totalAmount" bson:"totalAmount"`
	Status          string             `json:"status,omitempty" bson:"status,omitempty"`
	ShippingAddress ShippingAddress    `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	UserEmail       string             `json:"userEmail,omitempty" bson:"-"`
}

// DashboardStats is the summary payload for the admin landing page.
type DashboardStats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	RecentOrders   []Order `json:"recentOrders"`
}

// ComputeDashboardStats reduces the three fetched collections into the
// dashboard summary. Orders must already be sorted by creation time,
// newest first; the first five become the recent-orders list.
func ComputeDashboardStats(orders []Order, products []Product, users []UserDoc) DashboardStats {
	stats := DashboardStats{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
	}

	for _, o := range orders {
		stats.TotalRevenue += o.TotalAmount
		if o.Status == StatusPendiente || o.Status == "" {
			stats.PendingOrders++
		}
	}

	for i := range users {
		if users[i].IsCustomer() {
			stats.TotalCustomers++
		}
	}

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentOrders = recent

	return stats
}
