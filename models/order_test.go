package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPendiente))
	assert.True(t, ValidStatus(StatusEnPreparacion))
	assert.True(t, ValidStatus(StatusEntregado))

	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("pendiente"))
	assert.False(t, ValidStatus("Cancelado"))
}

func TestComputeDashboardStatsRevenue(t *testing.T) {
	orders := []Order{
		{TotalAmount: 10},
		{TotalAmount: 20.5},
	}
	stats := ComputeDashboardStats(orders, nil, nil)

	assert.Equal(t, 30.5, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalOrders)
}

func TestComputeDashboardStatsPendingCountsMissingStatus(t *testing.T) {
	orders := []Order{
		{Status: StatusPendiente},
		{Status: StatusEntregado},
		{Status: ""}, // no status stored: counted as pending by convention
	}
	stats := ComputeDashboardStats(orders, nil, nil)

	assert.Equal(t, 2, stats.PendingOrders)
}

func TestComputeDashboardStatsCustomers(t *testing.T) {
	users := []UserDoc{
		{Rol: RoleCustomer},
		{Role: RoleCustomer}, // legacy role field counts too
		{Rol: RoleAdmin},
		{},
	}
	stats := ComputeDashboardStats(nil, nil, users)

	assert.Equal(t, 2, stats.TotalCustomers)
}

func TestComputeDashboardStatsRecentOrders(t *testing.T) {
	orders := make([]Order, 7)
	for i := range orders {
		orders[i].TotalAmount = float64(i + 1)
	}
	stats := ComputeDashboardStats(orders, []Product{{}, {}}, nil)

	assert.Len(t, stats.RecentOrders, 5)
	// Orders arrive newest first; the slice head is kept as-is.
	assert.Equal(t, 1.0, stats.RecentOrders[0].TotalAmount)
	assert.Equal(t, 2, stats.TotalProducts)
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil, nil, nil)

	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.PendingOrders)
	assert.Empty(t, stats.RecentOrders)
}
