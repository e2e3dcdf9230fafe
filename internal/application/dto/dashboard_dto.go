package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Counts    DashboardCounts    `json:"counts"`
	Stock     DashboardStock     `json:"stock"`
	Financial DashboardFinancial `json:"financial"`
	Analytics []CategoryValueDTO `json:"analytics"` // valor por categoría, descendente
}

// DashboardCounts conteos básicos del inventario del usuario.
type DashboardCounts struct {
	TotalProducts   int `json:"total_products"`
	TotalCategories int `json:"total_categories"`
	LowStock        int `json:"low_stock"`
	ExpiredProducts int `json:"expired_products"`
}

// DashboardStock existencias agregadas.
type DashboardStock struct {
	TotalStock int64 `json:"total_stock"`
}

// DashboardFinancial valores monetarios agregados. Invariante:
// total = expired + real, exacto, sin redondeo intermedio.
type DashboardFinancial struct {
	TotalInventoryValue   decimal.Decimal `json:"total_inventory_value"`
	ExpiredInventoryValue decimal.Decimal `json:"expired_inventory_value"`
	RealInventoryValue    decimal.Decimal `json:"real_inventory_value"`
}

// CategoryValueDTO valor de inventario de una categoría con al menos un producto.
type CategoryValueDTO struct {
	Category   string          `json:"category"`
	TotalValue decimal.Decimal `json:"total_value"`
}
