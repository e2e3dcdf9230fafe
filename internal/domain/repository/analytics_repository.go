package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryStats resultado crudo del agregado de productos de un usuario.
// Lo produce la DB en una sola pasada; el use case arma el DTO final.
type InventoryStats struct {
	TotalProducts int
	TotalStock    int64           // suma de cantidades (0 si no hay productos)
	LowStockCount int             // productos con quantity <= min_threshold
	ExpiredCount  int             // productos vencidos a la fecha de referencia
	TotalValue    decimal.Decimal // Σ price × quantity
	ExpiredValue  decimal.Decimal // Σ price × quantity de los vencidos
}

// CategoryValue valor de inventario agrupado por categoría.
type CategoryValue struct {
	CategoryName string
	TotalValue   decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetInventoryStats agrega conteos, stock y valores del inventario del
	// dueño en una sola consulta. Usa COALESCE para devolver cero sin filas.
	GetInventoryStats(ctx context.Context, ownerID string, ref time.Time) (InventoryStats, error)

	// GetValueByCategory devuelve el valor de inventario por categoría,
	// ordenado descendente. Las categorías sin productos no aparecen.
	GetValueByCategory(ctx context.Context, ownerID string) ([]CategoryValue, error)

	// CountCategories cuenta todas las categorías del dueño (con o sin productos).
	CountCategories(ctx context.Context, ownerID string) (int, error)
}
