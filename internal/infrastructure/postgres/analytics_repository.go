package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/despensa-api/internal/domain/alert"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de inventario.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetInventoryStats agrega conteos, stock y valores del inventario del dueño
// en una sola pasada. Los predicados de stock bajo y vencimiento son los
// fragmentos canónicos de internal/domain/alert; COALESCE garantiza cero (no
// NULL) cuando el dueño no tiene productos.
func (r *AnalyticsRepo) GetInventoryStats(ctx context.Context, ownerID string, ref time.Time) (repository.InventoryStats, error) {
	query := `
	SELECT
	    COUNT(*)                                                        AS total_products,
	    COALESCE(SUM(p.quantity), 0)                                    AS total_stock,
	    COUNT(*) FILTER (WHERE ` + alert.LowStockSQL + `)               AS low_stock_count,
	    COUNT(*) FILTER (WHERE ` + alert.ExpiredSQL + `)                AS expired_count,
	    COALESCE(SUM(p.price * p.quantity), 0)                          AS total_value,
	    COALESCE(SUM(p.price * p.quantity) FILTER (WHERE ` + alert.ExpiredSQL + `), 0) AS expired_value
	` + ownedProducts

	var stats repository.InventoryStats
	err := r.pool.QueryRow(ctx, query, pgx.NamedArgs{"owner_id": ownerID, "ref_date": alert.DateOf(ref)}).Scan(
		&stats.TotalProducts,
		&stats.TotalStock,
		&stats.LowStockCount,
		&stats.ExpiredCount,
		&stats.TotalValue,
		&stats.ExpiredValue,
	)
	if err != nil {
		return repository.InventoryStats{}, fmt.Errorf("analytics.GetInventoryStats: %w", err)
	}
	return stats, nil
}

// GetValueByCategory devuelve Σ precio × cantidad agrupado por categoría del
// dueño, descendente. Las categorías sin productos no generan fila (el JOIN
// las excluye solo de este desglose, no del conteo de categorías).
func (r *AnalyticsRepo) GetValueByCategory(ctx context.Context, ownerID string) ([]repository.CategoryValue, error) {
	query := `
	SELECT c.name, SUM(p.price * p.quantity) AS total_value
	` + ownedProducts + `
	GROUP BY c.id, c.name
	ORDER BY total_value DESC, c.name`

	rows, err := r.pool.Query(ctx, query, pgx.NamedArgs{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("analytics.GetValueByCategory: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryValue
	for rows.Next() {
		var row repository.CategoryValue
		if err := rows.Scan(&row.CategoryName, &row.TotalValue); err != nil {
			return nil, fmt.Errorf("analytics.GetValueByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountCategories cuenta todas las categorías del dueño, con o sin productos.
func (r *AnalyticsRepo) CountCategories(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountCategories: %w", err)
	}
	return count, nil
}
