// Package analytics contiene el caso de uso del dashboard de inventario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// DashboardUseCase arma las estadísticas agregadas del inventario del caller.
//
// Fuente de datos: AnalyticsRepository (consultas read-only, ya acotadas por
// dueño). No toca las tablas directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetDashboard construye el DashboardResponse para el dueño indicado.
//
// Tres llamadas en paralelo:
//  1. GetInventoryStats   → conteos, stock y valores (una sola pasada SQL)
//  2. GetValueByCategory  → desglose de valor por categoría, descendente
//  3. CountCategories     → total de categorías (incluye las vacías)
//
// real_inventory_value se deriva como total − vencido con aritmética decimal
// exacta; ningún agregado pasa por float.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, ownerID string) (*dto.DashboardResponse, error) {
	ref := time.Now()

	type statsResult struct {
		stats repository.InventoryStats
		err   error
	}
	type byCategoryResult struct {
		values []repository.CategoryValue
		err    error
	}
	type countResult struct {
		count int
		err   error
	}

	statsCh := make(chan statsResult, 1)
	byCatCh := make(chan byCategoryResult, 1)
	catsCh := make(chan countResult, 1)

	go func() {
		stats, err := uc.analyticsRepo.GetInventoryStats(ctx, ownerID, ref)
		statsCh <- statsResult{stats, err}
	}()
	go func() {
		values, err := uc.analyticsRepo.GetValueByCategory(ctx, ownerID)
		byCatCh <- byCategoryResult{values, err}
	}()
	go func() {
		count, err := uc.analyticsRepo.CountCategories(ctx, ownerID)
		catsCh <- countResult{count, err}
	}()

	stats := <-statsCh
	byCat := <-byCatCh
	cats := <-catsCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: agregados de inventario: %w", stats.err)
	}
	if byCat.err != nil {
		return nil, fmt.Errorf("dashboard: valor por categoría: %w", byCat.err)
	}
	if cats.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de categorías: %w", cats.err)
	}

	analytics := make([]dto.CategoryValueDTO, 0, len(byCat.values))
	for _, v := range byCat.values {
		analytics = append(analytics, dto.CategoryValueDTO{
			Category:   v.CategoryName,
			TotalValue: v.TotalValue,
		})
	}

	return &dto.DashboardResponse{
		Counts: dto.DashboardCounts{
			TotalProducts:   stats.stats.TotalProducts,
			TotalCategories: cats.count,
			LowStock:        stats.stats.LowStockCount,
			ExpiredProducts: stats.stats.ExpiredCount,
		},
		Stock: dto.DashboardStock{TotalStock: stats.stats.TotalStock},
		Financial: dto.DashboardFinancial{
			TotalInventoryValue:   stats.stats.TotalValue,
			ExpiredInventoryValue: stats.stats.ExpiredValue,
			RealInventoryValue:    stats.stats.TotalValue.Sub(stats.stats.ExpiredValue),
		},
		Analytics: analytics,
	}, nil
}
