// Package reports genera el reporte PDF del estado del inventario
// (GET /api/dashboard/export).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/analytics"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

// ReportUseCase arma los datos del reporte (dashboard + alertas) y delega el
// render al generador PDF.
type ReportUseCase struct {
	dashboardUC *analytics.DashboardUseCase
	productUC   *usecase.ProductUseCase
	userRepo    repository.UserRepository
	generator   InventoryPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	dashboardUC *analytics.DashboardUseCase,
	productUC *usecase.ProductUseCase,
	userRepo repository.UserRepository,
	generator InventoryPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		dashboardUC: dashboardUC,
		productUC:   productUC,
		userRepo:    userRepo,
		generator:   generator,
	}
}

// GenerateInventoryReport devuelve los bytes del PDF para el dueño indicado.
// Los datos salen de los mismos casos de uso que el dashboard y las alertas,
// así el PDF nunca puede divergir de lo que muestra la API.
func (uc *ReportUseCase) GenerateInventoryReport(ctx context.Context, ownerID string) ([]byte, error) {
	user, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	dashboard, err := uc.dashboardUC.GetDashboard(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("reporte: dashboard: %w", err)
	}
	alerts, err := uc.productUC.Alerts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("reporte: alertas: %w", err)
	}
	return uc.generator.GenerateInventoryReport(ctx, InventoryReportData{
		Username:    user.Username,
		GeneratedAt: time.Now(),
		Dashboard:   *dashboard,
		LowStock:    alerts.LowStock,
		Expired:     alerts.Expired,
	})
}
