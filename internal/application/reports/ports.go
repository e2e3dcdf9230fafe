package reports

import (
	"context"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/dto"
)

// InventoryReportData todo lo que el generador necesita para armar el PDF.
type InventoryReportData struct {
	Username    string
	GeneratedAt time.Time
	Dashboard   dto.DashboardResponse
	LowStock    []dto.ProductResponse
	Expired     []dto.ProductResponse
}

// InventoryPDFGenerator puerto del generador de PDF (implementado con Maroto
// en infrastructure/pdf).
type InventoryPDFGenerator interface {
	GenerateInventoryReport(ctx context.Context, data InventoryReportData) ([]byte, error)
}
