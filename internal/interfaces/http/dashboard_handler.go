package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/analytics"
	"github.com/jhoicas/despensa-api/internal/application/reports"
)

// DashboardHandler maneja el dashboard de inventario y su exportación a PDF.
type DashboardHandler struct {
	uc       *analytics.DashboardUseCase
	reportUC *reports.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, reportUC *reports.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, reportUC: reportUC}
}

// GetDashboard godoc
// @Summary      Estadísticas agregadas del inventario del caller
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Reporte PDF del estado del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/dashboard/export [get]
func (h *DashboardHandler) Export(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.GenerateInventoryReport(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	filename := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
