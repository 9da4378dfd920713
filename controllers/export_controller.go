package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"clientregistro/exporter"
	"clientregistro/monitoring"
	"clientregistro/utils"
	"clientregistro/views"
)

// ExportClients serializes the current filtered/sorted view to a single-sheet
// workbook and offers it as a download.
func (cc *ClientController) ExportClients(c *fiber.Ctx) error {
	clients := views.Apply(cc.Store.Snapshot(), queryFromCtx(c))

	buf, err := exporter.Workbook(clients)
	if err != nil {
		cc.Logger.WithError(err).Error("export failed")
		monitoring.CaptureError(err, map[string]interface{}{"action": "export"})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export clients", err)
	}

	monitoring.ExportsTotal.Inc()
	c.Set(fiber.HeaderContentType, exporter.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exporter.FileName))
	return c.Send(buf.Bytes())
}
