package handlers

import (
	"github.com/gin-gonic/gin"

	"hospital-records-server/internal/config"
	"hospital-records-server/internal/records"
	"hospital-records-server/internal/utils"
)

// ExportHandler handles the admin "export visible rows" actions.
type ExportHandler struct {
	Manager *records.Manager
	Cfg     *config.Config
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(manager *records.Manager, cfg *config.Config) *ExportHandler {
	return &ExportHandler{Manager: manager, Cfg: cfg}
}

// ExportText writes the visible rows to a text file the client can hand to
// the print spooler. The current department/search filter is passed through
// so the export matches what the table shows.
func (h *ExportHandler) ExportText(c *gin.Context) {
	path, err := h.Manager.ExportText(listFilterFromQuery(c), h.Cfg.ExportDir)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Print command sent successfully", gin.H{"path": path})
}

// ExportXLSX writes the visible rows to a spreadsheet.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	path, err := h.Manager.ExportXLSX(listFilterFromQuery(c), h.Cfg.ExportDir)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, "Records exported successfully", gin.H{"path": path})
}
