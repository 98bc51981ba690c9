package handlers

import (
	"fmt"
	"net/http"

	"andes-autoparts/internal/catalog"
	"andes-autoparts/internal/middleware"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Export streams the whole catalog as xlsx. Access is checked by
// middleware.RequireRole before this runs.
func (h *Handler) Export(c *gin.Context) {
	data, err := h.catalog.Export(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	if id, ok := middleware.CurrentIdentity(c); ok {
		log.WithFields(log.Fields{"username": id.Username, "bytes": len(data)}).Info("catalog exported")
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", catalog.ExportFilename))
	c.Data(http.StatusOK, catalog.ExportContentType, data)
}
