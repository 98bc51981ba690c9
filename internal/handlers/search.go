package handlers

import (
	"net/http"

	"andes-autoparts/internal/catalog"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Search(c *gin.Context) {
	var q catalog.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.String(http.StatusBadRequest, "Parámetros de búsqueda inválidos")
		return
	}

	result, err := h.catalog.Search(c.Request.Context(), q)
	if err != nil {
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "search.html", gin.H{
		"query":  q,
		"result": result,
	})
}
