package handler

import (
	"net/http"

	"github.com/ser180/4R/internal/apierror"
	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct{ svc service.SearchService }

func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Búsqueda global sobre ordenes, movimientos y documentos
// @Tags busqueda
// @Produce json
// @Param search query string false "Subcadena sobre folio/proveedor"
// @Param type query string false "orden | documento | entrada | salida | all"
// @Param supplier query string false "Nombre exacto del proveedor"
// @Param status query string false "Estado exacto"
// @Param doc_type query string false "Tipo de documento exacto"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} dto.SearchResponse
// @Router /v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var filter dto.SearchFilter
	_ = c.ShouldBindQuery(&filter)

	resp, err := h.svc.Search(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al ejecutar la búsqueda"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
