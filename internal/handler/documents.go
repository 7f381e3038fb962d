package handler

import (
	"net/http"

	"github.com/ser180/4R/internal/apierror"
	"github.com/ser180/4R/internal/dto"
	"github.com/ser180/4R/internal/middleware"
	"github.com/ser180/4R/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps document uploads at 10 MB, matching the attach screen.
const maxUploadSize = 10 << 20

type DocumentsHandler struct{ svc service.DocumentService }

func NewDocumentsHandler(svc service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

// Upload godoc
// @Summary Carga de documento adjunto
// @Tags documentos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Archivo"
// @Param document_type formData string true "factura | ticket | remision | entrada_almacen | salida_almacen | otro"
// @Param related_to formData string true "orden | entrada | salida"
// @Param related_id formData string true "UUID del registro relacionado"
// @Param supplier_id formData string false "UUID del proveedor"
// @Success 201 {object} dto.DocumentResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/documents [post]
func (h *DocumentsHandler) Upload(c *gin.Context) {
	var form dto.UploadDocumentForm
	if !bindFormAndValidate(c, &form) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("El archivo es obligatorio"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("El archivo excede el tamaño máximo de 10 MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer file.Close()

	uploadedBy := ""
	if claims := middleware.GetClaims(c); claims != nil {
		uploadedBy = claims.Email
	}

	resp, err := h.svc.Upload(c.Request.Context(), service.UploadInput{
		Form:         form,
		OriginalName: fileHeader.Filename,
		Size:         fileHeader.Size,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Content:      file,
		UploadedBy:   uploadedBy,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DocumentsHandler) List(c *gin.Context) {
	var filter dto.DocumentFilter
	_ = c.ShouldBindQuery(&filter)

	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar documentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Download redirects to a short-lived presigned URL of the stored binary.
func (h *DocumentsHandler) Download(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	url, err := h.svc.DownloadURL(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *DocumentsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
