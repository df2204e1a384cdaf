package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rick2303/Olanchito/internal/apierror"
	"github.com/rick2303/Olanchito/internal/dto"
	"github.com/rick2303/Olanchito/internal/service"
)

type SubmissionHandler struct {
	service service.SubmissionService
}

func NewSubmissionHandler(s service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: s}
}

// Registrar handles POST /v1/submissions (multipart/form-data).
// The image part is optional; all other validation lives in the service.
func (h *SubmissionHandler) Registrar(c *gin.Context) {
	var req dto.SubmissionRequest
	if !bindAndValidate(c, &req) {
		return
	}

	var img *service.ImageFile
	fileHeader, err := c.FormFile("image")
	switch {
	case err == nil:
		f, openErr := fileHeader.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer la imagen adjunta"))
			return
		}
		defer f.Close()
		img = &service.ImageFile{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Reader:      f,
		}
	case errors.Is(err, http.ErrMissingFile):
		// sin imagen: se registra con la imagen de respaldo
	default:
		c.JSON(http.StatusBadRequest, apierror.New("Formulario invalido"))
		return
	}

	resp, err := h.service.Registrar(c.Request.Context(), req, img)
	if err != nil {
		var subErr *service.SubmissionError
		if errors.As(err, &subErr) {
			switch subErr.Stage {
			case service.StageValidation:
				c.JSON(http.StatusUnprocessableEntity, apierror.New(subErr.Err.Error()))
				return
			case service.StageUpload:
				c.JSON(http.StatusBadGateway, apierror.New("No se pudo subir la imagen, intenta de nuevo"))
				return
			}
		}
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo registrar la solicitud"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
