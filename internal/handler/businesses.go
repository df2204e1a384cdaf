package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rick2303/Olanchito/internal/apierror"
	"github.com/rick2303/Olanchito/internal/dto"
	"github.com/rick2303/Olanchito/internal/service"
)

type BusinessHandler struct {
	service service.BusinessService
}

func NewBusinessHandler(s service.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: s}
}

// Listar handles GET /v1/businesses with optional category, q and page
// query parameters.
func (h *BusinessHandler) Listar(c *gin.Context) {
	var filter dto.BusinessFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros de busqueda invalidos"))
		return
	}

	resp, err := h.service.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar negocios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorSlug handles GET /v1/businesses/:slug.
func (h *BusinessHandler) ObtenerPorSlug(c *gin.Context) {
	resp, err := h.service.ObtenerPorSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Negocio no encontrado"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar el negocio"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
