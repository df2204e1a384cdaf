package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rick2303/Olanchito/internal/apierror"
	"github.com/rick2303/Olanchito/internal/service"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// Listar handles GET /v1/categories.
func (h *CategoryHandler) Listar(c *gin.Context) {
	cats, err := h.service.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar categorias"))
		return
	}
	c.JSON(http.StatusOK, cats)
}
