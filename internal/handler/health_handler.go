package handler

import (
	"fmt"
	"net/http"

	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	repo repository.HealthRepository
}

func NewHealthHandler(repo repository.HealthRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

type HealthResponse struct {
	Message string `json:"message"`
}

func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health-check", h.check)
}

// DBまで往復できるか
func (h *HealthHandler) check(c echo.Context) error {
	msg, err := h.repo.Check(c.Request().Context())
	if err != nil {
		return writeError(c, fmt.Errorf("health check: %w", err))
	}
	return c.JSON(http.StatusOK, HealthResponse{Message: msg})
}
