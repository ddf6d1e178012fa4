package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type healthCheckHandler struct{}

// New will initialize the healthcheck/
func New(e *echo.Echo) {
	handler := &healthCheckHandler{}
	g := e.Group("/health")
	g.GET("", handler.check)
}

// check
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"healthy": "ok",
	})
}
