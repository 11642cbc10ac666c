package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/vaultbanking/vaulthub.go/lib/service"
)

// SaveAttemptsController : operational view on the save journal
type SaveAttemptsController struct {
	svc *service.VaulthubService
}

func NewSaveAttemptsController(svc *service.VaulthubService) *SaveAttemptsController {
	return &SaveAttemptsController{svc: svc}
}

// List : lists journaled save outcomes, newest first. Filter with
// ?vault_id=..., cap with ?limit=... (default 50).
func (controller *SaveAttemptsController) List(c echo.Context) error {
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}
	attempts, err := controller.svc.SaveAttemptsFor(c.Request().Context(), c.QueryParam("vault_id"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attempts)
}
