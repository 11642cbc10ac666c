package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vaultbanking/vaulthub.go/lib/service"
)

// InfoController : InfoController struct
type InfoController struct {
	svc *service.VaulthubService
}

func NewInfoController(svc *service.VaulthubService) *InfoController {
	return &InfoController{svc: svc}
}

// GetInfo : GetInfo handler
func (controller *InfoController) GetInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.svc.GetInfo())
}
