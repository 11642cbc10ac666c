package transport

import (
	"github.com/labstack/echo/v4"

	"github.com/vaultbanking/vaulthub.go/controllers"
	"github.com/vaultbanking/vaulthub.go/lib/service"
)

func RegisterEndpoints(svc *service.VaulthubService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, adminMw echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	// Service info, no Authorization required
	e.GET("/v2/info", controllers.NewInfoController(svc).GetInfo, CreateCacheClient().Middleware())

	// Secured endpoints which require an Authorization token (JWT)
	vaultCtrl := controllers.NewVaultController(svc)
	secured.GET("/v2/vaults/:vault_id", vaultCtrl.GetVault)
	secured.POST("/v2/vaults/preview", vaultCtrl.Preview)
	securedWithStrictRateLimit.PUT("/v2/vaults/:vault_id/settings", vaultCtrl.UpdateSettings)

	// Operational endpoints
	e.GET("/v2/admin/save-attempts", controllers.NewSaveAttemptsController(svc).List, adminMw, logMw)
}
