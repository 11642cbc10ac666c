package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/vaultbanking/vaulthub.go/bank"
	"github.com/vaultbanking/vaulthub.go/lib/responses"
	"github.com/vaultbanking/vaulthub.go/lib/service"
)

// VaultController : Vault controller struct
type VaultController struct {
	svc *service.VaulthubService
}

func NewVaultController(svc *service.VaulthubService) *VaultController {
	return &VaultController{svc: svc}
}

// VaultSettingsRequestBody carries the caller's current vault snapshot
// together with the draft values of the edit surface. Magnitudes are
// accepted permissively; only the structure is validated.
type VaultSettingsRequestBody struct {
	Vault       bank.Vault      `json:"vault"`
	Nickname    string          `json:"nickname"`
	Reserve     decimal.Decimal `json:"reserve"`
	Hold        decimal.Decimal `json:"hold"`
	ReserveType string          `json:"reserve_type" validate:"omitempty,oneof=amount percentage"`
	HoldType    string          `json:"hold_type" validate:"omitempty,oneof=amount percentage"`
	SavingsRate decimal.Decimal `json:"savings_rate"`
	IncomeDSCR  decimal.Decimal `json:"income_dscr"`
	GrowthDSCR  decimal.Decimal `json:"growth_dscr"`
}

type VaultSettingsResponseBody struct {
	Status string `json:"status"`
}

// UpdateSettings godoc
// @Summary      Save vault settings
// @Description  Starts the save workflow for a vault's allocations and targets and returns immediately
// @Accept       json
// @Produce      json
// @Tags         Vault
// @Param        settings  body      VaultSettingsRequestBody  true  "Vault settings"
// @Success      202       {object}  VaultSettingsResponseBody
// @Failure      400       {object}  responses.ErrorResponse
// @Security     OAuth2Password
// @Router       /v2/vaults/{vault_id}/settings [put]
func (controller *VaultController) UpdateSettings(c echo.Context) error {
	var body VaultSettingsRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load vault settings request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid vault settings request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Vault.ID == "" {
		body.Vault.ID = c.Param("vault_id")
	}
	if body.Vault.ID != c.Param("vault_id") {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	edit := service.VaultEdit{
		Nickname:    body.Nickname,
		Reserve:     body.Reserve,
		Hold:        body.Hold,
		ReserveType: body.ReserveType,
		HoldType:    body.HoldType,
		SavingsRate: body.SavingsRate,
		IncomeDSCR:  body.IncomeDSCR,
		GrowthDSCR:  body.GrowthDSCR,
	}

	// the save continues in the background, the edit surface closes now
	controller.svc.StartVaultSave(bankToken(c), bankRef(c), body.Vault, edit)

	return c.JSON(http.StatusAccepted, &VaultSettingsResponseBody{Status: "saving"})
}

// Preview godoc
// @Summary      Preview vault availability
// @Description  Recomputes credit limit, resolved allocations and available-to-lend for draft values without persisting anything
// @Accept       json
// @Produce      json
// @Tags         Vault
// @Param        settings  body      VaultSettingsRequestBody  true  "Draft values"
// @Success      200       {object}  service.TelemetrySnapshot
// @Failure      400       {object}  responses.ErrorResponse
// @Security     OAuth2Password
// @Router       /v2/vaults/preview [post]
func (controller *VaultController) Preview(c echo.Context) error {
	var body VaultSettingsRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load vault preview request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid vault preview request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	edit := service.VaultEdit{
		Reserve:     body.Reserve,
		Hold:        body.Hold,
		ReserveType: body.ReserveType,
		HoldType:    body.HoldType,
	}

	return c.JSON(http.StatusOK, service.DebugSnapshot(&body.Vault, edit))
}

// GetVault godoc
// @Summary      Fetch a vault
// @Description  Reads the vault record from the core banking API to bootstrap the edit surface
// @Produce      json
// @Tags         Vault
// @Param        vault_id  path      string  true  "Vault ID"
// @Success      200       {object}  bank.Vault
// @Failure      502       {object}  responses.ErrorResponse
// @Security     OAuth2Password
// @Router       /v2/vaults/{vault_id} [get]
func (controller *VaultController) GetVault(c echo.Context) error {
	vault, err := controller.svc.BankClient.GetVault(c.Request().Context(), bankToken(c), bankRef(c), c.Param("vault_id"))
	if err != nil {
		c.Logger().Errorf("Failed to fetch vault %s: %v", c.Param("vault_id"), err)
		return c.JSON(http.StatusBadGateway, responses.BankUnavailableError)
	}
	return c.JSON(http.StatusOK, vault)
}

func bankToken(c echo.Context) string {
	if token, ok := c.Get("BankToken").(string); ok {
		return token
	}
	return ""
}

func bankRef(c echo.Context) string {
	if ref, ok := c.Get("BankRef").(string); ok {
		return ref
	}
	return ""
}
