package common

const (
	VaultTypeCash  = "cash vault"
	VaultTypeSuper = "super vault"

	// Gateways always present this nickname, whatever the user typed.
	GatewayNickname = "Gateway"

	AccountTypeSavings      = "Savings"
	AccountTypeCash         = "Cash"
	AccountTypeLineOfCredit = "Line of Credit"

	AllocationTypeAmount     = "amount"
	AllocationTypePercentage = "percentage"

	SaveStatusSettled = "settled"
	SaveStatusPartial = "partial"
	SaveStatusError   = "error"
	SaveStatusAborted = "aborted"
)
