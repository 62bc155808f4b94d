package constants

// Field limits, mirrored by the struct tags on service.OpenAccountInput.
const (
	MaxNameLen       = 100
	MaxContactLen    = 32
	MaxNationalIDLen = 20
)

const (
	DefaultCurrency = "ETB"
	DefaultBankName = "Ethiopian Bank"
)

// Account categories offered by the open-account form.
var Categories = []string{"Savings", "Current", "Fixed Deposit"}
