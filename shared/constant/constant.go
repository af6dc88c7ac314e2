package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyOperator  contextKey = "operator"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	DateFormat     = "02/01/2006"
	DateTimeFormat = "02/01/2006 15:04:05"
	PriceFormat    = "%.2f"
)

const (
	MaxGuestAgeYears = 120
	NationalIDLength = 11
	DaysPerYear      = 365
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelConsoleScopeName    = "console"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
	Space = " "
)
