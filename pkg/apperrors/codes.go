package apperrors

// ErrorCode is a short machine-readable error identifier returned to clients.
type ErrorCode string

const (
	// System and unclassified errors.
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Generic business-logic codes used by the factories.
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication and authorization.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"

	// Subscription gate signals. Clients branch on these to render the
	// paywall versus the read-only banner.
	CodeSubscriptionRequired ErrorCode = "SUBSCRIPTION_REQUIRED"
	CodeSubscriptionExpired  ErrorCode = "SUBSCRIPTION_EXPIRED"
	CodeReadOnlyMode         ErrorCode = "READ_ONLY_MODE"

	// Payments.
	CodeProviderNotImplemented ErrorCode = "PROVIDER_NOT_IMPLEMENTED"
)
