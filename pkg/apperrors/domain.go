package apperrors

import (
	"net/http"
)

// Factories for wrapping repository-level errors.

// ErrNotFound converts a lookup miss (e.g. gorm.ErrRecordNotFound) to 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate-row error to 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation is the general 400 factory for business-rule violations.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Predefined errors for frequent static cases.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Subscription gate ---

// ErrSubscriptionRequired means the employer has never held a subscription.
var ErrSubscriptionRequired = New(
	CodeSubscriptionRequired,
	"subscription",
	"An active subscription is required for this action",
	http.StatusForbidden,
)

// ErrSubscriptionExpired means a subscription exists but is no longer active.
var ErrSubscriptionExpired = New(
	CodeSubscriptionExpired,
	"subscription",
	"Your subscription has expired",
	http.StatusForbidden,
)

// ErrReadOnlyMode is returned for message/interview actions of a lapsed
// subscriber: existing data stays viewable, new writes are blocked.
var ErrReadOnlyMode = New(
	CodeReadOnlyMode,
	"subscription",
	"Subscription expired: account is in read-only mode",
	http.StatusForbidden,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Payments ---

var ErrProviderNotImplemented = New(
	CodeProviderNotImplemented,
	"payment",
	"This payment provider is not yet integrated",
	http.StatusNotImplemented,
)

var ErrInvalidWebhookSignature = New(
	CodeExternalServiceError,
	"payment",
	"Webhook signature verification failed",
	http.StatusBadRequest,
)

var ErrPaymentProvider = New(
	CodeExternalServiceError,
	"payment",
	"Payment provider error",
	http.StatusServiceUnavailable,
)

// --- Chat ---

var ErrChatAccessDenied = New(
	CodeForbidden,
	"chat",
	"Access to chat denied",
	http.StatusForbidden,
)

// --- Profiles ---

var ErrProfileHidden = New(
	CodeForbidden,
	"profile",
	"This profile is private",
	http.StatusForbidden,
)
