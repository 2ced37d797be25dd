package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidName         = 4004
	CodeUserNotFound        = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a user's cash balance cannot cover a purchase
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when a purchase amount is zero, negative or malformed
	ErrInvalidAmount = errors.New("amount must be greater than 0")

	// ErrNegativeAmount is returned when a monetary value is negative where it must not be
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidName is returned when a user name is empty or blank
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrInvalidRate is returned when the configured gold rate is not positive
	ErrInvalidRate = errors.New("gold rate must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidName):
		return CodeInvalidName
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance.
// The available balance is part of the message surfaced to the client.
type InsufficientBalanceError struct {
	UserID       uint64
	RequestedINR string
	AvailableINR string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("Insufficient balance. Available: %s", e.AvailableINR)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "insufficient_balance",
		"user_id":       e.UserID,
		"requested_inr": e.RequestedINR,
		"available_inr": e.AvailableINR,
		"error_code":    CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, requestedINR, availableINR string) error {
	return &InsufficientBalanceError{
		UserID:       userID,
		RequestedINR: requestedINR,
		AvailableINR: availableINR,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsInvalidAmountError checks if the error is related to a bad monetary amount
func IsInvalidAmountError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrNegativeAmount)
}
