// Package businessflow contains the core business logic and use cases for back-office workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Auth-related errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session has expired")

	// Customer-related errors
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrNationalIDInvalid       = errors.New("national id must be exactly 11 digits")
	ErrNationalIDAlreadyExists = errors.New("national id already exists")

	// Agent-related errors
	ErrAgentNotFound = errors.New("sales agent not found")
	ErrAgentInactive = errors.New("sales agent is inactive")

	// Policy-related errors
	ErrPolicyNotFound            = errors.New("policy not found")
	ErrPolicyNumberAlreadyExists = errors.New("policy number already exists")
	ErrPremiumInvalid            = errors.New("premium must be greater than zero")
	ErrEndDateBeforeStartDate    = errors.New("end date cannot be before start date")

	// Window / filter errors
	ErrStartDateAfterEndDate = errors.New("start date cannot be after end date")
	ErrInvalidLookaheadDays  = errors.New("lookahead days must be one of 30, 60, 90, 180")
	ErrInvalidPage           = errors.New("page must be at least 1")
	ErrInvalidPageSize       = errors.New("page size must be between 1 and 100")

	// Cache errors
	ErrCacheNotAvailable = errors.New("cache not available")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsSessionNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound)
}

func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

func IsCustomerNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound)
}

func IsNationalIDInvalid(err error) bool {
	return errors.Is(err, ErrNationalIDInvalid)
}

func IsNationalIDAlreadyExists(err error) bool {
	return errors.Is(err, ErrNationalIDAlreadyExists)
}

func IsAgentNotFound(err error) bool {
	return errors.Is(err, ErrAgentNotFound)
}

func IsAgentInactive(err error) bool {
	return errors.Is(err, ErrAgentInactive)
}

func IsPolicyNotFound(err error) bool {
	return errors.Is(err, ErrPolicyNotFound)
}

func IsPolicyNumberAlreadyExists(err error) bool {
	return errors.Is(err, ErrPolicyNumberAlreadyExists)
}

func IsPremiumInvalid(err error) bool {
	return errors.Is(err, ErrPremiumInvalid)
}

func IsEndDateBeforeStartDate(err error) bool {
	return errors.Is(err, ErrEndDateBeforeStartDate)
}

func IsStartDateAfterEndDate(err error) bool {
	return errors.Is(err, ErrStartDateAfterEndDate)
}

func IsInvalidLookaheadDays(err error) bool {
	return errors.Is(err, ErrInvalidLookaheadDays)
}

func IsInvalidPage(err error) bool {
	return errors.Is(err, ErrInvalidPage)
}

func IsInvalidPageSize(err error) bool {
	return errors.Is(err, ErrInvalidPageSize)
}

func IsCacheNotAvailable(err error) bool {
	return errors.Is(err, ErrCacheNotAvailable)
}
