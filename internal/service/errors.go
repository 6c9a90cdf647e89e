// Package service implements the business logic on top of the
// repositories and the pure derivation engine.
package service

import "errors"

// Sentinel errors returned by services. Handlers map these to HTTP
// status codes.
var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrContactNotFound      = errors.New("contact not found")
	ErrQuotationNotFound    = errors.New("quotation not found")
	ErrContractNotFound     = errors.New("contract not found")
	ErrStudyNotFound        = errors.New("study not found")
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrInvalidDate          = errors.New("invalid date")
	ErrUnknownExportEntity  = errors.New("unknown export entity")
)
