package domain

import "errors"

// Authentication errors. ErrInvalidCredentials deliberately covers unknown
// email, wrong password and non-ACTIVE accounts alike, so a caller cannot
// enumerate accounts by probing the login endpoint.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTimeout            = errors.New("credential store timeout")
	ErrStoreUnavailable   = errors.New("credential store unavailable")
)

// User management errors. ErrUserNotFound never leaks through the login
// path; the auth service folds it into ErrInvalidCredentials.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
	ErrForbidden    = errors.New("access forbidden")
)

// Resource errors for the dashboard collections.
var (
	ErrApartmentNotFound   = errors.New("apartment not found")
	ErrBillNotFound        = errors.New("bill not found")
	ErrMaintenanceNotFound = errors.New("maintenance request not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrVoteNotFound        = errors.New("vote not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// Voting errors. One ballot per voter; ballots must name one of the vote's
// options while it is still open.
var (
	ErrAlreadyVoted  = errors.New("ballot already cast")
	ErrInvalidBallot = errors.New("ballot does not match a vote option")
)
