package apperrors

import (
	"net/http"
)

/*
Predefined domain errors and factories for the matchmaking core.
Services return these; handlers map them to HTTP via HandleError.
*/

// ErrNotFound converts a repository not-found (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags an operation the current state does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Swipe ledger ---

// ErrInvalidSwipeDirection: direction outside {like, pass}. Caller-correctable,
// never retried automatically.
var ErrInvalidSwipeDirection = New(
	CodeValidationFailed,
	"swipe",
	"Swipe direction must be 'like' or 'pass'",
	http.StatusBadRequest,
)

// ErrNotSwipeParticipant: the authenticated actor is neither the family nor
// the caregiver of the triple being swiped.
var ErrNotSwipeParticipant = New(
	CodeForbidden,
	"swipe",
	"Only the family or the caregiver of this pair may record a swipe",
	http.StatusForbidden,
)

// ErrSwipeNotFound: match evaluation was invoked without a preceding
// recorded like. Defensive check.
var ErrSwipeNotFound = New(
	CodeNotFound,
	"match",
	"No recorded like exists for this pair",
	http.StatusNotFound,
)

// ErrDuplicateMatch: storage uniqueness violated despite the pre-check.
// Recovered internally by re-fetching the existing match; callers should not
// see this as a failure.
var ErrDuplicateMatch = New(
	CodeConflict,
	"match",
	"A match already exists for this pair",
	http.StatusConflict,
)

// --- Candidate feed ---

// ErrMissingJobContext: a family with zero job posts cannot browse
// caregivers, since any resulting swipe needs a job to attach to.
var ErrMissingJobContext = New(
	CodeInvalidOperation,
	"feed",
	"Create a job post before browsing caregivers",
	http.StatusBadRequest,
)

// --- Job posts ---

var ErrJobPostNotFound = New(
	CodeNotFound,
	"job",
	"Job post not found",
	http.StatusNotFound,
)

var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"Only the posting family may modify this job",
	http.StatusForbidden,
)

// --- Auth & users ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Reviews ---

var ErrReviewNotFound = New(
	CodeNotFound,
	"review",
	"Review not found",
	http.StatusNotFound,
)

var ErrSelfReviewNotAllowed = New(
	CodeInvalidOperation,
	"review",
	"Reviewing yourself is not allowed",
	http.StatusBadRequest,
)
