package models

type UserStatus string
type UserRole string
type JobStatus string
type SwipeDirection string
type SwipeSide string
type ReviewStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleFamily    UserRole = "family"
	UserRoleCaregiver UserRole = "caregiver"
	UserRoleAdmin     UserRole = "admin"

	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	SwipeDirectionLike SwipeDirection = "like"
	SwipeDirectionPass SwipeDirection = "pass"

	// SwipeSide records which party's decision a ledger row represents.
	SwipeSideFamily    SwipeSide = "family"
	SwipeSideCaregiver SwipeSide = "caregiver"

	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// ValidSwipeDirection reports whether d is inside the direction enum.
func ValidSwipeDirection(d SwipeDirection) bool {
	return d == SwipeDirectionLike || d == SwipeDirectionPass
}
