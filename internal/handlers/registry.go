package handlers

import (
	"careswipe_backend/internal/services"
	"careswipe_backend/internal/validator"
)

// AppHandlers collects every HTTP handler the router mounts.
type AppHandlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Swipe   *SwipeHandler
	Feed    *FeedHandler
	Job     *JobHandler
	Review  *ReviewHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	return &AppHandlers{
		Auth:    NewAuthHandler(sc.AuthService, v),
		Profile: NewProfileHandler(sc.ProfileService, v),
		Swipe:   NewSwipeHandler(sc.SwipeService, v),
		Feed:    NewFeedHandler(sc.FeedService, v),
		Job:     NewJobHandler(sc.JobService, v),
		Review:  NewReviewHandler(sc.ReviewService, v),
	}
}
