package services

// ServiceContainer holds every service the application wires up.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	SwipeService   SwipeService
	FeedService    FeedService
	JobService     JobService
	ReviewService  ReviewService
}
