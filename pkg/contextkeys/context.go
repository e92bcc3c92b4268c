package contextkeys

// Custom key type to avoid collisions with other context values.
type contextKey string

// DBContextKey holds the *gorm.DB (pool or transaction) in a request context.
const DBContextKey = contextKey("db")
