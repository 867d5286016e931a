package contextkeys

// Dedicated key type so values this application stores on a context
// cannot collide with keys set by other packages.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB handle
// (pool or transaction) is stored by middleware.DBMiddleware.
const DBContextKey = contextKey("db")
