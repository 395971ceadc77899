package middleware

import (
	"context"
	"net/http"

	"github.com/rpattn/hrapi/internal/entityloader"
)

type ctxKey string

const jobTaskLoaderKey ctxKey = "jobTaskLoader"

// DataLoaderMiddleware attaches a fresh job task loader to each request so
// batching and caching never span requests.
func DataLoaderMiddleware(source entityloader.TaskSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loader := entityloader.NewJobTaskLoader(source)
			ctx := context.WithValue(r.Context(), jobTaskLoaderKey, loader)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// JobTaskLoaderFromContext retrieves the loader from context
func JobTaskLoaderFromContext(ctx context.Context) *entityloader.JobTaskLoader {
	if l, ok := ctx.Value(jobTaskLoaderKey).(*entityloader.JobTaskLoader); ok {
		return l
	}
	return nil
}
