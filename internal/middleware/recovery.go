package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"eso-store-web/pkg/apierror"
)

// Recovery is a middleware that recovers from panics. JSON action routes get
// the error envelope, page routes a plain 500.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("PANIC: %v\n%s", err, debug.Stack())

				if strings.HasPrefix(r.URL.Path, "/api/") {
					writeError(w, apierror.InternalError("internal server error"))
					return
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
