// Package requestid assigns every request a correlation ID. Inbound IDs
// from trusted proxies are reused so traces line up across services.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"idverify/pkg/requestcontext"
)

// Header carries the correlation ID on both requests and responses.
const Header = "X-Request-ID"

// Middleware stores the request ID in the context and echoes it on the
// response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
