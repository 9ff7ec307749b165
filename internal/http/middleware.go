package router

import (
	"log"
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every response with a request id, minting one when the
// caller did not send its own, and logs the request line under that id.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		log.Printf("%s %s request_id=%s", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}
