package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shandysiswandi/gofareagent/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gofareagent/internal/pkg/pkguid"
)

// Handler is the shape every endpoint implements: decode from the request,
// return a JSON-serializable value or an error. The router owns the
// response envelope.
type Handler func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	mux *http.ServeMux
	uid pkguid.StringID
}

func NewRouter(uid pkguid.StringID) *Router {
	return &Router{mux: http.NewServeMux(), uid: uid}
}

func (rt *Router) GET(path string, h Handler) {
	rt.mux.Handle("GET "+path, rt.wrap(h))
}

func (rt *Router) POST(path string, h Handler) {
	rt.mux.Handle("POST "+path, rt.wrap(h))
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

type ctxKey struct{}

// RequestID returns the id the router assigned to this request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

func (rt *Router) wrap(h Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := rt.uid.Generate()
		ctx := context.WithValue(r.Context(), ctxKey{}, requestID)

		result, err := h(ctx, r)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-Id", requestID)

		if err != nil {
			status := pkgerror.HTTPStatus(err)
			slog.ErrorContext(ctx, "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"request_id", requestID,
				"error", err,
			)
			w.WriteHeader(status)
			//nolint:errcheck // response is already committed
			json.NewEncoder(w).Encode(errorBody{
				Error:     pkgerror.UserMessage(err),
				RequestID: requestID,
			})
			return
		}

		slog.InfoContext(ctx, "request served",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
		//nolint:errcheck // response is already committed
		json.NewEncoder(w).Encode(result)
	})
}
