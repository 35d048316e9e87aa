// Package middlewarectx содержит HTTP middleware платёжного сервиса.
package middlewarectx

import (
	"net/http"

	"go.opentelemetry.io/otel/propagation"
)

var propagator = propagation.NewCompositeTextMapPropagator(
	propagation.TraceContext{},
	propagation.Baggage{},
)

// Propagation переносит заголовки traceparent и baggage (W3C) в контекст запроса.
// Некорректный заголовок игнорируется.
func Propagation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
