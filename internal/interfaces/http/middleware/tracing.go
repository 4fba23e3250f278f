// Package middleware provides HTTP middleware for the parking backend.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// MaxRequestIDLength caps request IDs recorded on spans.
const MaxRequestIDLength = 128

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
}

// Tracing returns OpenTelemetry tracing middleware.
// The span name follows the format "HTTP METHOD route_pattern"
// (e.g., "GET /api/v1/facilities/:id/invoices").
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	baseMiddleware := otelgin.Middleware(cfg.ServiceName)

	return func(c *gin.Context) {
		baseMiddleware(c)

		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			if requestID := spanRequestID(c); requestID != "" {
				span.SetAttributes(attribute.String("request_id", requestID))
			}
		}
	}
}

func spanRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok && id != "" {
			return id
		}
	}

	headerID := c.GetHeader("X-Request-ID")
	if len(headerID) > MaxRequestIDLength {
		return headerID[:MaxRequestIDLength]
	}
	return headerID
}

// SpanErrorMarker returns a middleware that marks spans with error status
// for HTTP error responses (4xx/5xx).
// This should be placed AFTER the Tracing middleware in the middleware chain.
func SpanErrorMarker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}

		statusCode := c.Writer.Status()
		if statusCode >= http.StatusBadRequest {
			var errorMessage string
			switch {
			case statusCode >= http.StatusInternalServerError:
				errorMessage = "Internal Server Error"
			case statusCode == http.StatusNotFound:
				errorMessage = "Not Found"
			default:
				errorMessage = "Client Error"
			}

			span.SetStatus(codes.Error, errorMessage)
			span.SetAttributes(attribute.Int("http.status_code", statusCode))
		}
	}
}
