package middleware

import (
	"log/slog"

	deliverycontext "pos/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MaxRequestIDLength caps client supplied request IDs echoed in headers and logs.
const MaxRequestIDLength = 128

// RequestIDMiddleware assigns every request an ID and a logger scoped to it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed client X-Request-Id or generates a UUID, then
// exposes the ID and the scoped logger to handlers and services.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		// Client IDs are kept only when safe to echo back
		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)

		// Services read both values from context.Context
		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// validRequestID accepts 1 to MaxRequestIDLength visible ASCII characters.
func validRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}

	return true
}
