package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "pos/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestIDResult struct {
	header    string
	echoID    string
	contextID string
	logLine   map[string]any
}

func serveWithRequestID(t *testing.T, incoming string) requestIDResult {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	if incoming != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, incoming)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var result requestIDResult
	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		result.echoID = deliverycontext.GetRequestID(c)
		result.contextID = deliverycontext.GetRequestIDFromContext(ctx)
		deliverycontext.GetLoggerOrDefault(ctx, nil).InfoContext(ctx, "handled")

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	result.header = rec.Header().Get(deliverycontext.HeaderXRequestID)
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result.logLine))

	return result
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	result := serveWithRequestID(t, "client-req-42")

	assert.Equal(t, "client-req-42", result.header)
	assert.Equal(t, "client-req-42", result.echoID)
	assert.Equal(t, "client-req-42", result.contextID)
	assert.Equal(t, "client-req-42", result.logLine["request_id"])
	assert.Equal(t, http.MethodGet, result.logLine["method"])
	assert.Equal(t, "/categories", result.logLine["path"])
}

func TestRequestIDMiddleware_GeneratesWhenMissingOrUnsafe(t *testing.T) {
	cases := map[string]string{
		"missing":    "",
		"too long":   strings.Repeat("x", MaxRequestIDLength+1),
		"whitespace": "abc def",
		"control":    "abc\x01def",
		"non-ascii":  "pedido-ñ",
	}

	for name, incoming := range cases {
		t.Run(name, func(t *testing.T) {
			result := serveWithRequestID(t, incoming)

			_, err := uuid.Parse(result.header)
			require.NoError(t, err)
			assert.NotEqual(t, incoming, result.header)
			assert.Equal(t, result.header, result.contextID)
			assert.Equal(t, result.header, result.logLine["request_id"])
		})
	}
}

func TestRequestIDMiddleware_AcceptsMaxLength(t *testing.T) {
	incoming := strings.Repeat("a", MaxRequestIDLength)

	result := serveWithRequestID(t, incoming)

	assert.Equal(t, incoming, result.header)
}
