package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	nrpkg "github.com/ridelink/dispatch/internal/pkg/newrelic"
	"github.com/ridelink/dispatch/internal/utils"
)

// PanicRecoveryWithZapMiddleware creates a middleware that recovers from
// panics, logs them with a stack trace, and reports them to New Relic
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	userID := "anonymous"
	if uid := c.Get("user_id"); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	requestID := c.Response().Header().Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
	}

	zapLogger.WithFields(map[string]interface{}{
		"panic_value": r,
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": stackTrace,
		"method":      c.Request().Method,
		"path":        c.Request().URL.Path,
		"client_ip":   c.RealIP(),
		"user_id":     userID,
		"request_id":  requestID,
		"component":   "panic_recovery",
	}).Error("Panic recovered")

	if txn := nrpkg.FromEchoContext(c); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("panic: %v", r),
			Class:   "Panic",
			Attributes: map[string]interface{}{
				"request_id": requestID,
				"path":       c.Request().URL.Path,
			},
		})
	}

	if !c.Response().Committed {
		_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}
