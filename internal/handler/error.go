package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jpariona/ulima-campus-api/internal/apperror"
	"github.com/jpariona/ulima-campus-api/internal/metrics"
	"github.com/jpariona/ulima-campus-api/internal/observability"
)

// NewHTTPErrorHandler builds the central echo error handler. Every handler
// and middleware funnels failures here; it is the only place that shapes
// error responses.
//
// Recognized *apperror.Error values pass their status and message through
// verbatim. Echo's own HTTP errors (unmatched route, method not allowed,
// malformed body) keep their status. Everything else is an unclassified
// internal failure: logged with full detail, reported to Sentry, and exposed
// to the caller as a generic message when running in production.
func NewHTTPErrorHandler(log *zap.Logger, isProd bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			_ = c.JSON(appErr.Status, failure{Success: false, Message: appErr.Message})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			msg := "Solicitud inválida"
			switch httpErr.Code {
			case http.StatusNotFound:
				msg = "Ruta no encontrada"
			case http.StatusMethodNotAllowed:
				msg = "Método no permitido"
			}
			_ = c.JSON(httpErr.Code, failure{Success: false, Message: msg})
			return
		}

		metrics.HandlerErrors.Inc()
		observability.CaptureErr(err)
		log.Error("unhandled error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
		)

		msg := "Error interno del servidor"
		if !isProd {
			msg = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, failure{Success: false, Message: msg})
	}
}
