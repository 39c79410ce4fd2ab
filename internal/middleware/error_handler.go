package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/lysate-impact/internal/domain/dto"
	"github.com/guttosm/lysate-impact/internal/domain/model"
	"github.com/guttosm/lysate-impact/internal/i18n"
	"github.com/guttosm/lysate-impact/internal/logger"
)

// ErrorHandler returns a middleware that logs gin context errors and writes a
// 500 envelope if the handler recorded an error without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		event := logger.Logger().Warn()
		if c.Writer.Status() >= http.StatusInternalServerError || !c.Writer.Written() {
			event = logger.Logger().Error()
		}
		event.
			Str("request_id", GetRequestID(c)).
			Str("error", err.Error()).
			Str("kind", model.KindOf(err.Err).String()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(GetRequestID(c)))
		}
	}
}
