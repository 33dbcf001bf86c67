package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/foodcart/internal/service"
	"github.com/rs/zerolog"
)

const (
	// SessionHeader carries the cart session id in both directions.
	SessionHeader   = "X-Session-ID"
	RequestIDHeader = "X-Request-ID"

	loggerKey  = "logger"
	cartKey    = "cart"
	sessionKey = "session_id"
)

// RequestLogger attaches a request-scoped logger and logs every completed request.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		log := base.With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()
		c.Set(loggerKey, log)

		c.Next()

		status := c.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int("body_size", c.Writer.Size()).
			Msg("request completed")
	}
}

// Session resolves the caller's cart from the session header, starting a new
// session when the header is missing or unknown. Only routes that put
// something into the cart use it.
func Session(sessions *service.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, cart := sessions.Open(c.GetHeader(SessionHeader))
		setSession(c, id, cart)

		c.Next()
	}
}

// LookupSession resolves an existing session and never creates one. Handlers
// behind it see no cart when the session is missing or unknown.
func LookupSession(sessions *service.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if cart, ok := sessions.Get(id); ok {
			setSession(c, id, cart)
		}

		c.Next()
	}
}

func setSession(c *gin.Context, id string, cart *service.CartService) {
	c.Header(SessionHeader, id)
	c.Set(sessionKey, id)
	c.Set(cartKey, cart)
}

func loggerFrom(c *gin.Context) zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(zerolog.Logger); ok {
			return log
		}
	}
	return zerolog.Nop()
}

// cartFrom returns a nil cart when the request carries no known session.
func cartFrom(c *gin.Context) (string, *service.CartService) {
	v, ok := c.Get(cartKey)
	if !ok {
		return "", nil
	}
	cart, _ := v.(*service.CartService)
	return c.GetString(sessionKey), cart
}
