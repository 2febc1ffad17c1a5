package middleware

import (
	"net/http"

	"servizo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const sessionKey = "session"

// SessionMiddleware resolves the session cookie into a utils.Session and
// places it on the request context. A missing or expired session simply
// leaves the context empty; RequireSession decides what happens then.
func SessionMiddleware(sessions *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(utils.SessionCookieName)
		if err != nil || sid == "" {
			c.Next()
			return
		}
		sess, err := utils.GetSession(sessions, sid)
		if err != nil {
			if err != redis.Nil {
				utils.GetLogger().Warn("session lookup failed", zap.Error(err))
			}
			c.Next()
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireSession redirects signed-out visitors to the auth view.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session placed on the context by
// SessionMiddleware.
func CurrentSession(c *gin.Context) (*utils.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*utils.Session)
	return sess, ok
}

// SetSession is for tests and internal use: it stores a session on the
// context the same way SessionMiddleware does.
func SetSession(c *gin.Context, sess *utils.Session) {
	c.Set(sessionKey, sess)
}
