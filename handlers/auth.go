// File: servizo/handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"servizo/locations"
	"servizo/middleware"
	"servizo/models"
	"servizo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// authForm carries posted values back into the auth template on failure.
type authForm struct {
	Name     string
	Email    string
	Country  string
	Province string
}

// ShowAuth renders the login/signup view; mode toggles via the query string.
// Signed-in visitors go straight to the dashboard.
func (h *HandlerBundle) ShowAuth(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	mode := c.DefaultQuery("mode", "login")
	if mode != "signup" {
		mode = "login"
	}
	h.renderAuth(c, mode, "", authForm{Country: "Philippines"})
}

func (h *HandlerBundle) renderAuth(c *gin.Context, mode, errMsg string, form authForm) {
	c.HTML(http.StatusOK, "auth.html", gin.H{
		"Mode":      mode,
		"Error":     errMsg,
		"Form":      form,
		"Countries": locations.Countries,
		"Provinces": locations.ProvincesFor(form.Country),
		"User":      nil,
	})
}

// Login authenticates against the backend and opens a session. Failures
// re-render the form with the backend's message inline.
func (h *HandlerBundle) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	sess, err := h.Account.Login(c.Request.Context(), email, password)
	if err != nil {
		h.renderAuth(c, "login", err.Error(), authForm{Email: email, Country: "Philippines"})
		return
	}
	setSessionCookie(c, sess.ID)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Signup registers an account and signs the new user in directly.
func (h *HandlerBundle) Signup(c *gin.Context) {
	req := models.SignupRequest{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
		Country:  c.PostForm("country"),
		Province: c.PostForm("province"),
	}

	sess, err := h.Account.Signup(c.Request.Context(), req)
	if err != nil {
		h.renderAuth(c, "signup", err.Error(), authForm{
			Name:     req.Name,
			Email:    req.Email,
			Country:  req.Country,
			Province: req.Province,
		})
		return
	}
	setSessionCookie(c, sess.ID)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout closes the session and clears the cookie.
func (h *HandlerBundle) Logout(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		if err := h.Account.Logout(c.Request.Context(), sess.ID); err != nil {
			utils.GetLogger().Warn("logout: session delete failed", zap.Error(err))
		}
	}
	clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
