// File: servizo/handlers/dashboard.go
package handlers

import (
	"net/http"

	"servizo/locations"
	"servizo/middleware"
	"servizo/models"
	"servizo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dashboard renders the tabbed main view. The browse filter set lives in the
// query string, so every filter change maps to exactly one catalog fetch with
// the latest values.
func (h *HandlerBundle) Dashboard(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	logger := utils.GetLogger()

	// Best-effort user refresh; a stale cached user is acceptable here.
	if err := h.Account.RefreshUser(c.Request.Context(), sess); err != nil {
		logger.Warn("dashboard: user refresh failed", zap.Error(err))
	}

	tab := c.DefaultQuery("tab", "browse")
	if tab != "create" && tab != "bookings" {
		tab = "browse"
	}
	// The create tab only exists in provider mode.
	if tab == "create" && !sess.User.ProviderMode {
		tab = "browse"
	}

	data := gin.H{
		"User":   sess.User,
		"Tab":    tab,
		"Notice": noticeText(c.Query("notice")),
	}

	switch tab {
	case "create":
		data["Form"] = newServiceForm()
		data["Action"] = "/services"
		data["Provinces"] = locations.PHProvinces
	case "bookings":
		cols, err := h.Bookings.Refresh(c.Request.Context(), sess.Token)
		if err != nil {
			// Stale or empty lists stay visible; the failure is only logged.
			logger.Error("dashboard: bookings refresh failed", zap.Error(err))
		}
		data["CustomerBookings"] = cols.Customer
		data["ProviderBookings"] = cols.Provider
	default:
		filter := models.ServiceFilter{
			Query:    c.Query("q"),
			Country:  c.Query("country"),
			Province: c.Query("province"),
			Category: c.Query("category"),
		}
		services, err := h.Catalog.List(c.Request.Context(), filter)
		if err != nil {
			logger.Error("dashboard: service list fetch failed", zap.Error(err))
		}
		data["Filter"] = filter
		data["Services"] = services
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}

// ToggleProviderMode flips provider mode and returns to the dashboard. A
// failed call is logged and the toggle stays where it was.
func (h *HandlerBundle) ToggleProviderMode(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	enabled := c.PostForm("enabled") == "true" || c.PostForm("enabled") == "on"

	if err := h.Account.SetProviderMode(c.Request.Context(), sess, enabled); err != nil {
		utils.GetLogger().Warn("provider mode toggle failed", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
