// File: servizo/handlers/booking.go
package handlers

import (
	"net/http"

	"servizo/forms"
	"servizo/middleware"
	"servizo/models"
	"servizo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bookingForm carries posted values back into the booking template on error.
type bookingForm struct {
	Date    string
	Time    string
	Message string
}

func (h *HandlerBundle) renderBookingForm(c *gin.Context, svc *models.Service, form bookingForm, errMsg string) {
	sess, _ := middleware.CurrentSession(c)
	c.HTML(http.StatusOK, "booking_form.html", gin.H{
		"User":    sess.User,
		"Service": svc,
		"Form":    form,
		"Error":   errMsg,
	})
}

// NewBooking renders the booking form for one service, questionnaire
// included. The service is fetched fresh; nothing is cached between views.
func (h *HandlerBundle) NewBooking(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Warn("booking form: service fetch failed", zap.String("id", id), zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.renderBookingForm(c, svc, bookingForm{}, "")
}

// CreateBooking assembles the payload and submits it. Answers are collected
// per question id and flattened in declaration order; the redirect doubles as
// the duplicate-submission guard and lands on the bookings tab, which
// re-fetches both collections.
func (h *HandlerBundle) CreateBooking(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	serviceID := c.PostForm("service_id")
	svc, err := h.Catalog.Get(c.Request.Context(), serviceID)
	if err != nil {
		utils.GetLogger().Warn("create booking: service fetch failed", zap.String("id", serviceID), zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	values := forms.AnswerValues{}
	for _, q := range svc.Questions {
		if v, ok := c.GetPostForm("answer_" + q.ID); ok && v != "" {
			values[q.ID] = v
		}
	}

	form := bookingForm{
		Date:    c.PostForm("date"),
		Time:    c.PostForm("time"),
		Message: c.PostForm("message"),
	}

	draft, err := forms.BuildBookingDraft(*svc, form.Date, form.Time, form.Message, values)
	if err != nil {
		h.renderBookingForm(c, svc, form, err.Error())
		return
	}
	if _, err := h.Bookings.Submit(c.Request.Context(), sess.Token, draft); err != nil {
		h.renderBookingForm(c, svc, form, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard?tab=bookings&notice=booking_sent")
}

// RespondBooking records the provider's accept/decline decision, then lands
// back on the bookings tab so the refreshed list shows the backend's status.
func (h *HandlerBundle) RespondBooking(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	id := c.Param("id")
	status := c.PostForm("status")

	if _, err := h.Bookings.Respond(c.Request.Context(), sess.Token, id, status); err != nil {
		utils.GetLogger().Error("booking response failed", zap.String("id", id), zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/dashboard?tab=bookings")
}
