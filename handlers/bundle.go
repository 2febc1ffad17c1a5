// File: servizo/handlers/bundle.go
package handlers

import (
	"strconv"
	"strings"

	"servizo/config"
	"servizo/forms"
	"servizo/models"
	"servizo/services/account"
	"servizo/services/bookings"
	"servizo/services/catalog"
	"servizo/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle wires the view handlers with their services.
type HandlerBundle struct {
	Account  account.AccountService
	Catalog  catalog.CatalogService
	Bookings bookings.BookingService
}

func setSessionCookie(c *gin.Context, sessionID string) {
	maxAge := int(config.SessionTTL().Seconds())
	c.SetCookie(utils.SessionCookieName, sessionID, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)
}

// noticeText maps redirect notice codes to their banner message.
func noticeText(code string) string {
	switch code {
	case "service_created":
		return "Service created!"
	case "service_updated":
		return "Service updated!"
	case "service_deleted":
		return "Service deleted."
	case "booking_sent":
		return "Booking sent!"
	}
	return ""
}

// questionRow is one question builder row, existing or blank.
type questionRow struct {
	ID       string
	Text     string
	Type     string
	Required bool
}

// serviceForm carries the service form state into the template, with blank
// builder rows appended so the provider can add questions without scripting.
type serviceForm struct {
	Name        string
	Category    string
	Price       string
	Country     string
	Province    string
	Description string
	Photos      string
	Videos      string
	Questions   []questionRow
}

const blankQuestionRows = 3

func withBlankRows(existing []questionRow) []questionRow {
	rows := append([]questionRow{}, existing...)
	for i := 0; i < blankQuestionRows; i++ {
		rows = append(rows, questionRow{Type: models.QuestionText, Required: true})
	}
	return rows
}

func newServiceForm() serviceForm {
	return serviceForm{Questions: withBlankRows(nil)}
}

func serviceFormFromService(svc *models.Service) serviceForm {
	rows := make([]questionRow, 0, len(svc.Questions))
	for _, q := range svc.Questions {
		rows = append(rows, questionRow{ID: q.ID, Text: q.Text, Type: q.Type, Required: q.Required})
	}
	return serviceForm{
		Name:        svc.Name,
		Category:    svc.Category,
		Price:       strconv.FormatFloat(svc.Price, 'f', 2, 64),
		Country:     svc.Country,
		Province:    svc.Province,
		Description: svc.Description,
		Photos:      strings.Join(svc.Photos, ", "),
		Videos:      strings.Join(svc.Videos, ", "),
		Questions:   withBlankRows(rows),
	}
}

// serviceFormFromInput re-renders exactly what was posted after a failure.
func serviceFormFromInput(in forms.ServiceInput) serviceForm {
	rows := make([]questionRow, 0, len(in.QuestionTexts))
	for i, text := range in.QuestionTexts {
		row := questionRow{Text: text, Type: models.QuestionText}
		if i < len(in.QuestionIDs) {
			row.ID = in.QuestionIDs[i]
		}
		if i < len(in.QuestionTypes) {
			row.Type = in.QuestionTypes[i]
		}
		if i < len(in.QuestionRequired) {
			row.Required = in.QuestionRequired[i] == "true" || in.QuestionRequired[i] == "on"
		}
		rows = append(rows, row)
	}
	return serviceForm{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Country:     in.Country,
		Province:    in.Province,
		Description: in.Description,
		Photos:      in.Photos,
		Videos:      in.Videos,
		Questions:   rows,
	}
}
