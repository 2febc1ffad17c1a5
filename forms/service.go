// Package forms assembles backend payloads from posted HTML form values.
package forms

import (
	"math"
	"strconv"
	"strings"

	"servizo/models"

	"github.com/google/uuid"
)

// ServiceInput mirrors the service form fields as posted. The question
// builder rows arrive as parallel question_* arrays.
type ServiceInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	Country     string
	Province    string
	Photos      string
	Videos      string

	QuestionIDs      []string
	QuestionTexts    []string
	QuestionTypes    []string
	QuestionRequired []string
}

// SplitList turns a comma-separated input into a trimmed list with empty
// entries dropped.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParsePrice parses the price input; anything that does not parse as a finite
// number coerces to 0.
func ParsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0
	}
	return price
}

// ParseQuestions assembles the builder rows. Rows with no text are skipped;
// rows without an id (newly added ones) get a fresh UUID, while rows carrying
// an id keep it so edits leave existing questions stable.
func ParseQuestions(ids, texts, types, requireds []string) []models.Question {
	questions := make([]models.Question, 0, len(texts))
	for i, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		id := ""
		if i < len(ids) {
			id = strings.TrimSpace(ids[i])
		}
		if id == "" {
			id = uuid.NewString()
		}

		qType := models.QuestionText
		if i < len(types) && validQuestionType(types[i]) {
			qType = types[i]
		}

		required := false
		if i < len(requireds) {
			required = requireds[i] == "true" || requireds[i] == "on"
		}

		questions = append(questions, models.Question{
			ID:       id,
			Text:     text,
			Type:     qType,
			Required: required,
		})
	}
	return questions
}

func validQuestionType(t string) bool {
	switch t {
	case models.QuestionText, models.QuestionTextarea, models.QuestionNumber,
		models.QuestionSelect, models.QuestionCheckbox:
		return true
	}
	return false
}

// BuildServiceDraft converts the posted form into the create/update payload.
// Availability stays an empty placeholder list; the backend accepts it but
// the client never populates it.
func BuildServiceDraft(in ServiceInput) models.ServiceDraft {
	return models.ServiceDraft{
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		Price:        ParsePrice(in.Price),
		Category:     strings.TrimSpace(in.Category),
		Country:      strings.TrimSpace(in.Country),
		Province:     strings.TrimSpace(in.Province),
		Photos:       SplitList(in.Photos),
		Videos:       SplitList(in.Videos),
		Questions:    ParseQuestions(in.QuestionIDs, in.QuestionTexts, in.QuestionTypes, in.QuestionRequired),
		Availability: []string{},
	}
}
