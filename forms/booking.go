package forms

import (
	"fmt"
	"time"

	"servizo/models"
)

// AnswerValues holds the raw posted questionnaire inputs keyed by question id.
// Only questions the user actually answered have an entry.
type AnswerValues map[string]string

// CombineSchedule merges separately entered date ("2006-01-02") and time
// ("15:04") inputs into a single UTC start instant. Both must be present;
// otherwise the booking carries no schedule at all.
func CombineSchedule(date, clock string) (*time.Time, error) {
	if date == "" || clock == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+clock, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q %q", date, clock)
	}
	utc := t.UTC()
	return &utc, nil
}

// CollectAnswers flattens posted answers into the wire list, keeping the
// service's question declaration order and dropping untouched questions.
func CollectAnswers(questions []models.Question, values AnswerValues) []models.Answer {
	answers := make([]models.Answer, 0, len(questions))
	for _, q := range questions {
		v, ok := values[q.ID]
		if !ok || v == "" {
			continue
		}
		answers = append(answers, models.Answer{QuestionID: q.ID, Answer: v})
	}
	return answers
}

// BuildBookingDraft converts the posted booking form into the request
// payload. ScheduledEnd is never populated: the form collects no end time.
func BuildBookingDraft(service models.Service, date, clock, message string, values AnswerValues) (models.BookingDraft, error) {
	start, err := CombineSchedule(date, clock)
	if err != nil {
		return models.BookingDraft{}, err
	}
	return models.BookingDraft{
		ServiceID:      service.ID,
		ScheduledStart: start,
		ScheduledEnd:   nil,
		Message:        message,
		Answers:        CollectAnswers(service.Questions, values),
	}, nil
}
