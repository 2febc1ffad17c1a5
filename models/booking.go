// File: servizo/models/booking.go
package models

import "time"

// Booking statuses as reported by the backend. Only the backend mutates
// status, in response to a provider's accept/decline.
const (
	BookingPending  = "pending"
	BookingAccepted = "accepted"
	BookingDeclined = "declined"
)

// Roles for GET /bookings?role=...
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// Answer ties a questionnaire response to the question that asked for it.
type Answer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Booking is a customer's request to engage a service, subject to provider
// accept/decline.
type Booking struct {
	ID             string     `json:"id"`
	ServiceID      string     `json:"service_id"`
	CustomerID     string     `json:"customer_id,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end"`
	Message        string     `json:"message,omitempty"`
	Answers        []Answer   `json:"answers,omitempty"`
	Status         string     `json:"status"`
}

// BookingDraft is the payload for a booking request. ScheduledEnd is always
// null: the form collects a single point in time, not a range.
type BookingDraft struct {
	ServiceID      string     `json:"service_id"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end"`
	Message        string     `json:"message"`
	Answers        []Answer   `json:"answers"`
}
