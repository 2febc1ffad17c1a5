// File: servizo/models/service.go
package models

// Question input types a provider can pick in the builder.
const (
	QuestionText     = "text"
	QuestionTextarea = "textarea"
	QuestionNumber   = "number"
	QuestionSelect   = "select"
	QuestionCheckbox = "checkbox"
)

// Question is a provider-defined form field collected at booking time.
// IDs are UUIDs generated by this client when the service is saved.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Service is a bookable listing with price, category, location and an
// optional custom questionnaire.
type Service struct {
	ID           string     `json:"id"`
	ProviderID   string     `json:"provider_id,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Category     string     `json:"category"`
	Country      string     `json:"country,omitempty"`
	Province     string     `json:"province,omitempty"`
	Photos       []string   `json:"photos"`
	Videos       []string   `json:"videos"`
	Questions    []Question `json:"questions"`
	Availability []string   `json:"availability"`
}

// ServiceDraft is the payload for creating or updating a service.
type ServiceDraft struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Category     string     `json:"category"`
	Country      string     `json:"country"`
	Province     string     `json:"province"`
	Photos       []string   `json:"photos"`
	Videos       []string   `json:"videos"`
	Questions    []Question `json:"questions"`
	Availability []string   `json:"availability"`
}

// ServiceFilter is the browse filter set; zero values mean "no filter".
type ServiceFilter struct {
	Query    string
	Country  string
	Province string
	Category string
}
