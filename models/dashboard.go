package models

import (
	"encoding/json"
	"time"
)

// Favorite links a user to a property they bookmarked.
type Favorite struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PropertyID string    `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (f Favorite) TableName() string { return "favorites" }

// Inquiry statuses as stored in the inquiries table.
const (
	InquiryStatusOpen   = "open"
	InquiryStatusClosed = "closed"
)

// Inquiry is a question a client sent about a property. Reference is a
// short human code included in e-mail follow-ups.
type Inquiry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PropertyID string    `json:"property_id"`
	Message    string    `json:"message"`
	Reference  string    `json:"reference"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (i Inquiry) TableName() string { return "inquiries" }

// SavedSearch is a named set of catalog filter criteria a user stored
// from the search page. Criteria is kept opaque, the portal only
// round-trips it.
type SavedSearch struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Criteria  json.RawMessage `json:"criteria"`
	CreatedAt time.Time       `json:"created_at"`
}

func (s SavedSearch) TableName() string { return "saved_searches" }

// Webinar is a scheduled buyer-education session.
type Webinar struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Language string    `json:"language"`
	StartsAt time.Time `json:"starts_at"`
}

func (w Webinar) TableName() string { return "webinars" }

// WebinarRegistration records a user's sign-up for a webinar.
type WebinarRegistration struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	WebinarID string    `json:"webinar_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (w WebinarRegistration) TableName() string { return "webinar_registrations" }

// Concierge ticket statuses.
const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

// ConciergeTicket is a request to the buyer-concierge team (viewings,
// notaries, translations, utilities).
type ConciergeTicket struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c ConciergeTicket) TableName() string { return "concierge_tickets" }

// Document is the metadata row for a file a user stored in the portal
// (contracts, surveys, codice fiscale paperwork). The blob itself lives
// in object storage under StorageKey.
type Document struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"storage_key"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d Document) TableName() string { return "documents" }
