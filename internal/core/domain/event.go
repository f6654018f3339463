package domain

import "errors"

var ErrEventNotFound = errors.New("event not found")
var ErrAlreadyRegistered = errors.New("student already signed up for this event")

// Event is a campus event students can sign up for. Attendees holds
// the ids of registered students; it is a set, no id appears twice.
type Event struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Photo       string   `json:"photo,omitempty"` // stored filename, resolved to a URL at read time
	Description string   `json:"description,omitempty"`
	Venue       string   `json:"venue"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	IsFree      bool     `json:"is_free"`
	Price       float64  `json:"price"`
	Attendees   []string `json:"attendees"`
}

// NormalizePrice enforces the free-event invariant: a free event
// always carries price 0, whatever the caller submitted.
func (e *Event) NormalizePrice() {
	if e.IsFree {
		e.Price = 0
	}
}
