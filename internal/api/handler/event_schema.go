package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// createEventRequest binds the multipart form fields of event creation.
// The photo file is read separately from the multipart payload.
type createEventRequest struct {
	Name        string  `form:"name"        validate:"required"`
	Description string  `form:"description"`
	Venue       string  `form:"venue"       validate:"required"`
	Date        string  `form:"date"        validate:"required"`
	Time        string  `form:"time"        validate:"required"`
	IsFree      bool    `form:"isFree"`
	Price       float64 `form:"price"       validate:"gte=0"`
}

// eventResponse is the catalog view of an event. Photo carries the
// fully resolved URL, or null when no photo was attached.
type eventResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Photo       *string `json:"photo"`
	Description string  `json:"description,omitempty"`
	Venue       string  `json:"venue"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	IsFree      bool    `json:"isFree"`
	Price       float64 `json:"price"`
}

// attendeeResponse is the public projection of a registered student.
// It deliberately has no field for the password hash.
type attendeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NIC       string `json:"nic"`
	StudentID string `json:"studentId"`
	Email     string `json:"email,omitempty"`
}

type eventDetailResponse struct {
	eventResponse
	Attendees []attendeeResponse `json:"attendees"`
}
