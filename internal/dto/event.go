package dto

import "github.com/yukikurage/kerja-workspace/internal/models"

// CreateEventRequest is the body of POST /api/events
type CreateEventRequest struct {
	Title      string   `json:"title" binding:"required"`
	Type       string   `json:"type"`
	Date       string   `json:"date" binding:"required"`
	EndDate    string   `json:"endDate"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	Location   *string  `json:"location"`
	ClientName *string  `json:"clientName"`
	Attendees  []string `json:"attendees"`
}

// UpdateEventRequest is the body of PATCH /api/events/:id
type UpdateEventRequest struct {
	Title      *string  `json:"title"`
	Type       *string  `json:"type"`
	Date       *string  `json:"date"`
	EndDate    *string  `json:"endDate"`
	StartTime  *string  `json:"startTime"`
	EndTime    *string  `json:"endTime"`
	Location   *string  `json:"location"`
	ClientName *string  `json:"clientName"`
	Attendees  []string `json:"attendees"`
}

// EventListResponse wraps a list of events
type EventListResponse struct {
	Events []models.Event `json:"events"`
	Total  int            `json:"total"`
}

// ToEvent converts the request to an event ready for creation. A missing
// end date means a single-day event.
func (r CreateEventRequest) ToEvent() models.Event {
	attendees := r.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	endDate := r.EndDate
	if endDate == "" {
		endDate = r.Date
	}
	return models.Event{
		Title:      r.Title,
		Type:       r.Type,
		Date:       r.Date,
		EndDate:    endDate,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Location:   r.Location,
		ClientName: r.ClientName,
		Attendees:  attendees,
	}
}

func (r UpdateEventRequest) ToPatch() models.EventPatch {
	return models.EventPatch{
		Title:      r.Title,
		Type:       r.Type,
		Date:       r.Date,
		EndDate:    r.EndDate,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Location:   r.Location,
		ClientName: r.ClientName,
		Attendees:  r.Attendees,
	}
}

func ToEventListResponse(events []models.Event) EventListResponse {
	if events == nil {
		events = []models.Event{}
	}
	return EventListResponse{Events: events, Total: len(events)}
}
