package models

// Event is a calendar entry. Attendees holds weak User references.
type Event struct {
	ID         string   `json:"id"`
	TeamID     string   `json:"teamId"`
	Title      string   `json:"title"`
	Type       string   `json:"type"`
	Date       string   `json:"date"`
	EndDate    string   `json:"endDate"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	Location   *string  `json:"location,omitempty"`
	ClientName *string  `json:"clientName,omitempty"`
	Attendees  []string `json:"attendees"`
}

// Clone returns a copy that shares no memory with e.
func (e Event) Clone() Event {
	out := e
	out.Location = cloneString(e.Location)
	out.ClientName = cloneString(e.ClientName)
	if e.Attendees != nil {
		out.Attendees = append([]string(nil), e.Attendees...)
	}
	return out
}

// EventPatch carries the fields of a partial event update.
type EventPatch struct {
	Title      *string
	Type       *string
	Date       *string
	EndDate    *string
	StartTime  *string
	EndTime    *string
	Location   *string
	ClientName *string
	Attendees  []string
}

// Apply merges the patch onto e and returns the result.
func (p EventPatch) Apply(e Event) Event {
	out := e.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.EndDate != nil {
		out.EndDate = *p.EndDate
	}
	if p.StartTime != nil {
		out.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		out.EndTime = *p.EndTime
	}
	if p.Location != nil {
		out.Location = cloneString(p.Location)
	}
	if p.ClientName != nil {
		out.ClientName = cloneString(p.ClientName)
	}
	if p.Attendees != nil {
		out.Attendees = append([]string(nil), p.Attendees...)
	}
	return out
}
