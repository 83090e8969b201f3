package model

import "time"

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event is a concert, festival, release or similar date on the calendar
type Event struct {
	ID          string    `json:"id"`
	LegacyID    string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	TicketPrice *float64  `json:"ticketPrice"`
	TicketURL   *string   `json:"ticketUrl"`
	Capacity    *int      `json:"capacity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type EventRequest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Location    string     `json:"location"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Image       string     `json:"image"`
	Featured    bool       `json:"featured"`
	TicketPrice *float64   `json:"ticketPrice"`
	TicketURL   *string    `json:"ticketUrl"`
	Capacity    *int       `json:"capacity"`
}

type EventFilters struct {
	Status   *string
	Type     *string
	Featured bool
	Limit    int
}
