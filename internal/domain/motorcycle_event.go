package domain

import "time"

const EventTypeMotorcycleCreated = "MOTORCYCLE_CREATED"

// MotorcycleEvent is the persisted record of a motorcycle notification
// consumed from the message queue. The worker only stores events for
// motorcycles manufactured in 2024.
type MotorcycleEvent struct {
	ID           string    `json:"id"`
	MotorcycleID string    `json:"motorcycle_id"`
	EventType    string    `json:"event_type"`
	EventDate    time.Time `json:"event_date"`
	Year         int32     `json:"year"`
	Model        string    `json:"model"`
	Plate        string    `json:"plate"`
}
