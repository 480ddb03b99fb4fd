package model

import "time"

// Activity is one audit entry describing the outcome of a mutating action.
type Activity struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	ActorID   int       `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Target    string    `json:"target"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
