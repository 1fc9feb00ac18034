package models

import "github.com/google/uuid"

// City is a managed city record.
type City struct {
	ID   uuid.UUID `json:"cityId"`
	Name string    `json:"cityName"`
}
