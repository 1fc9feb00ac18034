package dto

import "github.com/google/uuid"

const maxCityNameLength = 40

// CityRequest is the body of city create and update calls.
type CityRequest struct {
	CityID   uuid.UUID `json:"cityId"`
	CityName string    `json:"cityName"`
}

// Validate checks the request shape and returns all violations.
func (r *CityRequest) Validate() []string {
	var violations []string
	if r.CityName == "" {
		violations = append(violations, "city name can't be null or empty")
	} else if len(r.CityName) > maxCityNameLength {
		violations = append(violations, "city name can't be more than 40 characters")
	}
	return violations
}
