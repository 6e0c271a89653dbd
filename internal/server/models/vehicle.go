package models

import "time"

const (
	VehicleStatusAvailable   = "Available"
	VehicleStatusUnavailable = "Unavailable"
)

// VehicleTypes enumerates the accepted vehicle categories.
var VehicleTypes = []string{"Car", "Mini Bus", "Bus", "Coaster"}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type RentalPlan struct {
	Duration   string     `json:"duration"`
	PriceRange PriceRange `json:"priceRange"`
}

type Vehicle struct {
	ID          string
	Name        string
	Brand       string
	VehicleType string
	Location    string
	Seats       int
	Features    []string
	Image       string
	RentalPlans []RentalPlan
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VehicleFilter narrows a vehicle listing; empty fields do not filter.
type VehicleFilter struct {
	Brand       string
	VehicleType string
	Location    string
	Status      string
}

// VehiclePage is one page of the vehicle collection plus its descriptor
// inputs.
type VehiclePage struct {
	Items []Vehicle
	Total int
}
