package httpapi

import (
	"time"

	"github.com/roadfleet/roadfleet/internal/server/models"
)

// Wire-level DTOs. Records cross the wire with Mongo-style "_id" keys and
// RFC 3339 timestamps; the conversion helpers below keep that contract in
// one place.

type userDTO struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	City      string `json:"city"`
	Gender    string `json:"gender"`
	CNIC      string `json:"cnic"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *models.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		City:      u.City,
		Gender:    u.Gender,
		CNIC:      u.CNIC,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

type vehicleDTO struct {
	ID          string              `json:"_id"`
	Name        string              `json:"name"`
	Brand       string              `json:"brand"`
	VehicleType string              `json:"vehicleType"`
	Location    string              `json:"location"`
	Seats       int                 `json:"seats"`
	Features    []string            `json:"features"`
	Image       string              `json:"image"`
	RentalPlans []models.RentalPlan `json:"rentalPlans"`
	Status      string              `json:"status"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

func toVehicleDTO(v *models.Vehicle) vehicleDTO {
	features := v.Features
	if features == nil {
		features = []string{}
	}
	plans := v.RentalPlans
	if plans == nil {
		plans = []models.RentalPlan{}
	}
	return vehicleDTO{
		ID:          v.ID,
		Name:        v.Name,
		Brand:       v.Brand,
		VehicleType: v.VehicleType,
		Location:    v.Location,
		Seats:       v.Seats,
		Features:    features,
		Image:       v.Image,
		RentalPlans: plans,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   v.UpdatedAt.Format(time.RFC3339),
	}
}

type bookingUserDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type bookingVehicleDTO struct {
	ID          string `json:"_id"`
	Brand       string `json:"brand"`
	VehicleType string `json:"vehicleType"`
}

type bookingPlanDTO struct {
	Name string `json:"name"`
}

type bookingDTO struct {
	ID             string             `json:"_id"`
	User           *bookingUserDTO    `json:"user,omitempty"`
	Vehicle        *bookingVehicleDTO `json:"vehicle,omitempty"`
	RentalPlan     *bookingPlanDTO    `json:"rentalPlan,omitempty"`
	StartDate      string             `json:"startDate"`
	EndDate        string             `json:"endDate"`
	IncludeDriver  bool               `json:"includeDriver"`
	Price          float64            `json:"price"`
	Status         string             `json:"status"`
	PickupLocation string             `json:"pickupLocation"`
	DropLocation   string             `json:"dropLocation"`
	CreatedAt      string             `json:"createdAt"`
}

func toBookingDTO(b *models.BookingWithRefs) bookingDTO {
	dto := bookingDTO{
		ID:             b.ID,
		StartDate:      b.StartDate.Format(time.RFC3339),
		EndDate:        b.EndDate.Format(time.RFC3339),
		IncludeDriver:  b.IncludeDriver,
		Price:          b.Price,
		Status:         b.Status,
		PickupLocation: b.PickupLocation,
		DropLocation:   b.DropLocation,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
	if b.UserID != "" {
		dto.User = &bookingUserDTO{ID: b.UserID, Name: b.UserName}
	}
	if b.VehicleID != "" {
		dto.Vehicle = &bookingVehicleDTO{
			ID:          b.VehicleID,
			Brand:       b.VehicleBrand,
			VehicleType: b.VehicleVehicleType,
		}
	}
	if b.RentalPlanName != "" {
		dto.RentalPlan = &bookingPlanDTO{Name: b.RentalPlanName}
	}
	return dto
}

type paginationDTO struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}
