package api

// Wire-level records as the rental API returns them. The console never
// shows these to the view directly; resource stores normalize them first.

// Identity is the authenticated admin account attached to a session.
type Identity struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Valid reports whether the identity carries the fields a session needs.
func (i Identity) Valid() bool {
	return i.ID != "" && i.Name != ""
}

type BookingUser struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

type BookingVehicle struct {
	ID          string `json:"_id,omitempty"`
	Brand       string `json:"brand"`
	VehicleType string `json:"vehicleType"`
}

type BookingPlan struct {
	Name string `json:"name"`
}

type Booking struct {
	ID             string          `json:"_id"`
	User           *BookingUser    `json:"user,omitempty"`
	Vehicle        *BookingVehicle `json:"vehicle,omitempty"`
	RentalPlan     *BookingPlan    `json:"rentalPlan,omitempty"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	IncludeDriver  bool            `json:"includeDriver"`
	Price          float64         `json:"price"`
	Status         string          `json:"status"`
	PickupLocation string          `json:"pickupLocation"`
	DropLocation   string          `json:"dropLocation"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type RentalPlan struct {
	Duration   string     `json:"duration"`
	PriceRange PriceRange `json:"priceRange"`
}

type Vehicle struct {
	ID          string       `json:"_id,omitempty"`
	Name        string       `json:"name"`
	Brand       string       `json:"brand"`
	VehicleType string       `json:"vehicleType"`
	Location    string       `json:"location"`
	Seats       int          `json:"seats"`
	Features    []string     `json:"features"`
	Image       string       `json:"image"`
	RentalPlans []RentalPlan `json:"rentalPlans"`
	Status      string       `json:"status"`
	CreatedAt   string       `json:"createdAt,omitempty"`
	UpdatedAt   string       `json:"updatedAt,omitempty"`
}

// VehiclePatch carries the optional fields of a vehicle edit. Nil fields
// are omitted from the request and left unchanged by the server. Sending a
// full Vehicle here would serialize its zero values and wipe the record.
type VehiclePatch struct {
	Name        *string      `json:"name,omitempty"`
	Brand       *string      `json:"brand,omitempty"`
	VehicleType *string      `json:"vehicleType,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Seats       *int         `json:"seats,omitempty"`
	Features    []string     `json:"features,omitempty"`
	Image       *string      `json:"image,omitempty"`
	RentalPlans []RentalPlan `json:"rentalPlans,omitempty"`
	Status      *string      `json:"status,omitempty"`
}

type User struct {
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

// UserDetailsPatch carries the optional fields of an admin edit. Nil fields
// are omitted from the request and left unchanged by the server.
type UserDetailsPatch struct {
	Status *string `json:"status,omitempty"`
	Name   *string `json:"name,omitempty"`
	CNIC   *string `json:"cnic,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// VehicleQuery selects a page of the vehicle collection. Empty filter
// fields are not sent.
type VehicleQuery struct {
	Page        int
	Limit       int
	Brand       string
	VehicleType string
	Location    string
	Status      string
}

type Revenue struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

type DashboardStats struct {
	TotalVehicles       int            `json:"totalVehicles"`
	AvailableVehicles   int            `json:"availableVehicles"`
	UnavailableVehicles int            `json:"unavailableVehicles"`
	TotalUsers          int            `json:"totalUsers"`
	TotalBookings       int            `json:"totalBookings"`
	Revenue             Revenue        `json:"revenue"`
	VehicleTypes        map[string]int `json:"vehicleTypes"`
}

type BookingTrend struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type PopularVehicle struct {
	VehicleID string `json:"vehicleId"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type Analytics struct {
	BookingTrends   []BookingTrend   `json:"bookingTrends"`
	PopularVehicles []PopularVehicle `json:"popularVehicles"`
	RevenueGrowth   []RevenuePoint   `json:"revenueGrowth"`
}
