package models

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
