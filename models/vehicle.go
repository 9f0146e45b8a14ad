package models

// VehicleOption describes a vehicle the rental service offers as a
// substitute when the originally requested vehicle is sold out for the
// edited date range. The renter must explicitly confirm one of these,
// including its (possibly different) daily rate.
type VehicleOption struct {
	VehicleID   string `json:"vehicle_id"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	PricePerDay int64  `json:"price_per_day"`
	StationID   string `json:"station_id,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
