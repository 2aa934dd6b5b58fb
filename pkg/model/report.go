package model

// AvailabilityReportRow is one room type's standing inventory for the
// reporting window, with allocations already subtracted.
type AvailabilityReportRow struct {
	HotelName      string `json:"hotel_name"`
	RoomTypeName   string `json:"room_type_name"`
	TotalRooms     int    `json:"total_rooms"`
	AvailableRooms int    `json:"available_rooms"`
	Date           Date   `json:"date"`
}

// ContractExpiryRow describes a contract whose validity window ends inside
// the queried range.
type ContractExpiryRow struct {
	ContractID   string `json:"contract_id"`
	HotelName    string `json:"hotel_name"`
	StartDate    Date   `json:"start_date"`
	EndDate      Date   `json:"end_date"`
	DaysToExpiry int    `json:"days_to_expiry"`
}
