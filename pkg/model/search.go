package model

// RoomRequest is one line of a search: rooms of some size for some party.
// NumberOfRooms defaults to 1 when omitted.
type RoomRequest struct {
	NumberOfAdults int `json:"number_of_adults" validate:"required,gt=0"`
	NumberOfRooms  int `json:"number_of_rooms,omitempty" validate:"omitempty,gt=0"`
}

// Rooms returns the requested room count, defaulting to 1.
func (r RoomRequest) Rooms() int {
	if r.NumberOfRooms <= 0 {
		return 1
	}
	return r.NumberOfRooms
}

type SearchRequest struct {
	CheckInDate    Date          `json:"check_in_date"`
	NumberOfNights int           `json:"number_of_nights"`
	RoomRequests   []RoomRequest `json:"room_requests"`
}

// TotalRooms is the number of rooms the whole request needs.
func (s SearchRequest) TotalRooms() int {
	total := 0
	for _, rr := range s.RoomRequests {
		total += rr.Rooms()
	}
	return total
}

// CheckOutDate is the check-in date advanced by the stay length.
func (s SearchRequest) CheckOutDate() Date {
	return s.CheckInDate.AddDays(s.NumberOfNights)
}

// RoomTypeResult is the priced outcome for one room type of a contract.
// Unavailable room types are kept in the result with Available false and a
// zero price.
type RoomTypeResult struct {
	RoomTypeID     string  `json:"room_type_id"`
	Name           string  `json:"name"`
	MaxAdults      int     `json:"max_adults"`
	AvailableRooms int     `json:"available_rooms"`
	Available      bool    `json:"available"`
	TotalPrice     float64 `json:"total_price"`
}

// SearchResult groups the priced room types of one matching contract.
type SearchResult struct {
	ContractID string           `json:"contract_id"`
	HotelName  string           `json:"hotel_name"`
	RoomTypes  []RoomTypeResult `json:"room_types"`
}

// ContractSnapshot is the read-side join a search works from: one contract,
// its hotel's name, and its room types.
type ContractSnapshot struct {
	Contract  Contract
	HotelName string
	RoomTypes []RoomType
}
