package model

import "time"

// Contract is a hotel's rate agreement for a validity window. Room types
// reference the contract by ID rather than being embedded, so contract and
// room type documents can be written and queried independently.
type Contract struct {
	ID               string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	HotelID          string    `json:"hotel_id" bson:"hotel_id" validate:"required,mongodb"`
	StartDate        time.Time `json:"start_date" bson:"start_date" validate:"required"`
	EndDate          time.Time `json:"end_date" bson:"end_date" validate:"required,gtefield=StartDate"`
	MarkupPercentage float64   `json:"markup_percentage" bson:"markup_percentage" validate:"required,gt=0"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type ContractUpdate struct {
	StartDate        *time.Time `json:"start_date,omitempty" validate:"omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty" validate:"omitempty"`
	MarkupPercentage *float64   `json:"markup_percentage,omitempty" validate:"omitempty,gt=0"`
}
