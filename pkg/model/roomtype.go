package model

import "time"

type RoomType struct {
	ID             string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	ContractID     string    `json:"contract_id" bson:"contract_id" validate:"required,mongodb"`
	Name           string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	PricePerPerson float64   `json:"price_per_person" bson:"price_per_person" validate:"required,gt=0"`
	NumberOfRooms  int       `json:"number_of_rooms" bson:"number_of_rooms" validate:"required,gt=0"`
	MaxAdults      int       `json:"max_adults" bson:"max_adults" validate:"required,gt=0"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type RoomTypeUpdate struct {
	Name           string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	PricePerPerson *float64 `json:"price_per_person,omitempty" validate:"omitempty,gt=0"`
	NumberOfRooms  *int     `json:"number_of_rooms,omitempty" validate:"omitempty,gt=0"`
	MaxAdults      *int     `json:"max_adults,omitempty" validate:"omitempty,gt=0"`
}
