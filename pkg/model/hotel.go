package model

import "time"

type Hotel struct {
	ID             string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name           string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Location       string    `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,min=2,max=100"`
	ContactDetails string    `json:"contact_details,omitempty" bson:"contact_details,omitempty" validate:"omitempty,min=2,max=200"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type HotelUpdate struct {
	Name           string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Location       string `json:"location,omitempty" validate:"omitempty,min=2,max=100"`
	ContactDetails string `json:"contact_details,omitempty" validate:"omitempty,min=2,max=200"`
}
