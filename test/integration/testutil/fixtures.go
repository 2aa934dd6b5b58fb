package testutil

import (
	"time"

	"suntravels/pkg/model"
)

type HotelBuilder struct {
	hotel model.Hotel
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		hotel: model.Hotel{
			Name:           "Test Hotel",
			Location:       "Colombo",
			ContactDetails: "reservations@testhotel.example",
			CreatedAt:      time.Now().UTC(),
		},
	}
}

func (b *HotelBuilder) WithName(name string) *HotelBuilder {
	b.hotel.Name = name
	return b
}

func (b *HotelBuilder) WithLocation(location string) *HotelBuilder {
	b.hotel.Location = location
	return b
}

func (b *HotelBuilder) Build() model.Hotel {
	return b.hotel
}

type ContractBuilder struct {
	contract model.Contract
}

func NewContractBuilder(hotelID string) *ContractBuilder {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	return &ContractBuilder{
		contract: model.Contract{
			HotelID:          hotelID,
			StartDate:        now,
			EndDate:          now.AddDate(1, 0, 0),
			MarkupPercentage: 10,
			CreatedAt:        time.Now().UTC(),
		},
	}
}

func (b *ContractBuilder) WithValidity(start, end time.Time) *ContractBuilder {
	b.contract.StartDate = start
	b.contract.EndDate = end
	return b
}

func (b *ContractBuilder) WithMarkup(percentage float64) *ContractBuilder {
	b.contract.MarkupPercentage = percentage
	return b
}

func (b *ContractBuilder) Build() model.Contract {
	return b.contract
}

type RoomTypeBuilder struct {
	roomType model.RoomType
}

func NewRoomTypeBuilder(contractID string) *RoomTypeBuilder {
	return &RoomTypeBuilder{
		roomType: model.RoomType{
			ContractID:     contractID,
			Name:           "Standard Double",
			PricePerPerson: 100,
			NumberOfRooms:  10,
			MaxAdults:      2,
			CreatedAt:      time.Now().UTC(),
		},
	}
}

func (b *RoomTypeBuilder) WithName(name string) *RoomTypeBuilder {
	b.roomType.Name = name
	return b
}

func (b *RoomTypeBuilder) WithPricePerPerson(price float64) *RoomTypeBuilder {
	b.roomType.PricePerPerson = price
	return b
}

func (b *RoomTypeBuilder) WithRooms(rooms int) *RoomTypeBuilder {
	b.roomType.NumberOfRooms = rooms
	return b
}

func (b *RoomTypeBuilder) WithMaxAdults(maxAdults int) *RoomTypeBuilder {
	b.roomType.MaxAdults = maxAdults
	return b
}

func (b *RoomTypeBuilder) Build() model.RoomType {
	return b.roomType
}
