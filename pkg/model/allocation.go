package model

// Allocation event actions.
const (
	AllocationActionSet     = "set"
	AllocationActionAdd     = "add"
	AllocationActionRelease = "release"
)

// AllocationEvent adjusts the allocated-room count for one room type. The
// ledger clamps the resulting count at zero.
type AllocationEvent struct {
	RoomTypeID string `json:"room_type_id" validate:"required,mongodb"`
	Rooms      int    `json:"rooms" validate:"gte=0"`
	Action     string `json:"action" validate:"required,oneof=set add release"`
}
