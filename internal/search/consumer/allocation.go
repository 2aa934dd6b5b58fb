// Package consumer applies room allocation events from the allocation topic
// to the in-process ledger.
package consumer

import (
	"context"

	"suntravels/internal/search/ledger"
	"suntravels/pkg/kafka"
	"suntravels/pkg/logger"
	"suntravels/pkg/model"

	"github.com/go-playground/validator/v10"
)

// EventTypeRoomAllocation is the expected event-type header value.
const EventTypeRoomAllocation = "room-allocation"

type AllocationApplier struct {
	ledger   ledger.Ledger
	validate *validator.Validate
	log      *logger.Logger
}

func NewAllocationApplier(l ledger.Ledger, log *logger.Logger) *AllocationApplier {
	return &AllocationApplier{
		ledger:   l,
		validate: validator.New(),
		log:      log,
	}
}

// Handle decodes and applies one allocation event. Malformed events fail
// permanently so they go to the DLQ instead of being retried.
func (a *AllocationApplier) Handle(_ context.Context, msg kafka.Message) error {
	var event model.AllocationEvent
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("failed to decode allocation event", err)
	}

	if err := a.validate.Struct(&event); err != nil {
		return kafka.NewPermanentError("invalid allocation event", err)
	}

	switch event.Action {
	case model.AllocationActionSet:
		a.ledger.Set(event.RoomTypeID, event.Rooms)
	case model.AllocationActionAdd:
		a.ledger.Add(event.RoomTypeID, event.Rooms)
	case model.AllocationActionRelease:
		a.ledger.Release(event.RoomTypeID, event.Rooms)
	}

	a.log.Debug("Allocation event applied",
		"event_id", msg.GetEventID(),
		"room_type_id", event.RoomTypeID,
		"action", event.Action,
		"rooms", event.Rooms,
		"allocated", a.ledger.Allocated(event.RoomTypeID),
	)
	return nil
}
