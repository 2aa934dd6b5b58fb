package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"suntravels/internal/search/ledger"
	"suntravels/pkg/kafka"
	"suntravels/pkg/logger"
	"suntravels/pkg/model"
)

func newTestApplier(t *testing.T) (*AllocationApplier, ledger.Ledger) {
	t.Helper()
	l := ledger.NewMemoryLedger()
	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT})
	return NewAllocationApplier(l, log), l
}

func allocationMessage(t *testing.T, event model.AllocationEvent) kafka.Message {
	t.Helper()
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return kafka.Message{
		Key:     event.RoomTypeID,
		Value:   data,
		Headers: map[string]string{kafka.HeaderEventType: EventTypeRoomAllocation},
	}
}

func TestAllocationApplier_SetAddRelease(t *testing.T) {
	applier, l := newTestApplier(t)
	ctx := context.Background()
	const rtID = "64b0f0a1c2d3e4f5a6b7c8d9"

	steps := []struct {
		event model.AllocationEvent
		want  int
	}{
		{model.AllocationEvent{RoomTypeID: rtID, Rooms: 5, Action: model.AllocationActionSet}, 5},
		{model.AllocationEvent{RoomTypeID: rtID, Rooms: 2, Action: model.AllocationActionAdd}, 7},
		{model.AllocationEvent{RoomTypeID: rtID, Rooms: 3, Action: model.AllocationActionRelease}, 4},
		{model.AllocationEvent{RoomTypeID: rtID, Rooms: 10, Action: model.AllocationActionRelease}, 0},
	}

	for _, step := range steps {
		if err := applier.Handle(ctx, allocationMessage(t, step.event)); err != nil {
			t.Fatalf("Handle(%+v): %v", step.event, err)
		}
		if got := l.Allocated(rtID); got != step.want {
			t.Errorf("after %s %d: allocated = %d, want %d", step.event.Action, step.event.Rooms, got, step.want)
		}
	}
}

func TestAllocationApplier_MalformedPayloadIsPermanent(t *testing.T) {
	applier, _ := newTestApplier(t)

	msg := kafka.Message{Key: "rt1", Value: []byte(`{not json`), Headers: map[string]string{}}
	err := applier.Handle(context.Background(), msg)
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}

	var kafkaErr *kafka.KafkaError
	if !errors.As(err, &kafkaErr) || kafkaErr.Type != kafka.ErrorTypePermanent {
		t.Errorf("expected permanent kafka error, got %v", err)
	}
}

func TestAllocationApplier_UnknownActionRejected(t *testing.T) {
	applier, l := newTestApplier(t)

	event := model.AllocationEvent{RoomTypeID: "64b0f0a1c2d3e4f5a6b7c8d9", Rooms: 1, Action: "reserve"}
	err := applier.Handle(context.Background(), allocationMessage(t, event))
	if err == nil {
		t.Fatal("expected error for unknown action")
	}

	if got := l.Allocated(event.RoomTypeID); got != 0 {
		t.Errorf("ledger changed on invalid event: %d", got)
	}
}
