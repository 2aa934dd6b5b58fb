package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"suntravels/internal/search/consumer"
	"suntravels/pkg/kafka"
	kafka_config "suntravels/pkg/kafka/config"
	"suntravels/pkg/logger"
	"suntravels/pkg/model"
)

const JobName = "allocations-cli"

// Operator tool for adjusting the room allocation ledger. Publishes a
// single allocation event to the allocations topic and exits.
func main() {
	roomTypeID := flag.String("room-type-id", "", "room type id the allocation applies to")
	rooms := flag.Int("rooms", 0, "number of rooms")
	action := flag.String("action", model.AllocationActionAdd, "one of set, add, release")
	flag.Parse()

	log := logger.New(logger.Config{
		Level:   logger.INFO,
		Format:  logger.TEXT,
		Output:  os.Stderr,
		Service: JobName,
	})

	if *roomTypeID == "" {
		log.Fatal("room-type-id is required")
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.AllocationsTopic, kafkaCfg.AllocationsDLQTopic, log)
	if err != nil {
		log.Fatal("Failed to create producer", "error", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			log.Error("Failed to close producer", "error", err)
		}
	}()

	event := model.AllocationEvent{
		RoomTypeID: *roomTypeID,
		Rooms:      *rooms,
		Action:     *action,
	}

	msg, err := kafka.NewMessage(*roomTypeID, consumer.EventTypeRoomAllocation, JobName, event)
	if err != nil {
		log.Fatal("Failed to build message", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := producer.Publish(ctx, msg); err != nil {
		log.Fatal("Failed to publish allocation event", "error", err)
	}

	fmt.Printf("Published %s allocation for room type %s (%d rooms)\n", *action, *roomTypeID, *rooms)
}
