package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const TypeBookingCreated = "booking.created"

// BookingEvent is the payload published after a booking commits.
type BookingEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	BookingID    int64     `json:"booking_id"`
	MovieID      int64     `json:"movie_id"`
	CustomerName string    `json:"customer_name"`
	SeatsBooked  int       `json:"seats_booked"`
	CreatedAt    time.Time `json:"created_at"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingCreated(ctx context.Context, booking *entity.Booking) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer the producer needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer MessageWriter
	topic  string
	log    *zap.Logger
}

// NewKafkaWriter returns an async writer: WriteMessages only queues the batch,
// and delivery failures are reported through log.
func NewKafkaWriter(brokers []string, topic string, log *zap.Logger) *kafka.Writer {
	log = log.With(zap.String("writer", "kafka"), zap.String("topic", topic))

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error("Booking events not delivered", zap.Error(err), zap.Int("messages", len(messages)))
			}
		},
	}
}

func NewKafkaPublisher(writer MessageWriter, topic string, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		log:    log.With(zap.String("publisher", "kafka"), zap.String("topic", topic)),
	}
}

// PublishBookingCreated keys the message by movie id so events for one movie stay ordered.
func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, booking *entity.Booking) error {
	event := BookingEvent{
		EventID:      uuid.NewString(),
		Type:         TypeBookingCreated,
		BookingID:    booking.ID,
		MovieID:      booking.MovieID,
		CustomerName: booking.CustomerName,
		SeatsBooked:  booking.SeatsBooked,
		CreatedAt:    booking.CreatedAt,
		OccurredAt:   time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(booking.MovieID, 10)),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write booking event %s: %w", event.EventID, err)
	}

	p.log.Debug("Booking event published",
		zap.String("event_id", event.EventID),
		zap.Int64("booking_id", booking.ID),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Noop drops events; used when no brokers are configured.
type Noop struct{}

func (Noop) PublishBookingCreated(context.Context, *entity.Booking) error { return nil }
func (Noop) Close() error { return nil }
