package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// eventType тип событий смены статуса записи
const eventType = "appointment.status.changed"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// StatusChangeEvent аудит-событие перехода статуса записи
//
// Таблица переходов намеренно разрешающая (оператор может вернуть запись из
// любого статуса), поэтому каждый переход фиксируется в аудите
type StatusChangeEvent struct {
	AppointmentID   int64     `json:"appointmentId"`
	AppointmentCode string    `json:"appointmentCode"`
	FromStatus      string    `json:"fromStatus"`
	ToStatus        string    `json:"toStatus"`
	ActorID         int64     `json:"actorId"`
	Reason          *string   `json:"reason,omitempty"`
	OccurredAt      time.Time `json:"occurredAt"`
}

// Publisher публикует аудит-события переходов статусов в Kafka
type Publisher struct {
	writer *kafka.Writer
	log    Logger
}

// NewPublisher создает издателя аудит-событий
// brokers — список брокеров через запятую
func NewPublisher(brokers string, topic string, log Logger) *Publisher {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  splitBrokers(brokers),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	})

	return &Publisher{
		writer: writer,
		log:    log,
	}
}

// Publish отправляет одно аудит-событие
// Ключ сообщения — код записи: все переходы одной записи попадают в одну
// партицию и сохраняют порядок
func (p *Publisher) Publish(ctx context.Context, event StatusChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("audit: failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.AppointmentCode),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("audit: failed to write message: %w", err)
	}

	p.log.Info("audit: published %s %s -> %s for appointment %s",
		eventType, event.FromStatus, event.ToStatus, event.AppointmentCode)
	return nil
}

// Close закрывает kafka writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// splitBrokers разбирает список брокеров из строки конфигурации
func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
