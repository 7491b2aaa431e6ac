package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EmployeeProducer publishes every applied store change to a Kafka topic,
// keyed by employee id so that changes of one employee stay ordered.
type EmployeeProducer struct {
	sp     sarama.SyncProducer
	topic  string
	source string
	newID  func() uuid.UUID
	log    zerolog.Logger
}

type Config struct {
	Topic  string
	Source string
}

func NewEmployeeProducer(sp sarama.SyncProducer, cfg Config, log zerolog.Logger) *EmployeeProducer {
	return &EmployeeProducer{
		sp:     sp,
		topic:  cfg.Topic,
		source: cfg.Source,
		newID:  uuid.New,
		log:    log.With().Str("component", "EmployeeProducer").Logger(),
	}
}

func (p *EmployeeProducer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

// Notify implements store.Notifier.
func (p *EmployeeProducer) Notify(ctx context.Context, ev dto.EmployeeEvent) error {
	env := Envelope{
		Kind:       string(ev.Kind),
		MessageID:  p.newID(),
		EmployeeID: ev.EmployeeID,
		Timestamp:  ev.At,
		Source:     p.source,
	}
	if ev.Employee != nil {
		env.Payload = toPayload(*ev.Employee)
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	return p.send(ctx, ev.EmployeeID, body, map[string]string{
		"event-kind":   string(ev.Kind),
		"message-id":   env.MessageID.String(),
		"source":       p.source,
		"content-type": "application/json",
	})
}

func toPayload(e dto.Employee) *EmployeePayload {
	payload := &EmployeePayload{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		DateOfBirth: e.DateOfBirth,
		StartDate:   e.StartDate,
		Department:  e.Department,
	}
	payload.Address.Street = e.Street
	payload.Address.City = e.City
	payload.Address.State = e.State
	payload.Address.Zip = e.Zip

	return payload
}

func (p *EmployeeProducer) send(_ context.Context, key string, value []byte, headers map[string]string) error {
	if p == nil || p.sp == nil {
		return errors.New("sync producer is not initialized")
	}

	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: hs,
	}

	part, off, err := p.sp.SendMessage(msg)
	if err != nil {
		p.log.Error().
			Err(err).
			Str("topic", p.topic).
			Str("key", key).
			Int("headers_count", len(headers)).
			Int("bytes", len(value)).
			Msg("failed to send kafka message")
		return fmt.Errorf("send kafka message: %w", err)
	}

	p.log.Info().
		Str("topic", p.topic).
		Str("key", key).
		Int32("partition", part).
		Int64("offset", off).
		Int("bytes", len(value)).
		Msg("kafka message sent")
	return nil
}
