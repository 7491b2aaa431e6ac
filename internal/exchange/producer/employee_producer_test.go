package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

var fixedID = uuid.MustParse("c7e06db5-4b71-4c54-9334-3f9a6e6c5d0e")

func newTestProducer(t *testing.T, sp sarama.SyncProducer) *EmployeeProducer {
	t.Helper()

	p := NewEmployeeProducer(sp, Config{Topic: "hr.employees", Source: "hr-employees"}, zerolog.Nop())
	p.newID = func() uuid.UUID { return fixedID }
	return p
}

func TestNotify_Add(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	at := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var env Envelope
		if err := json.Unmarshal(val, &env); err != nil {
			return err
		}
		if env.Kind != "add_employee" || env.EmployeeID != "e-1" || env.MessageID != fixedID {
			return errors.New("unexpected envelope header fields")
		}
		if env.Payload == nil || env.Payload.FirstName != "Anna" || env.Payload.Address.Zip != "62701" {
			return errors.New("unexpected payload")
		}
		if !env.Timestamp.Equal(at) {
			return errors.New("unexpected timestamp")
		}
		return nil
	})

	p := newTestProducer(t, sp)
	err := p.Notify(context.Background(), dto.EmployeeEvent{
		Kind:       dto.EventAddEmployee,
		EmployeeID: "e-1",
		Employee:   &dto.Employee{ID: "e-1", FirstName: "Anna", Zip: "62701"},
		At:         at,
	})

	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestNotify_RemoveHasNoPayload(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var raw map[string]any
		if err := json.Unmarshal(val, &raw); err != nil {
			return err
		}
		if _, has := raw["payload"]; has {
			return errors.New("remove event must not carry a payload")
		}
		return nil
	})

	p := newTestProducer(t, sp)

	require.NoError(t, p.Notify(context.Background(), dto.EmployeeEvent{Kind: dto.EventRemoveEmployee, EmployeeID: "e-1"}))
	require.NoError(t, p.Close())
}

func TestNotify_SendError(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newTestProducer(t, sp)
	err := p.Notify(context.Background(), dto.EmployeeEvent{Kind: dto.EventRemoveEmployee, EmployeeID: "e-1"})

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestNotify_NilProducer(t *testing.T) {
	var p *EmployeeProducer

	assert.NoError(t, p.Close())
	assert.Error(t, p.send(context.Background(), "k", nil, nil))
}
