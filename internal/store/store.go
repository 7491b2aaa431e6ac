// Package store keeps the authoritative list of employees and mirrors it into
// a durable slot after every change.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/rs/zerolog"
)

// State is also the exact shape written to the slot.
type State struct {
	Employees []dto.Employee `json:"employees"`
}

// Slot is a single named durable key/value cell.
// Load returns dto.ErrSlotEmpty when nothing was saved yet.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Notifier is told about every applied change after it has been persisted.
type Notifier interface {
	Notify(ctx context.Context, ev dto.EmployeeEvent) error
}

type Option func(*Store)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log.With().Str("component", "store").Logger()
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

type Store struct {
	mu       sync.Mutex
	state    State
	slot     Slot
	notifier Notifier
	now      func() time.Time
	log      zerolog.Logger
}

// New hydrates the store from slot. A missing or unreadable slot yields an
// empty list; the failure is logged and never returned.
func New(ctx context.Context, slot Slot, opts ...Option) *Store {
	s := &Store{
		slot: slot,
		now:  time.Now,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = s.hydrate(ctx)

	return s
}

func (s *Store) hydrate(ctx context.Context) State {
	empty := State{Employees: []dto.Employee{}}

	raw, err := s.slot.Load(ctx)
	if errors.Is(err, dto.ErrSlotEmpty) {
		s.log.Info().Msg("no existing state in slot, starting empty")
		return empty
	}
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load state from slot")
		return empty
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		s.log.Error().Err(err).Msg("failed to parse state from slot")
		return empty
	}
	if st.Employees == nil {
		st.Employees = []dto.Employee{}
	}

	s.log.Info().Int("employees", len(st.Employees)).Msg("state loaded from slot")

	return st
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{Employees: slices.Clone(s.state.Employees)}
}

// Find returns dto.ErrNotFound when no employee has the id.
func (s *Store) Find(id string) (dto.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.state.Employees, id); i >= 0 {
		return s.state.Employees[i], nil
	}

	return dto.Employee{}, dto.ErrNotFound
}

// Dispatch applies action and returns the resulting state. When the action
// changes the list, the full state is written to the slot and the notifier is
// called; failures of either are logged only.
func (s *Store) Dispatch(ctx context.Context, action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := action.apply(s.state.Employees)
	if !changed {
		s.log.Debug().
			Str("action", string(action.kind())).
			Str("employee_id", action.employeeID()).
			Msg("action matched no employee, state unchanged")

		return State{Employees: slices.Clone(s.state.Employees)}
	}

	s.state = State{Employees: next}
	s.persist(ctx)

	if s.notifier != nil {
		ev := dto.EmployeeEvent{
			Kind:       action.kind(),
			EmployeeID: action.employeeID(),
			Employee:   action.payload(),
			At:         s.now().UTC(),
		}
		if err := s.notifier.Notify(ctx, ev); err != nil {
			s.log.Error().Err(err).Str("action", string(ev.Kind)).Msg("notifier failed")
		}
	}

	return State{Employees: slices.Clone(s.state.Employees)}
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to serialize state")
		return
	}

	if err := s.slot.Save(ctx, data); err != nil {
		s.log.Error().Err(err).Msg("failed to save state to slot")
		return
	}

	s.log.Debug().Int("employees", len(s.state.Employees)).Int("bytes", len(data)).Msg("state saved to slot")
}
