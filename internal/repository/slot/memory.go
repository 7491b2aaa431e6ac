// Package slot holds the durable single-cell backends the employee store
// mirrors its state into.
package slot

import (
	"context"
	"slices"
	"sync"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

// Memory keeps the slot in process memory. Used by tests and the "memory" driver.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saved bool
	err   error
}

func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith returns a slot that already holds data.
func NewMemoryWith(data []byte) *Memory {
	return &Memory{data: slices.Clone(data), saved: true}
}

// FailWith makes every following Load and Save return err.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if !m.saved {
		return nil, dto.ErrSlotEmpty
	}

	return slices.Clone(m.data), nil
}

func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.data = slices.Clone(data)
	m.saved = true

	return nil
}
