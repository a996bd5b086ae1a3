// Package memory is a process-local Template Store, used for tests and for
// STORE_DRIVER=memory.
package memory

import (
	"context"
	"errors"
	"sync"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase/interfaces"
)

var errDuplicatePayment = errors.New("payment id already exists")

type Store struct {
	mu        sync.Mutex
	seeded    bool
	templates []entities.ChecklistTemplate
	orders    []entities.ServiceOrder
	payments  []entities.OrderPayment
}

var (
	_ interfaces.ITemplateStore          = (*Store)(nil)
	_ interfaces.IOrderPaymentRepository = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) LoadTemplates(_ context.Context) ([]entities.ChecklistTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
	out := make([]entities.ChecklistTemplate, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (s *Store) SaveTemplate(_ context.Context, t entities.ChecklistTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
	for i := range s.templates {
		if s.templates[i].ID == t.ID {
			s.templates[i] = t.Clone()
			return nil
		}
	}
	s.templates = append(s.templates, t.Clone())
	return nil
}

func (s *Store) LoadOrders(_ context.Context) ([]entities.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.ServiceOrder, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (s *Store) AppendOrder(_ context.Context, o entities.ServiceOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o.Clone())
	return nil
}

func (s *Store) Create(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.payments {
		if existing.ID == p.ID {
			return entities.OrderPayment{}, interfaces.NewStoreError("create", "payment", p.ID, errDuplicatePayment)
		}
	}
	s.payments = append(s.payments, p)
	return p, nil
}

// GetByID returns the zero payment when id is unknown.
func (s *Store) GetByID(_ context.Context, id string) (entities.OrderPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.OrderPayment{}, nil
}

func (s *Store) ListByOrderID(_ context.Context, orderID string) ([]entities.OrderPayment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.OrderPayment, 0)
	for _, p := range s.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

// seedLocked installs the presets the first time the store is used.
func (s *Store) seedLocked() {
	if s.seeded {
		return
	}
	s.seeded = true
	if len(s.templates) == 0 {
		s.templates = entities.DefaultTemplates()
	}
}
