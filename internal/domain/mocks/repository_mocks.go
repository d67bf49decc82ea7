package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Tickatch/log-service/internal/domain"
)

// MockEventLogRepository is a mock implementation of domain.EventLogRepository
// and domain.EventLogQueryRepository for testing.
type MockEventLogRepository struct {
	mu         sync.Mutex
	SavedLogs  []domain.EventLog
	FindOne    *domain.EventLog
	ListResult domain.Page[domain.EventLog]
	LastCond   domain.EventLogSearchCondition
	LastReq    domain.PageRequest
	SaveErr    error
	FindErr    error
	ListErr    error
}

func (m *MockEventLogRepository) Save(ctx context.Context, log domain.EventLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SavedLogs = append(m.SavedLogs, log)
	return nil
}

func (m *MockEventLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.EventLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.FindOne, nil
}

func (m *MockEventLogRepository) FindList(ctx context.Context, cond domain.EventLogSearchCondition, req domain.PageRequest) (domain.Page[domain.EventLog], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastCond = cond
	m.LastReq = req
	if m.ListErr != nil {
		return domain.Page[domain.EventLog]{}, m.ListErr
	}
	return m.ListResult, nil
}

// MockDomainLogRepository is a mock implementation of
// domain.DomainLogRepository for testing.
type MockDomainLogRepository struct {
	mu                  sync.Mutex
	AuthLogs            []domain.AuthLog
	UserLogs            []domain.UserLog
	ProductLogs         []domain.ProductLog
	ArtHallLogs         []domain.ArtHallLog
	ReservationLogs     []domain.ReservationLog
	ReservationSeatLogs []domain.ReservationSeatLog
	TicketLogs          []domain.TicketLog
	PaymentLogs         []domain.PaymentLog
	SaveErr             error
}

func (m *MockDomainLogRepository) SaveAuthLog(ctx context.Context, log domain.AuthLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.AuthLogs = append(m.AuthLogs, log)
	return nil
}

func (m *MockDomainLogRepository) SaveUserLog(ctx context.Context, log domain.UserLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.UserLogs = append(m.UserLogs, log)
	return nil
}

func (m *MockDomainLogRepository) SaveProductLog(ctx context.Context, log domain.ProductLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.ProductLogs = append(m.ProductLogs, log)
	return nil
}

func (m *MockDomainLogRepository) SaveArtHallLog(ctx context.Context, log domain.ArtHallLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.ArtHallLogs = append(m.ArtHallLogs, log)
	return nil
}

func (m *MockDomainLogRepository) SaveReservationLog(ctx context.Context, log domain.ReservationLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.ReservationLogs = append(m.ReservationLogs, log)
	return nil
}

func (m *MockDomainLogRepository) SaveReservationSeatLog(ctx context.Context, log domain.ReservationSeatLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.ReservationSeatLogs = append(m.ReservationSeatLogs, log)
	return nil
}

func (m *MockDomainLogRepository) SaveTicketLog(ctx context.Context, log domain.TicketLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.TicketLogs = append(m.TicketLogs, log)
	return nil
}

func (m *MockDomainLogRepository) SavePaymentLog(ctx context.Context, log domain.PaymentLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.PaymentLogs = append(m.PaymentLogs, log)
	return nil
}
