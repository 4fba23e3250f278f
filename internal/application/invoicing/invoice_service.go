package invoicing

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobilitree/backend/internal/domain/invoicing"
	"github.com/mobilitree/backend/internal/domain/parking"
	"github.com/mobilitree/backend/internal/domain/shared"
	"github.com/mobilitree/backend/internal/domain/shared/valueobject"
	"github.com/mobilitree/backend/internal/domain/tariff"
	"go.uber.org/zap"
)

// InvoiceService computes per-customer invoices for a parking facility.
// It reads immutable snapshots of sessions and schedules through its
// repositories and holds no state of its own, so one instance serves
// concurrent requests.
type InvoiceService struct {
	sessionRepo  parking.SessionRepository
	scheduleRepo tariff.ScheduleRepository
	customerRepo parking.CustomerRepository
	engine       *invoicing.PricingEngine
	logger       *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	sessionRepo parking.SessionRepository,
	scheduleRepo tariff.ScheduleRepository,
	customerRepo parking.CustomerRepository,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		sessionRepo:  sessionRepo,
		scheduleRepo: scheduleRepo,
		customerRepo: customerRepo,
		engine:       invoicing.NewPricingEngine(),
		logger:       logger,
	}
}

// GetInvoices returns one invoice per customer that has at least one
// session at the facility, each amount being the sum of that customer's
// session prices. A facility without a tariff schedule is an invalid
// argument; a facility without sessions yields an empty list. Any pricing
// failure aborts the whole call: the caller sees either a complete
// invoice list or a typed error, never a partial result.
func (s *InvoiceService) GetInvoices(ctx context.Context, facilityID string) ([]invoicing.Invoice, error) {
	schedule, err := s.resolveSchedule(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.GetSessions(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]valueobject.Money)
	order := make([]string, 0, len(sessions))
	for i := range sessions {
		session := &sessions[i]
		amount, err := s.engine.Price(session, schedule)
		if err != nil {
			s.logger.Error("Pricing aborted",
				zap.String("facility_id", facilityID),
				zap.String("customer_id", session.CustomerID),
				zap.Error(err),
			)
			return nil, err
		}
		if current, ok := totals[session.CustomerID]; ok {
			totals[session.CustomerID] = current.MustAdd(amount)
		} else {
			totals[session.CustomerID] = amount
			order = append(order, session.CustomerID)
		}
	}

	invoices := make([]invoicing.Invoice, 0, len(order))
	for _, customerID := range order {
		invoices = append(invoices, invoicing.NewInvoice(facilityID, customerID, totals[customerID]))
	}

	s.logger.Debug("Invoices computed",
		zap.String("facility_id", facilityID),
		zap.Int("sessions", len(sessions)),
		zap.Int("invoices", len(invoices)),
	)
	return invoices, nil
}

// GetInvoice returns the invoice for a single customer at a facility. It
// runs the same aggregation path filtered to one customer; a customer
// with no sessions at the facility is a NOT_FOUND error rather than a
// zero-amount invoice.
func (s *InvoiceService) GetInvoice(ctx context.Context, facilityID, customerID string) (invoicing.Invoice, error) {
	schedule, err := s.resolveSchedule(ctx, facilityID)
	if err != nil {
		return invoicing.Invoice{}, err
	}

	sessions, err := s.sessionRepo.GetSessions(ctx, facilityID)
	if err != nil {
		return invoicing.Invoice{}, err
	}

	total := valueobject.ZeroEUR()
	matched := false
	for i := range sessions {
		session := &sessions[i]
		if session.CustomerID != customerID {
			continue
		}
		amount, err := s.engine.Price(session, schedule)
		if err != nil {
			return invoicing.Invoice{}, err
		}
		total = total.MustAdd(amount)
		matched = true
	}

	if !matched {
		return invoicing.Invoice{}, shared.NewDomainError("NOT_FOUND",
			fmt.Sprintf("No sessions for customer '%s' at parking facility '%s'", customerID, facilityID))
	}
	return invoicing.NewInvoice(facilityID, customerID, total), nil
}

// resolveSchedule maps an unknown facility onto the stable
// invalid-argument error the invoicing contract promises.
func (s *InvoiceService) resolveSchedule(ctx context.Context, facilityID string) (*tariff.TariffSchedule, error) {
	schedule, err := s.scheduleRepo.GetSchedule(ctx, facilityID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewInvalidFacilityError(facilityID)
		}
		return nil, err
	}
	return schedule, nil
}
