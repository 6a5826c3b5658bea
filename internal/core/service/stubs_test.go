package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// In-memory repositories shared by the service tests. Each is a plain
// mutex-guarded slice with sequential string IDs.

type stubApartmentRepo struct {
	mu    sync.Mutex
	items []*domain.Apartment
}

func (r *stubApartmentRepo) Create(_ context.Context, a *domain.Apartment) (*domain.Apartment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *a
	c.ID = strconv.Itoa(len(r.items) + 1)
	r.items = append(r.items, &c)
	out := c
	return &out, nil
}

func (r *stubApartmentRepo) FindByID(_ context.Context, id string) (*domain.Apartment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, domain.ErrApartmentNotFound
}

func (r *stubApartmentRepo) Update(_ context.Context, a *domain.Apartment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.ID == a.ID {
			c := *a
			r.items[i] = &c
			return nil
		}
	}
	return domain.ErrApartmentNotFound
}

func (r *stubApartmentRepo) List(_ context.Context, filter ports.ListApartmentsFilter) ([]*domain.Apartment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Apartment
	for _, a := range r.items {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.OwnerID != "" && a.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Floor != nil && a.Floor != *filter.Floor {
			continue
		}
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

type stubBillRepo struct {
	mu    sync.Mutex
	items []*domain.Bill
}

func (r *stubBillRepo) Create(_ context.Context, b *domain.Bill) (*domain.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *b
	c.ID = strconv.Itoa(len(r.items) + 1)
	r.items = append(r.items, &c)
	out := c
	return &out, nil
}

func (r *stubBillRepo) FindByID(_ context.Context, id string) (*domain.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.items {
		if b.ID == id {
			c := *b
			return &c, nil
		}
	}
	return nil, domain.ErrBillNotFound
}

func (r *stubBillRepo) Update(_ context.Context, b *domain.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.ID == b.ID {
			c := *b
			r.items[i] = &c
			return nil
		}
	}
	return domain.ErrBillNotFound
}

func (r *stubBillRepo) List(_ context.Context, filter ports.ListBillsFilter) ([]*domain.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Bill
	for _, b := range r.items {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.ApartmentID != "" && b.ApartmentID != filter.ApartmentID {
			continue
		}
		if filter.OwnerID != "" && b.OwnerID != filter.OwnerID {
			continue
		}
		c := *b
		out = append(out, &c)
	}
	return out, nil
}

type stubMaintenanceRepo struct {
	mu    sync.Mutex
	items []*domain.MaintenanceRequest
}

func (r *stubMaintenanceRepo) Create(_ context.Context, req *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *req
	c.ID = strconv.Itoa(len(r.items) + 1)
	r.items = append(r.items, &c)
	out := c
	return &out, nil
}

func (r *stubMaintenanceRepo) FindByID(_ context.Context, id string) (*domain.MaintenanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.items {
		if req.ID == id {
			c := *req
			return &c, nil
		}
	}
	return nil, domain.ErrMaintenanceNotFound
}

func (r *stubMaintenanceRepo) Update(_ context.Context, req *domain.MaintenanceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.ID == req.ID {
			c := *req
			r.items[i] = &c
			return nil
		}
	}
	return domain.ErrMaintenanceNotFound
}

func (r *stubMaintenanceRepo) List(_ context.Context, filter ports.ListMaintenanceFilter) ([]*domain.MaintenanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.MaintenanceRequest
	for _, req := range r.items {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.ApartmentID != "" && req.ApartmentID != filter.ApartmentID {
			continue
		}
		if filter.RequesterID != "" && req.RequesterID != filter.RequesterID {
			continue
		}
		if filter.AssignedTo != "" && req.AssignedTo != filter.AssignedTo {
			continue
		}
		c := *req
		out = append(out, &c)
	}
	return out, nil
}

type stubExpenseRepo struct {
	mu    sync.Mutex
	items []*domain.Expense
}

func (r *stubExpenseRepo) Create(_ context.Context, e *domain.Expense) (*domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *e
	c.ID = strconv.Itoa(len(r.items) + 1)
	r.items = append(r.items, &c)
	out := c
	return &out, nil
}

func (r *stubExpenseRepo) FindByID(_ context.Context, id string) (*domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.ID == id {
			c := *e
			return &c, nil
		}
	}
	return nil, domain.ErrExpenseNotFound
}

func (r *stubExpenseRepo) Update(_ context.Context, e *domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.ID == e.ID {
			c := *e
			r.items[i] = &c
			return nil
		}
	}
	return domain.ErrExpenseNotFound
}

func (r *stubExpenseRepo) List(_ context.Context, filter ports.ListExpensesFilter) ([]*domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Expense
	for _, e := range r.items {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		c := *e
		out = append(out, &c)
	}
	return out, nil
}

type stubMeetingRepo struct {
	mu    sync.Mutex
	items []*domain.Meeting
}

// cloneMeeting deep-copies votes so callers cannot mutate stored state.
func cloneMeeting(m *domain.Meeting) *domain.Meeting {
	c := *m
	c.Votes = nil
	for _, v := range m.Votes {
		vc := *v
		vc.Ballots = make(map[string]string, len(v.Ballots))
		for k, val := range v.Ballots {
			vc.Ballots[k] = val
		}
		if v.Results != nil {
			vc.Results = make(map[string]int, len(v.Results))
			for k, val := range v.Results {
				vc.Results[k] = val
			}
		}
		c.Votes = append(c.Votes, &vc)
	}
	return &c
}

func (r *stubMeetingRepo) Create(_ context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := cloneMeeting(m)
	c.ID = strconv.Itoa(len(r.items) + 1)
	r.items = append(r.items, c)
	return cloneMeeting(c), nil
}

func (r *stubMeetingRepo) FindByID(_ context.Context, id string) (*domain.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.ID == id {
			return cloneMeeting(m), nil
		}
	}
	return nil, domain.ErrMeetingNotFound
}

func (r *stubMeetingRepo) Update(_ context.Context, m *domain.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.ID == m.ID {
			r.items[i] = cloneMeeting(m)
			return nil
		}
	}
	return domain.ErrMeetingNotFound
}

func (r *stubMeetingRepo) List(_ context.Context, filter ports.ListMeetingsFilter) ([]*domain.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Meeting
	for _, m := range r.items {
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, cloneMeeting(m))
	}
	return out, nil
}

// recordingGateway captures charges so tests can assert what was billed.
type recordingGateway struct {
	mu      sync.Mutex
	charges []float64
	fail    error
}

func (g *recordingGateway) Charge(_ context.Context, _ string, amount float64, _ string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fail != nil {
		return g.fail
	}
	g.charges = append(g.charges, amount)
	return nil
}
