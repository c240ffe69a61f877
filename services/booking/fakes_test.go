package booking_test

import (
	"context"
	"sync"
	"time"

	bookingRepo "homestay/database/repository/booking"
	"homestay/models"
	"homestay/services/booking"
)

const (
	testHostID     = "host-1"
	testGuestID    = "guest-1"
	testAdminID    = "admin-1"
	testStrangerID = "stranger-1"
)

// fakeBookingRepo is an in-memory BookingRepository. CreateTransactionally
// re-runs the overlap check under the repo mutex, matching the atomicity
// the Mongo implementation gets from its session transaction.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) CreateTransactionally(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.PropertyID == b.PropertyID && existing.Active() &&
			booking.RangesOverlap(b.CheckIn, b.CheckOut, existing.CheckIn, existing.CheckOut) {
			return bookingRepo.ErrOverlap
		}
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) FindOverlapping(propertyID string, checkIn, checkOut time.Time, excludeID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PropertyID != propertyID || !b.Active() || b.ID == excludeID {
			continue
		}
		if booking.RangesOverlap(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByGuest(guestID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.GuestID == guestID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByProperty(propertyID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PropertyID == propertyID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakePropertyRepo struct {
	properties map[string]*models.Property
}

func (r *fakePropertyRepo) Create(p *models.Property) error {
	r.properties[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) GetByID(id string) (*models.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePropertyRepo) GetByHost(hostID string) ([]models.Property, error) {
	var out []models.Property
	for _, p := range r.properties {
		if p.HostID == hostID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) Update(p *models.Property) error {
	r.properties[p.ID] = p
	return nil
}

func (r *fakePropertyRepo) Delete(id string) error {
	delete(r.properties, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) SetTokenHash(id, tokenHash string) error {
	if u, ok := r.users[id]; ok {
		u.TokenHash = tokenHash
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// fakePayments records charge and refund calls.
type fakePayments struct {
	mu      sync.Mutex
	charges int
	refunds int
}

func (p *fakePayments) Charge(ctx context.Context, b *models.Booking, prop *models.Property) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.charges++
	return "pay_test_" + b.ID, nil
}

func (p *fakePayments) Refund(ctx context.Context, b *models.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refunds++
	return nil
}

// fakeReminders records scheduled check-in reminders.
type fakeReminders struct {
	mu        sync.Mutex
	scheduled []string
}

func (f *fakeReminders) ScheduleCheckInReminder(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, b.ID)
	return nil
}

// newTestService wires a booking service backed by in-memory stores, seeded
// with one property and its host, a guest, a bystander and an admin.
func newTestService(propertyID string) (*booking.DefaultBookingService, *fakeBookingRepo, *fakePayments, *fakeReminders) {
	repo := newFakeBookingRepo()
	payments := &fakePayments{}
	reminders := &fakeReminders{}

	props := &fakePropertyRepo{properties: map[string]*models.Property{
		propertyID: {
			ID:           propertyID,
			HostID:       testHostID,
			Title:        "Sea Loft",
			City:         "Lisbon",
			Country:      "PT",
			NightlyPrice: 100,
			MaxGuests:    4,
			Currency:     "EUR",
			IsActive:     true,
		},
	}}
	users := &fakeUserRepo{users: map[string]*models.User{
		testHostID:     {ID: testHostID, Name: "Hana Host", Email: "hana@example.com"},
		testGuestID:    {ID: testGuestID, Name: "Gary Guest", Email: "gary@example.com"},
		testStrangerID: {ID: testStrangerID, Name: "Sam Stranger", Email: "sam@example.com"},
		testAdminID:    {ID: testAdminID, Name: "Ada Admin", Email: "ada@example.com", IsAdmin: true},
	}}

	svc := &booking.DefaultBookingService{
		Repo:         repo,
		PropertyRepo: props,
		UserRepo:     users,
		Payments:     payments,
		Reminders:    reminders,
	}
	return svc, repo, payments, reminders
}
