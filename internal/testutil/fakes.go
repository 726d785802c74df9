package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/harentsoaR/stayvista-api/internal/models"
	"github.com/harentsoaR/stayvista-api/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrStore is returned by fakes whose Fail flag is set.
var ErrStore = errors.New("store unavailable")

// Users is an in-memory services.UserService.
type Users struct {
	mu    sync.Mutex
	byKey map[string]models.User
	Fail  bool
	// LoseUpsertRace makes Upsert store the user as if a concurrent
	// request inserted it first, then report the duplicate.
	LoseUpsertRace bool
}

func NewUsers(users ...models.User) *Users {
	u := &Users{byKey: map[string]models.User{}}
	for _, user := range users {
		if user.ID.IsZero() {
			user.ID = primitive.NewObjectID()
		}
		u.byKey[user.Email] = user
	}
	return u
}

func (u *Users) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.byKey)
}

func (u *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Fail {
		return nil, ErrStore
	}
	user, ok := u.byKey[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (u *Users) Upsert(_ context.Context, user *models.User) (*models.UpdateResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Fail {
		return nil, ErrStore
	}
	doc := *user
	doc.Timestamp = time.Now().UnixMilli()
	if u.LoseUpsertRace {
		doc.ID = primitive.NewObjectID()
		u.byKey[user.Email] = doc
		return nil, services.ErrUserExists
	}
	if existing, ok := u.byKey[user.Email]; ok {
		doc.ID = existing.ID
		u.byKey[user.Email] = doc
		return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	doc.ID = primitive.NewObjectID()
	u.byKey[user.Email] = doc
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: doc.ID}, nil
}

func (u *Users) UpdateStatus(_ context.Context, email, status string) (*models.UpdateResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Fail {
		return nil, ErrStore
	}
	user, ok := u.byKey[email]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	user.Status = status
	u.byKey[email] = user
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (u *Users) Update(_ context.Context, email string, update models.UserUpdate) (*models.UpdateResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Fail {
		return nil, ErrStore
	}
	user, ok := u.byKey[email]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Image != nil {
		user.Image = *update.Image
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.Status != nil {
		user.Status = *update.Status
	}
	user.Timestamp = time.Now().UnixMilli()
	u.byKey[email] = user
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (u *Users) FindAll(context.Context) ([]models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Fail {
		return nil, ErrStore
	}
	users := make([]models.User, 0, len(u.byKey))
	for _, user := range u.byKey {
		users = append(users, user)
	}
	return users, nil
}

func (u *Users) Count(context.Context) (int64, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Fail {
		return 0, ErrStore
	}
	return int64(len(u.byKey)), nil
}

// Rooms is an in-memory services.RoomService.
type Rooms struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]models.Room
	order []primitive.ObjectID
	Fail  bool
}

func NewRooms(rooms ...models.Room) *Rooms {
	r := &Rooms{byID: map[primitive.ObjectID]models.Room{}}
	for _, room := range rooms {
		r.put(room)
	}
	return r
}

func (r *Rooms) put(room models.Room) primitive.ObjectID {
	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}
	if _, ok := r.byID[room.ID]; !ok {
		r.order = append(r.order, room.ID)
	}
	r.byID[room.ID] = room
	return room.ID
}

func (r *Rooms) match(pred func(models.Room) bool) []models.Room {
	out := make([]models.Room, 0)
	for _, id := range r.order {
		if room, ok := r.byID[id]; ok && pred(room) {
			out = append(out, room)
		}
	}
	return out
}

func (r *Rooms) FindAll(_ context.Context, category string) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStore
	}
	return r.match(func(room models.Room) bool {
		return category == "" || room.Category == category
	}), nil
}

func (r *Rooms) FindByID(_ context.Context, id primitive.ObjectID) (*models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStore
	}
	room, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (r *Rooms) FindByHost(_ context.Context, email string) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStore
	}
	return r.match(func(room models.Room) bool { return room.Host.Email == email }), nil
}

func (r *Rooms) Create(_ context.Context, room *models.Room) (*models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStore
	}
	room.ID = primitive.NewObjectID()
	id := r.put(*room)
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *Rooms) Update(_ context.Context, id primitive.ObjectID, update models.RoomUpdate) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStore
	}
	room, ok := r.byID[id]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	if update.Title != nil {
		room.Title = *update.Title
	}
	if update.Price != nil {
		room.Price = *update.Price
	}
	if update.Category != nil {
		room.Category = *update.Category
	}
	if update.Location != nil {
		room.Location = *update.Location
	}
	if update.Description != nil {
		room.Description = *update.Description
	}
	r.byID[id] = room
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *Rooms) SetBooked(_ context.Context, id primitive.ObjectID, booked bool) (*models.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStore
	}
	room, ok := r.byID[id]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	modified := int64(0)
	if room.Booked != booked {
		modified = 1
	}
	room.Booked = booked
	r.byID[id] = room
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

func (r *Rooms) Delete(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStore
	}
	if _, ok := r.byID[id]; !ok {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	delete(r.byID, id)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (r *Rooms) Count(_ context.Context, hostEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return 0, ErrStore
	}
	return int64(len(r.match(func(room models.Room) bool {
		return hostEmail == "" || room.Host.Email == hostEmail
	}))), nil
}

// Bookings is an in-memory services.BookingService.
type Bookings struct {
	mu       sync.Mutex
	bookings []models.Booking
	Fail     bool
}

func NewBookings(bookings ...models.Booking) *Bookings {
	b := &Bookings{}
	for _, booking := range bookings {
		if booking.ID.IsZero() {
			booking.ID = primitive.NewObjectID()
		}
		b.bookings = append(b.bookings, booking)
	}
	return b
}

func (b *Bookings) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bookings)
}

func (b *Bookings) filter(f models.BookingFilter) []models.Booking {
	out := make([]models.Booking, 0)
	for _, booking := range b.bookings {
		if f.HostEmail != "" && booking.Host.Email != f.HostEmail {
			continue
		}
		if f.GuestEmail != "" && booking.Guest.Email != f.GuestEmail {
			continue
		}
		out = append(out, booking)
	}
	return out
}

func (b *Bookings) Create(_ context.Context, booking *models.Booking) (*models.InsertResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Fail {
		return nil, ErrStore
	}
	booking.ID = primitive.NewObjectID()
	b.bookings = append(b.bookings, *booking)
	return &models.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

func (b *Bookings) Find(_ context.Context, f models.BookingFilter) ([]models.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Fail {
		return nil, ErrStore
	}
	return b.filter(f), nil
}

func (b *Bookings) Delete(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Fail {
		return nil, ErrStore
	}
	for i, booking := range b.bookings {
		if booking.ID == id {
			b.bookings = append(b.bookings[:i], b.bookings[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true}, nil
}

func (b *Bookings) Sales(_ context.Context, f models.BookingFilter) ([]models.Sale, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Fail {
		return nil, ErrStore
	}
	sales := make([]models.Sale, 0)
	for _, booking := range b.filter(f) {
		sales = append(sales, models.Sale{Date: booking.Date, Price: booking.Price})
	}
	return sales, nil
}

// Payments records every amount sent to the gateway.
type Payments struct {
	mu      sync.Mutex
	Amounts []int64
	Secret  string
	Err     error
}

func (p *Payments) CreatePaymentIntent(_ context.Context, amount int64) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Amounts = append(p.Amounts, amount)
	if p.Err != nil {
		return "", p.Err
	}
	return p.Secret, nil
}

func (p *Payments) Calls() []int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int64(nil), p.Amounts...)
}
