package services_test

import (
	"testing"

	"github.com/harentsoaR/stayvista-api/internal/database"
	"github.com/harentsoaR/stayvista-api/internal/models"
	"github.com/harentsoaR/stayvista-api/internal/services"
	"github.com/harentsoaR/stayvista-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserService_UpsertThenRequest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	require.NoError(t, database.EnsureIndexes(ctx, db))

	users := services.NewUserService(db)

	res, err := users.Upsert(ctx, &models.User{Email: "guest@example.com", Name: "Guest", Role: models.RoleGuest, Status: models.StatusVerified})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UpsertedCount)

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	res, err = users.UpdateStatus(ctx, "guest@example.com", models.StatusRequested)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	user, err := users.FindByEmail(ctx, "guest@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.StatusRequested, user.Status)
	assert.Equal(t, "Guest", user.Name)
	assert.Equal(t, models.RoleGuest, user.Role)
	assert.NotZero(t, user.Timestamp)

	missing, err := users.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	users := services.NewUserService(db)
	_, err := users.Upsert(ctx, &models.User{Email: "guest@example.com", Role: models.RoleGuest})
	require.NoError(t, err)

	role := models.RoleHost
	res, err := users.Update(ctx, "guest@example.com", models.UserUpdate{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	all, err := users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.RoleHost, all[0].Role)
}

func TestRoomService_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rooms := services.NewRoomService(db)
	host := models.HostInfo{Email: "host@example.com", Name: "Host"}

	res, err := rooms.Create(ctx, &models.Room{Title: "Beach hut", Category: "Beach", Price: 120, Host: host})
	require.NoError(t, err)
	id, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok)
	_, err = rooms.Create(ctx, &models.Room{Title: "Cabin", Category: "Countryside", Price: 80, Host: models.HostInfo{Email: "other@example.com"}})
	require.NoError(t, err)

	beach, err := rooms.FindAll(ctx, "Beach")
	require.NoError(t, err)
	assert.Len(t, beach, 1)

	all, err := rooms.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := rooms.FindByHost(ctx, "host@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	count, err := rooms.Count(ctx, "host@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	title := "Beach villa"
	_, err = rooms.Update(ctx, id, models.RoomUpdate{Title: &title})
	require.NoError(t, err)
	_, err = rooms.SetBooked(ctx, id, true)
	require.NoError(t, err)

	room, err := rooms.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, "Beach villa", room.Title)
	assert.True(t, room.Booked)

	del, err := rooms.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	room, err = rooms.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, room)
}

func TestBookingService_FiltersAndSales(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	bookings := services.NewBookingService(db)
	for _, b := range []models.Booking{
		{Host: models.HostInfo{Email: "host@example.com"}, Guest: models.GuestInfo{Email: "g1@example.com"}, Date: "2024-01-05", Price: 100},
		{Host: models.HostInfo{Email: "host@example.com"}, Guest: models.GuestInfo{Email: "g2@example.com"}, Date: "2024-02-10", Price: 50},
		{Host: models.HostInfo{Email: "other@example.com"}, Guest: models.GuestInfo{Email: "g1@example.com"}, Date: "2024-03-01", Price: 70},
	} {
		b := b
		_, err := bookings.Create(ctx, &b)
		require.NoError(t, err)
	}

	hostBookings, err := bookings.Find(ctx, models.BookingFilter{HostEmail: "host@example.com"})
	require.NoError(t, err)
	assert.Len(t, hostBookings, 2)

	guestBookings, err := bookings.Find(ctx, models.BookingFilter{GuestEmail: "g1@example.com"})
	require.NoError(t, err)
	assert.Len(t, guestBookings, 2)

	sales, err := bookings.Sales(ctx, models.BookingFilter{HostEmail: "host@example.com"})
	require.NoError(t, err)
	report := services.BuildSalesReport(sales)
	assert.Equal(t, 150.0, report.TotalPrice)

	del, err := bookings.Delete(ctx, hostBookings[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
}
