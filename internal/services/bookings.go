package services

import (
	"context"
	"fmt"

	"github.com/harentsoaR/stayvista-api/internal/database"
	"github.com/harentsoaR/stayvista-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingService interface {
	Create(ctx context.Context, booking *models.Booking) (*models.InsertResult, error)
	Find(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	// Sales returns only the date and price of the matching bookings.
	Sales(ctx context.Context, filter models.BookingFilter) ([]models.Sale, error)
}

type bookingService struct {
	collection *mongo.Collection
}

func NewBookingService(db *mongo.Database) BookingService {
	return &bookingService{collection: db.Collection(database.BookingsCollection)}
}

func (s *bookingService) Create(ctx context.Context, booking *models.Booking) (*models.InsertResult, error) {
	booking.ID = primitive.NewObjectID()
	res, err := s.collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return insertResult(res), nil
}

func (s *bookingService) Find(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	cursor, err := s.collection.Find(ctx, bookingQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete booking %s: %w", id.Hex(), err)
	}
	return deleteResult(res), nil
}

func (s *bookingService) Sales(ctx context.Context, filter models.BookingFilter) ([]models.Sale, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0, "date": 1, "price": 1})
	cursor, err := s.collection.Find(ctx, bookingQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer cursor.Close(ctx)

	sales := make([]models.Sale, 0)
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}

func bookingQuery(filter models.BookingFilter) bson.M {
	query := bson.M{}
	if filter.HostEmail != "" {
		query["host.email"] = filter.HostEmail
	}
	if filter.GuestEmail != "" {
		query["guest.email"] = filter.GuestEmail
	}
	return query
}
