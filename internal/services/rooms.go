package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/stayvista-api/internal/database"
	"github.com/harentsoaR/stayvista-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoomService interface {
	// FindAll lists rooms, filtered by category when category is non-empty.
	FindAll(ctx context.Context, category string) ([]models.Room, error)
	// FindByID returns nil, nil when the room does not exist.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error)
	FindByHost(ctx context.Context, email string) ([]models.Room, error)
	Create(ctx context.Context, room *models.Room) (*models.InsertResult, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.RoomUpdate) (*models.UpdateResult, error)
	SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	// Count counts every room, or only the host's when hostEmail is set.
	Count(ctx context.Context, hostEmail string) (int64, error)
}

type roomService struct {
	collection *mongo.Collection
}

func NewRoomService(db *mongo.Database) RoomService {
	return &roomService{collection: db.Collection(database.RoomsCollection)}
}

func (s *roomService) FindAll(ctx context.Context, category string) ([]models.Room, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return s.find(ctx, filter)
}

func (s *roomService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	var room models.Room
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find room %s: %w", id.Hex(), err)
	}
	return &room, nil
}

func (s *roomService) FindByHost(ctx context.Context, email string) ([]models.Room, error) {
	return s.find(ctx, bson.M{"host.email": email})
}

func (s *roomService) Create(ctx context.Context, room *models.Room) (*models.InsertResult, error) {
	room.ID = primitive.NewObjectID()
	res, err := s.collection.InsertOne(ctx, room)
	if err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return insertResult(res), nil
}

func (s *roomService) Update(ctx context.Context, id primitive.ObjectID, update models.RoomUpdate) (*models.UpdateResult, error) {
	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update.Fields()})
	if err != nil {
		return nil, fmt.Errorf("update room %s: %w", id.Hex(), err)
	}
	return updateResult(res), nil
}

func (s *roomService) SetBooked(ctx context.Context, id primitive.ObjectID, booked bool) (*models.UpdateResult, error) {
	res, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"booked": booked}})
	if err != nil {
		return nil, fmt.Errorf("set booked on room %s: %w", id.Hex(), err)
	}
	return updateResult(res), nil
}

func (s *roomService) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete room %s: %w", id.Hex(), err)
	}
	return deleteResult(res), nil
}

func (s *roomService) Count(ctx context.Context, hostEmail string) (int64, error) {
	filter := bson.M{}
	if hostEmail != "" {
		filter["host.email"] = hostEmail
	}
	n, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return n, nil
}

func (s *roomService) find(ctx context.Context, filter bson.M) ([]models.Room, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := make([]models.Room, 0)
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	return rooms, nil
}
