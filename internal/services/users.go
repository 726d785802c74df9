package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harentsoaR/stayvista-api/internal/database"
	"github.com/harentsoaR/stayvista-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUserExists is returned by Upsert when a concurrent insert for the same
// email won the unique index.
var ErrUserExists = errors.New("user already exists")

type UserService interface {
	// FindByEmail returns nil, nil when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) (*models.UpdateResult, error)
	UpdateStatus(ctx context.Context, email, status string) (*models.UpdateResult, error)
	Update(ctx context.Context, email string, update models.UserUpdate) (*models.UpdateResult, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

type userService struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewUserService(db *mongo.Database) UserService {
	return &userService{
		collection: db.Collection(database.UsersCollection),
		now:        time.Now,
	}
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %q: %w", email, err)
	}
	return &user, nil
}

func (s *userService) Upsert(ctx context.Context, user *models.User) (*models.UpdateResult, error) {
	doc := *user
	doc.ID = primitive.NilObjectID
	doc.Timestamp = s.now().UnixMilli()

	res, err := s.collection.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, upsertError(user.Email, err)
	}
	return updateResult(res), nil
}

func upsertError(email string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("upsert user %q: %w", email, ErrUserExists)
	}
	return fmt.Errorf("upsert user %q: %w", email, err)
}

func (s *userService) UpdateStatus(ctx context.Context, email, status string) (*models.UpdateResult, error) {
	res, err := s.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return nil, fmt.Errorf("update status of %q: %w", email, err)
	}
	return updateResult(res), nil
}

func (s *userService) Update(ctx context.Context, email string, update models.UserUpdate) (*models.UpdateResult, error) {
	set := bson.M{"timestamp": s.now().UnixMilli()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	res, err := s.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update user %q: %w", email, err)
	}
	return updateResult(res), nil
}

func (s *userService) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *userService) Count(ctx context.Context) (int64, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
