package database_test

import (
	"context"
	"testing"

	"github.com/harentsoaR/stayvista-api/internal/database"
	"github.com/harentsoaR/stayvista-api/internal/logging"
	"github.com/harentsoaR/stayvista-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConnect_InvalidURI(t *testing.T) {
	_, _, err := database.Connect(context.Background(), "not-a-mongo-uri", "stayvista", logging.Discard())
	assert.Error(t, err)
}

func TestEnsureIndexes_EmailIsUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	require.NoError(t, database.EnsureIndexes(ctx, db))
	require.NoError(t, database.EnsureIndexes(ctx, db))

	users := db.Collection(database.UsersCollection)
	_, err := users.InsertOne(ctx, bson.M{"email": "dup@example.com"})
	require.NoError(t, err)
	_, err = users.InsertOne(ctx, bson.M{"email": "dup@example.com"})
	assert.True(t, mongo.IsDuplicateKeyError(err))
}
