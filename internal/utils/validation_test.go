package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type idParam struct {
	ID string `uri:"id" binding:"required,objectid"`
}

func TestRegisterValidators_ObjectID(t *testing.T) {
	require.NoError(t, RegisterValidators())

	assert.NoError(t, binding.Validator.ValidateStruct(idParam{ID: primitive.NewObjectID().Hex()}))
	assert.Error(t, binding.Validator.ValidateStruct(idParam{ID: "not-an-id"}))
	assert.Error(t, binding.Validator.ValidateStruct(idParam{ID: ""}))
}
