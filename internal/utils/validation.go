package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterValidators adds the custom tags used in request structs to
// gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("objectid", objectIDField)
}

// Allows only 24 character hex strings
func objectIDField(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}
