// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finnews/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_type", validateAssetType)
		_ = v.RegisterValidation("sentiment_score", validateSentimentScore)
		_ = v.RegisterValidation("unit_interval", validateUnitInterval)
	}
}

func validateAssetType(fl validator.FieldLevel) bool {
	return models.AssetType(fl.Field().String()).Valid()
}

// validateSentimentScore accepts values in [-1, 1].
func validateSentimentScore(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= -1 && v <= 1
}

// validateUnitInterval accepts values in [0, 1].
func validateUnitInterval(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= 0 && v <= 1
}
