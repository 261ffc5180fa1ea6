package repository

import (
	"github.com/yakkt/campervan-configurator/internal/model"
)

type ChassisEntity struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"name"`
	BasePrice   float64  `bson:"base_price"`
	ModelURLs   []string `bson:"model_urls,omitempty"`
	Description string   `bson:"description,omitempty"`
}

type OptionEntity struct {
	ID            string            `bson:"_id"`
	Name          string            `bson:"name"`
	Price         float64           `bson:"price"`
	ModelURLs     []string          `bson:"model_urls,omitempty"`
	Category      model.Category    `bson:"category"`
	SubCategory   model.SubCategory `bson:"sub_category,omitempty"`
	IsExclusive   bool              `bson:"is_exclusive"`
	ConflictsWith []string          `bson:"conflicts_with,omitempty"`
	DependsOn     []string          `bson:"depends_on,omitempty"`
	Description   string            `bson:"description,omitempty"`
}
