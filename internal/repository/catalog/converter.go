package repository

import (
	"github.com/yakkt/campervan-configurator/internal/model"
)

func ChassisEntityToModel(e *ChassisEntity) model.Chassis {
	return model.Chassis{
		ID:          e.ID,
		Name:        e.Name,
		BasePrice:   e.BasePrice,
		ModelURLs:   e.ModelURLs,
		Description: e.Description,
	}
}

func ChassisEntityFromModel(ch model.Chassis) *ChassisEntity {
	return &ChassisEntity{
		ID:          ch.ID,
		Name:        ch.Name,
		BasePrice:   ch.BasePrice,
		ModelURLs:   ch.ModelURLs,
		Description: ch.Description,
	}
}

func OptionEntityToModel(e *OptionEntity) model.Option {
	return model.Option{
		ID:            e.ID,
		Name:          e.Name,
		Price:         e.Price,
		ModelURLs:     e.ModelURLs,
		Category:      e.Category,
		SubCategory:   e.SubCategory,
		IsExclusive:   e.IsExclusive,
		ConflictsWith: e.ConflictsWith,
		DependsOn:     e.DependsOn,
		Description:   e.Description,
	}
}

func OptionEntityFromModel(opt model.Option) *OptionEntity {
	return &OptionEntity{
		ID:            opt.ID,
		Name:          opt.Name,
		Price:         opt.Price,
		ModelURLs:     opt.ModelURLs,
		Category:      opt.Category,
		SubCategory:   opt.SubCategory,
		IsExclusive:   opt.IsExclusive,
		ConflictsWith: opt.ConflictsWith,
		DependsOn:     opt.DependsOn,
		Description:   opt.Description,
	}
}
