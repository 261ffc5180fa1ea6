package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/yakkt/campervan-configurator/internal/model"
)

type repository struct {
	chassisColl *mongo.Collection
	optionsColl *mongo.Collection
}

func NewCatalogRepository(chassisColl, optionsColl *mongo.Collection) *repository {
	return &repository{chassisColl: chassisColl, optionsColl: optionsColl}
}

func (r *repository) ListChassis(ctx context.Context) ([]model.Chassis, error) {
	const op = "repository.ListChassis"

	cur, err := r.chassisColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]model.Chassis, 0)
	for cur.Next(ctx) {
		var ent ChassisEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, ChassisEntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) ListOptions(ctx context.Context) ([]model.Option, error) {
	const op = "repository.ListOptions"

	cur, err := r.optionsColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]model.Option, 0)
	for cur.Next(ctx) {
		var ent OptionEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, OptionEntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

// ReplaceAll swaps the stored catalog wholesale: both collections are cleared
// and refilled.
func (r *repository) ReplaceAll(ctx context.Context, chassis []model.Chassis, opts []model.Option) error {
	const op = "repository.ReplaceAll"

	if _, err := r.chassisColl.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("%s clear chassis: %w", op, err)
	}
	if _, err := r.optionsColl.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("%s clear options: %w", op, err)
	}

	chassisDocs := make([]any, 0, len(chassis))
	for _, ch := range chassis {
		if ch.ID == "" {
			return fmt.Errorf("%s: chassis ID is empty", op)
		}
		chassisDocs = append(chassisDocs, ChassisEntityFromModel(ch))
	}
	optionDocs := make([]any, 0, len(opts))
	for _, opt := range opts {
		if opt.ID == "" {
			return fmt.Errorf("%s: option ID is empty", op)
		}
		optionDocs = append(optionDocs, OptionEntityFromModel(opt))
	}

	if len(chassisDocs) > 0 {
		if _, err := r.chassisColl.InsertMany(ctx, chassisDocs, options.InsertMany().SetOrdered(false)); err != nil {
			return fmt.Errorf("%s insert chassis: %w", op, err)
		}
	}
	if len(optionDocs) > 0 {
		if _, err := r.optionsColl.InsertMany(ctx, optionDocs, options.InsertMany().SetOrdered(false)); err != nil {
			return fmt.Errorf("%s insert options: %w", op, err)
		}
	}

	return nil
}

func (r *repository) CountChassis(ctx context.Context) (int64, error) {
	const op = "repository.CountChassis"

	n, err := r.chassisColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
