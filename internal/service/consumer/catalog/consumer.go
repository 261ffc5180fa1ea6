package catconsumer

import (
	"context"
	"fmt"

	"github.com/yakkt/campervan-configurator/internal/model"
	"github.com/yakkt/campervan-configurator/platform/kafka"
	"github.com/yakkt/campervan-configurator/platform/logger"
)

type Converter interface {
	CatalogToModel(data []byte) ([]model.Chassis, []model.Option, error)
}

type Service interface {
	ReplaceCatalog(ctx context.Context, chassis []model.Chassis, options []model.Option) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	svc      Service
}

func NewCatalogConsumer(
	consumer kafka.Consumer,
	conv Converter,
	svc Service,
) *service {
	return &service{consumer: consumer, conv: conv, svc: svc}
}

// RunCatalogUpdatedConsume listens for wholesale catalog replacements pushed
// by the back office and applies them to the running service.
func (s *service) RunCatalogUpdatedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting catalog updated consumer")

	if err := s.consumer.Consume(ctx, s.catalogUpdatedHandler); err != nil {
		logger.Error(ctx, "Consume from catalog.updated topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) catalogUpdatedHandler(ctx context.Context, msg kafka.Message) error {
	chassis, options, err := s.conv.CatalogToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode catalog record", logger.ErrorF(err))
		return fmt.Errorf("converter catalog_to_model error: %w", err)
	}

	if err := s.svc.ReplaceCatalog(ctx, chassis, options); err != nil {
		logger.Error(ctx, "consumer.ReplaceCatalog", logger.ErrorF(err))
		return err
	}

	return nil
}
