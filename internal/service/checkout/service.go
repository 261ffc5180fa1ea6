package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yakkt/campervan-configurator/internal/model"
	"github.com/yakkt/campervan-configurator/platform/logger"
)

type ConfiguratorService interface {
	Session(ctx context.Context, id uuid.UUID) (*model.Session, error)
	Catalog() *model.Catalog
}

type StoreClient interface {
	CreateOrder(
		ctx context.Context,
		chassisID, chassisName string,
		components []model.CheckoutComponent,
		totalPrice float64,
	) (int64, string, error)
}

type OrderRepository interface {
	Create(ctx context.Context, ord *model.Order) (uuid.UUID, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
}

type OrderCreatedSender interface {
	SendOrderCreated(ctx context.Context, event model.OrderCreated) error
}

type service struct {
	configurator   ConfiguratorService
	store          StoreClient
	repo           OrderRepository
	producer       OrderCreatedSender
	writeDBTimeout time.Duration
}

func NewCheckoutService(
	configurator ConfiguratorService,
	store StoreClient,
	repo OrderRepository,
	producer OrderCreatedSender,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		configurator:   configurator,
		store:          store,
		repo:           repo,
		producer:       producer,
		writeDBTimeout: writeDBTimeout,
	}
}

// Checkout hands the session's build to the store backend, records the order
// locally and announces it on the bus. The event publish is best effort: the
// order already exists on the store side, so a broker failure only logs.
func (svc *service) Checkout(ctx context.Context, sessionID uuid.UUID) (*model.CheckoutResult, error) {
	const op = "checkout.service.Checkout"
	log := logger.With(
		logger.String("session_id", sessionID.String()),
	)

	s, err := svc.configurator.Session(ctx, sessionID)
	if err != nil {
		log.Error(ctx, "configurator session", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.Selection.ChassisID == "" {
		log.Warn(ctx, "checkout without chassis")
		return nil, fmt.Errorf("%s: %w", op, model.ErrChassisRequired)
	}

	cat := svc.configurator.Catalog()
	chassis, ok := cat.ChassisByID(s.Selection.ChassisID)
	if !ok {
		log.Error(ctx, "selected chassis missing from catalog",
			logger.String("chassis_id", s.Selection.ChassisID),
		)
		return nil, fmt.Errorf("%s: %w", op, model.ErrChassisNotFound)
	}

	optionIDs := s.Selection.SelectedIDs()
	components := make([]model.CheckoutComponent, 0, len(optionIDs))
	for _, optionID := range optionIDs {
		opt, ok := cat.OptionByID(optionID)
		if !ok {
			log.Warn(ctx, "selected option missing from catalog",
				logger.String("option_id", optionID),
			)
			continue
		}
		components = append(components, model.CheckoutComponent{
			ID:          opt.ID,
			Name:        opt.Name,
			Price:       opt.Price,
			Description: opt.Description,
			Category:    opt.Category,
		})
	}

	wooOrderID, checkoutURL, err := svc.store.CreateOrder(
		ctx, chassis.ID, chassis.Name, components, s.Price.TotalPrice,
	)
	if err != nil {
		log.Error(ctx, "store create order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, model.ErrBadGateway)
	}

	wdbCtx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	orderID, err := svc.repo.Create(wdbCtx, &model.Order{
		SessionID:   sessionID,
		ChassisID:   chassis.ID,
		ChassisName: chassis.Name,
		OptionIDs:   optionIDs,
		TotalPrice:  s.Price.TotalPrice,
		FinalPrice:  s.Price.FinalPrice,
		WooOrderID:  wooOrderID,
		CheckoutURL: checkoutURL,
		Status:      model.StatusCreated,
	})
	if err != nil {
		log.Error(ctx, "repository create order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := svc.producer.SendOrderCreated(ctx, model.OrderCreated{
		EventID:    uuid.New(),
		OrderID:    orderID,
		SessionID:  sessionID,
		WooOrderID: wooOrderID,
		ChassisID:  chassis.ID,
		OptionIDs:  optionIDs,
		TotalPrice: s.Price.TotalPrice,
		FinalPrice: s.Price.FinalPrice,
	}); err != nil {
		log.Error(ctx, "send order created event", logger.ErrorF(err))
	}

	return &model.CheckoutResult{
		OrderID:     orderID,
		WooOrderID:  wooOrderID,
		CheckoutURL: checkoutURL,
		TotalPrice:  s.Price.TotalPrice,
		FinalPrice:  s.Price.FinalPrice,
	}, nil
}

func (svc *service) OrderByID(ctx context.Context, orderID uuid.UUID) (*model.Order, error) {
	const op = "checkout.service.OrderByID"

	ord, err := svc.repo.OrderByID(ctx, orderID)
	if err != nil {
		logger.Error(ctx, "repository order by id",
			logger.String("order_id", orderID.String()),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

// UpdateOrderStatus records the outcome reported back by the store, e.g. the
// payment confirmation callback. Orders only ever move out of CREATED.
func (svc *service) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) error {
	const op = "checkout.service.UpdateOrderStatus"
	log := logger.With(
		logger.String("order_id", orderID.String()),
		logger.String("status", string(status)),
	)

	if status != model.StatusCompleted && status != model.StatusFailed {
		log.Warn(ctx, "unsupported status transition")
		return fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ord, err := svc.repo.OrderByID(ctx, orderID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if ord.Status != model.StatusCreated {
		log.Warn(ctx, "order already settled", logger.String("current", string(ord.Status)))
		return fmt.Errorf("%s: %w", op, model.ErrOrderConflict)
	}

	wdbCtx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.UpdateStatus(wdbCtx, orderID, status); err != nil {
		log.Error(ctx, "repository update status", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "order status updated")
	return nil
}
