package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakkt/campervan-configurator/internal/model"
	"github.com/yakkt/campervan-configurator/platform/logger"
)

type fakeConfigurator struct {
	session *model.Session
	err     error
	catalog *model.Catalog
}

func (c *fakeConfigurator) Session(_ context.Context, _ uuid.UUID) (*model.Session, error) {
	return c.session, c.err
}

func (c *fakeConfigurator) Catalog() *model.Catalog { return c.catalog }

type fakeStore struct {
	err error

	calls       int
	lastChassis string
	lastTotal   float64
	lastComps   []model.CheckoutComponent
}

func (s *fakeStore) CreateOrder(
	_ context.Context,
	chassisID, _ string,
	components []model.CheckoutComponent,
	totalPrice float64,
) (int64, string, error) {
	s.calls++
	s.lastChassis = chassisID
	s.lastTotal = totalPrice
	s.lastComps = components
	if s.err != nil {
		return 0, "", s.err
	}
	return 7301, "https://store.example/checkout/7301", nil
}

type fakeOrderRepo struct {
	createErr error
	byIDErr   error
	statusErr error

	created       *model.Order
	stored        *model.Order
	updatedStatus model.OrderStatus
}

func (r *fakeOrderRepo) Create(_ context.Context, ord *model.Order) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = ord
	return uuid.New(), nil
}

func (r *fakeOrderRepo) OrderByID(_ context.Context, _ uuid.UUID) (*model.Order, error) {
	return r.stored, r.byIDErr
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status model.OrderStatus) error {
	if r.statusErr != nil {
		return r.statusErr
	}
	r.updatedStatus = status
	return nil
}

type fakeSender struct {
	err error

	calls int
	last  model.OrderCreated
}

func (s *fakeSender) SendOrderCreated(_ context.Context, event model.OrderCreated) error {
	s.calls++
	s.last = event
	return s.err
}

func checkoutCatalog() *model.Catalog {
	return model.NewCatalog(
		[]model.Chassis{{ID: "mwb-crafter", Name: "MWB Crafter"}},
		[]model.Option{
			{ID: "roof-rack", Name: "Roof Rack", Price: 1200, Category: model.CategoryRoofRacks},
			{ID: "flares", Name: "Flares", Price: 950, Category: model.CategoryExteriorAccessories},
		},
	)
}

func configuredSession(chassisID string, optionIDs ...string) *model.Session {
	s := model.NewSession(uuid.New(), time.Now().UTC())
	s.Selection.ChassisID = chassisID
	for _, id := range optionIDs {
		s.Selection.Add(id)
	}
	s.Price.TotalPrice = gofakeit.Price(1000, 9999)
	s.Price.FinalPrice = s.Price.TotalPrice - 100
	return s
}

func TestCheckout(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()
	ctx := context.Background()

	type deps struct {
		configurator *fakeConfigurator
		store        *fakeStore
		repo         *fakeOrderRepo
		sender       *fakeSender
	}

	newDeps := func(s *model.Session) deps {
		return deps{
			configurator: &fakeConfigurator{session: s, catalog: checkoutCatalog()},
			store:        &fakeStore{},
			repo:         &fakeOrderRepo{},
			sender:       &fakeSender{},
		}
	}

	newSvc := func(d deps) *service {
		return NewCheckoutService(d.configurator, d.store, d.repo, d.sender, time.Second)
	}

	t.Run("session not found", func(t *testing.T) {
		t.Parallel()

		d := newDeps(nil)
		d.configurator.err = model.ErrSessionNotFound

		_, err := newSvc(d).Checkout(ctx, uuid.New())

		assert.ErrorIs(t, err, model.ErrSessionNotFound)
		assert.Zero(t, d.store.calls)
	})

	t.Run("chassis required", func(t *testing.T) {
		t.Parallel()

		d := newDeps(configuredSession("", "roof-rack"))

		_, err := newSvc(d).Checkout(ctx, uuid.New())

		assert.ErrorIs(t, err, model.ErrChassisRequired)
		assert.Zero(t, d.store.calls)
	})

	t.Run("store failure maps to bad gateway", func(t *testing.T) {
		t.Parallel()

		d := newDeps(configuredSession("mwb-crafter", "roof-rack"))
		d.store.err = errors.New("store is down")

		_, err := newSvc(d).Checkout(ctx, uuid.New())

		assert.ErrorIs(t, err, model.ErrBadGateway)
		assert.Nil(t, d.repo.created)
		assert.Zero(t, d.sender.calls)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		t.Parallel()

		d := newDeps(configuredSession("mwb-crafter", "roof-rack"))
		d.repo.createErr = errors.New("pg is down")

		_, err := newSvc(d).Checkout(ctx, uuid.New())

		assert.ErrorIs(t, err, d.repo.createErr)
		assert.Zero(t, d.sender.calls)
	})

	t.Run("producer failure does not fail the checkout", func(t *testing.T) {
		t.Parallel()

		d := newDeps(configuredSession("mwb-crafter", "roof-rack"))
		d.sender.err = errors.New("broker is down")

		res, err := newSvc(d).Checkout(ctx, uuid.New())

		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, 1, d.sender.calls)
	})

	t.Run("successful checkout", func(t *testing.T) {
		t.Parallel()

		s := configuredSession("mwb-crafter", "roof-rack", "flares")
		d := newDeps(s)

		res, err := newSvc(d).Checkout(ctx, s.ID)
		require.NoError(t, err)

		assert.Equal(t, int64(7301), res.WooOrderID)
		assert.Equal(t, "https://store.example/checkout/7301", res.CheckoutURL)
		assert.InDelta(t, s.Price.TotalPrice, res.TotalPrice, 1e-9)
		assert.InDelta(t, s.Price.FinalPrice, res.FinalPrice, 1e-9)

		assert.Equal(t, "mwb-crafter", d.store.lastChassis)
		assert.InDelta(t, s.Price.TotalPrice, d.store.lastTotal, 1e-9)
		assert.Len(t, d.store.lastComps, 2)

		require.NotNil(t, d.repo.created)
		assert.Equal(t, s.ID, d.repo.created.SessionID)
		assert.Equal(t, model.StatusCreated, d.repo.created.Status)
		assert.ElementsMatch(t, []string{"roof-rack", "flares"}, d.repo.created.OptionIDs)

		assert.Equal(t, 1, d.sender.calls)
		assert.Equal(t, res.OrderID, d.sender.last.OrderID)
		assert.Equal(t, int64(7301), d.sender.last.WooOrderID)
	})

	t.Run("selected option missing from catalog is skipped", func(t *testing.T) {
		t.Parallel()

		d := newDeps(configuredSession("mwb-crafter", "roof-rack", "ghost-option"))

		_, err := newSvc(d).Checkout(ctx, uuid.New())
		require.NoError(t, err)

		require.Len(t, d.store.lastComps, 1)
		assert.Equal(t, "roof-rack", d.store.lastComps[0].ID)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()
	ctx := context.Background()

	newSvc := func(repo *fakeOrderRepo) *service {
		return NewCheckoutService(&fakeConfigurator{}, &fakeStore{}, repo, &fakeSender{}, time.Second)
	}

	t.Run("rejects CREATED", func(t *testing.T) {
		t.Parallel()

		repo := &fakeOrderRepo{}
		err := newSvc(repo).UpdateOrderStatus(ctx, uuid.New(), model.StatusCreated)

		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Empty(t, repo.updatedStatus)
	})

	t.Run("unknown order", func(t *testing.T) {
		t.Parallel()

		repo := &fakeOrderRepo{byIDErr: model.ErrOrderNotFound}
		err := newSvc(repo).UpdateOrderStatus(ctx, uuid.New(), model.StatusCompleted)

		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})

	t.Run("already settled", func(t *testing.T) {
		t.Parallel()

		repo := &fakeOrderRepo{stored: &model.Order{ID: uuid.New(), Status: model.StatusCompleted}}
		err := newSvc(repo).UpdateOrderStatus(ctx, repo.stored.ID, model.StatusFailed)

		assert.ErrorIs(t, err, model.ErrOrderConflict)
		assert.Empty(t, repo.updatedStatus)
	})

	t.Run("completed", func(t *testing.T) {
		t.Parallel()

		repo := &fakeOrderRepo{stored: &model.Order{ID: uuid.New(), Status: model.StatusCreated}}
		err := newSvc(repo).UpdateOrderStatus(ctx, repo.stored.ID, model.StatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, repo.updatedStatus)
	})
}

func TestOrderByID(t *testing.T) {
	t.Parallel()

	logger.SetNopLogger()
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		repo := &fakeOrderRepo{byIDErr: model.ErrOrderNotFound}
		svc := NewCheckoutService(&fakeConfigurator{}, &fakeStore{}, repo, &fakeSender{}, time.Second)

		_, err := svc.OrderByID(ctx, uuid.New())
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		want := &model.Order{ID: uuid.New(), Status: model.StatusCreated}
		repo := &fakeOrderRepo{stored: want}
		svc := NewCheckoutService(&fakeConfigurator{}, &fakeStore{}, repo, &fakeSender{}, time.Second)

		got, err := svc.OrderByID(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
