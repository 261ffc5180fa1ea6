package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakkt/campervan-configurator/internal/model"
	"github.com/yakkt/campervan-configurator/platform/logger"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*model.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *model.Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) ByID(_ context.Context, id uuid.UUID) (*model.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Update(
	_ context.Context, id uuid.UUID, mutate func(s *model.Session) error,
) (*model.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	if err := mutate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.sessions[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

type fakeCatalogRepo struct {
	chassis []model.Chassis
	options []model.Option

	listErr    error
	replaceErr error
	replaced   bool
}

func (r *fakeCatalogRepo) ListChassis(_ context.Context) ([]model.Chassis, error) {
	return r.chassis, r.listErr
}

func (r *fakeCatalogRepo) ListOptions(_ context.Context) ([]model.Option, error) {
	return r.options, r.listErr
}

func (r *fakeCatalogRepo) ReplaceAll(_ context.Context, chassis []model.Chassis, options []model.Option) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.chassis, r.options = chassis, options
	r.replaced = true
	return nil
}

func testCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		chassis: []model.Chassis{
			{ID: "mwb-crafter", Name: "MWB Crafter", BasePrice: 0},
			{ID: "lwb-crafter", Name: "LWB Crafter", BasePrice: 500},
		},
		options: []model.Option{
			{
				ID: "black-rhino-wheels", Price: 2000, Category: model.CategoryWheels,
				IsExclusive: true, ConflictsWith: []string{"standard-wheels"},
			},
			{
				ID: "standard-wheels", Price: 0, Category: model.CategoryWheels,
				IsExclusive: true, ConflictsWith: []string{"black-rhino-wheels"},
			},
			{
				ID: "roof-rack", Price: 1200, Category: model.CategoryRoofRacks,
			},
			{
				ID: "rack-ladder", Price: 300, Category: model.CategoryRoofRackAccessories,
				DependsOn: []string{"roof-rack"},
			},
			{
				ID: "deck-panel", Price: 450, Category: model.CategoryDeckPanels,
				DependsOn: []string{"roof-rack", "rack-ladder"},
			},
			{
				ID: "paradox-plate", Price: 90, Category: model.CategoryExteriorAccessories,
				IsExclusive: true, ConflictsWith: []string{"paradox-plate"},
			},
		},
	}
}

func newTestService(t *testing.T) (*service, *fakeSessionRepo, *fakeCatalogRepo) {
	t.Helper()
	logger.SetNopLogger()

	sessions := newFakeSessionRepo()
	catalogs := testCatalogRepo()

	svc := NewConfiguratorService(sessions, catalogs, time.Second)
	require.NoError(t, svc.LoadCatalog(context.Background()))

	return svc, sessions, catalogs
}

func TestServiceLoadCatalog(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	ctx := context.Background()

	t.Run("empty catalog is rejected", func(t *testing.T) {
		t.Parallel()

		svc := NewConfiguratorService(newFakeSessionRepo(), &fakeCatalogRepo{}, time.Second)

		err := svc.LoadCatalog(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrCatalogEmpty)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		t.Parallel()

		listErr := errors.New("mongo is down")
		svc := NewConfiguratorService(newFakeSessionRepo(), &fakeCatalogRepo{listErr: listErr}, time.Second)

		err := svc.LoadCatalog(ctx)

		assert.ErrorIs(t, err, listErr)
	})

	t.Run("loaded catalog becomes current", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)

		cat := svc.Catalog()
		require.Len(t, cat.Chassis, 2)
		_, ok := cat.OptionByID("roof-rack")
		assert.True(t, ok)
	})
}

func TestServiceSelectChassis(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown chassis", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		s, err := svc.CreateSession(ctx)
		require.NoError(t, err)

		_, err = svc.SelectChassis(ctx, s.ID, "t5-transporter")

		assert.ErrorIs(t, err, model.ErrChassisNotFound)
	})

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)

		_, err := svc.SelectChassis(ctx, uuid.New(), "mwb-crafter")

		assert.ErrorIs(t, err, model.ErrSessionNotFound)
	})

	t.Run("switching chassis keeps the selected options", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		s, err := svc.CreateSession(ctx)
		require.NoError(t, err)

		_, err = svc.SelectChassis(ctx, s.ID, "mwb-crafter")
		require.NoError(t, err)
		_, err = svc.ToggleOption(ctx, s.ID, "roof-rack")
		require.NoError(t, err)

		got, err := svc.SelectChassis(ctx, s.ID, "lwb-crafter")
		require.NoError(t, err)

		assert.Equal(t, "lwb-crafter", got.Selection.ChassisID)
		assert.True(t, got.Selection.Has("roof-rack"))
		assert.InDelta(t, 500.0, got.Price.ChassisPrice, 1e-9)
		assert.InDelta(t, 1700.0, got.Price.TotalPrice, 1e-9)
	})
}

func TestServiceToggleOption(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	newSessionWithChassis := func(t *testing.T, svc *service) uuid.UUID {
		t.Helper()
		s, err := svc.CreateSession(ctx)
		require.NoError(t, err)
		_, err = svc.SelectChassis(ctx, s.ID, "mwb-crafter")
		require.NoError(t, err)
		return s.ID
	}

	t.Run("unknown option", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		id := newSessionWithChassis(t, svc)

		_, err := svc.ToggleOption(ctx, id, "ghost-option")

		assert.ErrorIs(t, err, model.ErrOptionNotFound)
	})

	t.Run("toggle twice returns to the previous state", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		id := newSessionWithChassis(t, svc)

		on, err := svc.ToggleOption(ctx, id, "roof-rack")
		require.NoError(t, err)
		require.True(t, on.Selection.Has("roof-rack"))

		off, err := svc.ToggleOption(ctx, id, "roof-rack")
		require.NoError(t, err)

		assert.False(t, off.Selection.Has("roof-rack"))
		assert.Empty(t, off.Selection.SelectedIDs())
		assert.InDelta(t, 0.0, off.Price.TotalPrice, 1e-9)
	})

	t.Run("exclusive option evicts its conflicts", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		id := newSessionWithChassis(t, svc)

		_, err := svc.ToggleOption(ctx, id, "standard-wheels")
		require.NoError(t, err)

		got, err := svc.ToggleOption(ctx, id, "black-rhino-wheels")
		require.NoError(t, err)

		assert.True(t, got.Selection.Has("black-rhino-wheels"))
		assert.False(t, got.Selection.Has("standard-wheels"))
	})

	t.Run("option conflicting with itself still ends selected", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		id := newSessionWithChassis(t, svc)

		got, err := svc.ToggleOption(ctx, id, "paradox-plate")
		require.NoError(t, err)

		assert.True(t, got.Selection.Has("paradox-plate"))
	})

	t.Run("price is recomputed within the same update", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)
		id := newSessionWithChassis(t, svc)

		got, err := svc.ToggleOption(ctx, id, "black-rhino-wheels")
		require.NoError(t, err)

		// black-rhino-wheels is excluded from the discount base.
		assert.InDelta(t, 2000.0, got.Price.NonDiscountablePrice, 1e-9)
		assert.InDelta(t, 0.0, got.Price.DiscountAmount, 1e-9)
		assert.InDelta(t, 2000.0, got.Price.FinalPrice, 1e-9)
	})
}

func TestServiceReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newTestService(t)

	s, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectChassis(ctx, s.ID, "lwb-crafter")
	require.NoError(t, err)
	_, err = svc.ToggleOption(ctx, s.ID, "roof-rack")
	require.NoError(t, err)

	got, err := svc.Reset(ctx, s.ID)
	require.NoError(t, err)

	assert.Empty(t, got.Selection.ChassisID)
	assert.Empty(t, got.Selection.SelectedIDs())
	assert.Equal(t, model.ZeroPriceData(), got.Price)
}

func TestServiceAvailability(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newTestService(t)

	s, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.SelectChassis(ctx, s.ID, "mwb-crafter")
	require.NoError(t, err)

	before, err := svc.Availability(ctx, s.ID)
	require.NoError(t, err)

	assert.True(t, before["roof-rack"], "no dependencies")
	assert.False(t, before["rack-ladder"], "dependency not selected")
	assert.False(t, before["deck-panel"])

	_, err = svc.ToggleOption(ctx, s.ID, "roof-rack")
	require.NoError(t, err)

	after, err := svc.Availability(ctx, s.ID)
	require.NoError(t, err)

	assert.True(t, after["rack-ladder"])
	assert.True(t, after["deck-panel"], "one satisfied dependency is enough")

	ok, err := svc.IsOptionAvailable(ctx, s.ID, "rack-ladder")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.IsOptionAvailable(ctx, s.ID, "ghost-option")
	assert.ErrorIs(t, err, model.ErrOptionNotFound)
}

func TestServiceReplaceCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	validChassis := []model.Chassis{{ID: "mwb-crafter", Name: "MWB Crafter"}}
	validOptions := []model.Option{{ID: "roof-rack", Price: 1200}}

	tests := []struct {
		name    string
		chassis []model.Chassis
		options []model.Option
		wantErr error
	}{
		{
			name:    "empty chassis list",
			chassis: nil,
			options: validOptions,
			wantErr: model.ErrValidation,
		},
		{
			name:    "empty chassis id",
			chassis: []model.Chassis{{ID: ""}},
			options: validOptions,
			wantErr: model.ErrValidation,
		},
		{
			name:    "duplicate option id",
			chassis: validChassis,
			options: []model.Option{{ID: "roof-rack"}, {ID: "roof-rack"}},
			wantErr: model.ErrValidation,
		},
		{
			name:    "option id colliding with chassis id",
			chassis: validChassis,
			options: []model.Option{{ID: "mwb-crafter"}},
			wantErr: model.ErrValidation,
		},
		{
			name:    "valid replacement",
			chassis: validChassis,
			options: validOptions,
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _, catalogs := newTestService(t)

			err := svc.ReplaceCatalog(ctx, tt.chassis, tt.options)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, catalogs.replaced)
				return
			}

			require.NoError(t, err)
			assert.True(t, catalogs.replaced)
			assert.Len(t, svc.Catalog().Chassis, len(tt.chassis))
		})
	}

	t.Run("repository failure keeps the old catalog", func(t *testing.T) {
		t.Parallel()

		svc, _, catalogs := newTestService(t)
		catalogs.replaceErr = errors.New("mongo is down")

		err := svc.ReplaceCatalog(ctx, validChassis, validOptions)

		assert.ErrorIs(t, err, catalogs.replaceErr)
		assert.Len(t, svc.Catalog().Chassis, 2)
	})
}

func TestServiceDeleteSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newTestService(t)

	s, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(ctx, s.ID))

	_, err = svc.Session(ctx, s.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	err = svc.DeleteSession(ctx, s.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
