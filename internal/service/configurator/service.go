package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yakkt/campervan-configurator/internal/model"
	"github.com/yakkt/campervan-configurator/platform/logger"
)

type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	ByID(ctx context.Context, id uuid.UUID) (*model.Session, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(s *model.Session) error) (*model.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CatalogRepository interface {
	ListChassis(ctx context.Context) ([]model.Chassis, error)
	ListOptions(ctx context.Context) ([]model.Option, error)
	ReplaceAll(ctx context.Context, chassis []model.Chassis, options []model.Option) error
}

type service struct {
	sessions SessionRepository
	catalogs CatalogRepository

	readDBTimeout time.Duration

	mu      sync.RWMutex
	catalog *model.Catalog
}

func NewConfiguratorService(
	sessions SessionRepository,
	catalogs CatalogRepository,
	readDBTimeout time.Duration,
) *service {
	return &service{
		sessions:      sessions,
		catalogs:      catalogs,
		readDBTimeout: readDBTimeout,
		catalog:       model.NewCatalog(nil, nil),
	}
}

// LoadCatalog reads the persisted catalog and makes it current. Sessions are
// not touched; their prices are refreshed on their next mutation.
func (svc *service) LoadCatalog(ctx context.Context) error {
	const op = "configurator.service.LoadCatalog"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	chassis, err := svc.catalogs.ListChassis(ctx)
	if err != nil {
		logger.Error(ctx, "repository list chassis", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	options, err := svc.catalogs.ListOptions(ctx)
	if err != nil {
		logger.Error(ctx, "repository list options", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(chassis) == 0 {
		logger.Error(ctx, "no chassis in catalog")
		return fmt.Errorf("%s: %w", op, model.ErrCatalogEmpty)
	}

	svc.swapCatalog(model.NewCatalog(chassis, options))

	logger.Info(ctx, "catalog loaded",
		logger.Int("chassis_count", len(chassis)),
		logger.Int("option_count", len(options)),
	)
	return nil
}

// ReplaceCatalog persists and activates a wholesale catalog replacement.
func (svc *service) ReplaceCatalog(ctx context.Context, chassis []model.Chassis, options []model.Option) error {
	const op = "configurator.service.ReplaceCatalog"
	log := logger.With(
		logger.Int("chassis_count", len(chassis)),
		logger.Int("option_count", len(options)),
	)

	if len(chassis) == 0 {
		log.Error(ctx, "validation: empty chassis list")
		return fmt.Errorf("%s: %w", op, model.ErrValidation)
	}
	seen := make(map[string]struct{}, len(chassis)+len(options))
	for _, ch := range chassis {
		if ch.ID == "" {
			log.Error(ctx, "validation: empty chassis id")
			return fmt.Errorf("%s: %w", op, model.ErrValidation)
		}
		if _, dup := seen[ch.ID]; dup {
			log.Error(ctx, "validation: duplicate id", logger.String("id", ch.ID))
			return fmt.Errorf("%s: %w", op, model.ErrValidation)
		}
		seen[ch.ID] = struct{}{}
	}
	for _, opt := range options {
		if opt.ID == "" {
			log.Error(ctx, "validation: empty option id")
			return fmt.Errorf("%s: %w", op, model.ErrValidation)
		}
		if _, dup := seen[opt.ID]; dup {
			log.Error(ctx, "validation: duplicate id", logger.String("id", opt.ID))
			return fmt.Errorf("%s: %w", op, model.ErrValidation)
		}
		seen[opt.ID] = struct{}{}
	}

	if err := svc.catalogs.ReplaceAll(ctx, chassis, options); err != nil {
		log.Error(ctx, "repository replace catalog", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	svc.swapCatalog(model.NewCatalog(chassis, options))

	log.Info(ctx, "catalog replaced")
	return nil
}

// Catalog returns the current catalog. The returned value is immutable.
func (svc *service) Catalog() *model.Catalog {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.catalog
}

func (svc *service) swapCatalog(cat *model.Catalog) {
	svc.mu.Lock()
	svc.catalog = cat
	svc.mu.Unlock()
}

func (svc *service) CreateSession(ctx context.Context) (*model.Session, error) {
	const op = "configurator.service.CreateSession"

	s := model.NewSession(uuid.New(), time.Now().UTC())
	if err := svc.sessions.Create(ctx, s); err != nil {
		logger.Error(ctx, "repository create session", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "session created", logger.String("session_id", s.ID.String()))
	return s, nil
}

func (svc *service) Session(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	const op = "configurator.service.Session"

	s, err := svc.sessions.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (svc *service) DeleteSession(ctx context.Context, id uuid.UUID) error {
	const op = "configurator.service.DeleteSession"

	if err := svc.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SelectChassis replaces the session's chassis. Selected options are kept;
// only the chassis reference and the derived price change.
func (svc *service) SelectChassis(ctx context.Context, id uuid.UUID, chassisID string) (*model.Session, error) {
	const op = "configurator.service.SelectChassis"
	log := logger.With(
		logger.String("session_id", id.String()),
		logger.String("chassis_id", chassisID),
	)

	cat := svc.Catalog()
	if _, ok := cat.ChassisByID(chassisID); !ok {
		log.Warn(ctx, "unknown chassis id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrChassisNotFound)
	}

	s, err := svc.sessions.Update(ctx, id, func(s *model.Session) error {
		s.Selection.ChassisID = chassisID
		s.Price = calculatePrice(cat, s.Selection)
		return nil
	})
	if err != nil {
		log.Error(ctx, "repository update session", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// ToggleOption flips one option and recomputes the price within the same
// atomic update.
func (svc *service) ToggleOption(ctx context.Context, id uuid.UUID, optionID string) (*model.Session, error) {
	const op = "configurator.service.ToggleOption"
	log := logger.With(
		logger.String("session_id", id.String()),
		logger.String("option_id", optionID),
	)

	cat := svc.Catalog()
	opt, ok := cat.OptionByID(optionID)
	if !ok {
		log.Warn(ctx, "unknown option id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrOptionNotFound)
	}

	s, err := svc.sessions.Update(ctx, id, func(s *model.Session) error {
		resolveToggle(&s.Selection, opt)
		s.Price = calculatePrice(cat, s.Selection)
		return nil
	})
	if err != nil {
		log.Error(ctx, "repository update session", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// Reset clears the chassis and all selected options and zeroes the price.
func (svc *service) Reset(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	const op = "configurator.service.Reset"

	s, err := svc.sessions.Update(ctx, id, func(s *model.Session) error {
		s.Selection = model.NewSelection()
		s.Price = model.ZeroPriceData()
		return nil
	})
	if err != nil {
		logger.Error(ctx, "repository update session",
			logger.String("session_id", id.String()),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// IsOptionAvailable reports whether the option may currently be toggled on in
// the given session.
func (svc *service) IsOptionAvailable(ctx context.Context, id uuid.UUID, optionID string) (bool, error) {
	const op = "configurator.service.IsOptionAvailable"

	opt, ok := svc.Catalog().OptionByID(optionID)
	if !ok {
		return false, fmt.Errorf("%s: %w", op, model.ErrOptionNotFound)
	}

	s, err := svc.sessions.ByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return isOptionAvailable(opt, s.Selection), nil
}

// Availability evaluates the dependency check for every catalog option.
func (svc *service) Availability(ctx context.Context, id uuid.UUID) (map[string]bool, error) {
	const op = "configurator.service.Availability"

	s, err := svc.sessions.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cat := svc.Catalog()
	out := make(map[string]bool, len(cat.Options))
	for i := range cat.Options {
		opt := &cat.Options[i]
		out[opt.ID] = isOptionAvailable(opt, s.Selection)
	}

	return out, nil
}
