package repository

import (
	"context"

	"github.com/yakkt/campervan-configurator/internal/model"
)

type Bootstrapper interface {
	CountChassis(ctx context.Context) (int64, error)
	ReplaceAll(ctx context.Context, chassis []model.Chassis, options []model.Option) error
}

// CatalogBootstrap seeds the default MWB Crafter catalog when the store is
// empty, so a fresh deployment serves a working configurator without any
// manual import.
func CatalogBootstrap(ctx context.Context, r Bootstrapper) error {
	n, err := r.CountChassis(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	return r.ReplaceAll(ctx, defaultChassis(), defaultOptions())
}

func defaultChassis() []model.Chassis {
	return []model.Chassis{
		{
			ID:          "mwb-crafter",
			Name:        "VW Crafter MWB",
			BasePrice:   0,
			ModelURLs:   []string{"/models/van-models/mwb-crafter/chassis/chassis.glb"},
			Description: "Medium Wheelbase VW Crafter",
		},
	}
}

func defaultOptions() []model.Option {
	return []model.Option{
		// Windows and flares
		{
			ID:    "flares",
			Name:  "Flares",
			Price: 950,
			ModelURLs: []string{
				"/models/van-models/mwb-crafter/windows-and-flares/flaresns.glb",
				"/models/van-models/mwb-crafter/windows-and-flares/flaresos.glb",
			},
			Category:      model.CategoryWindows,
			IsExclusive:   true,
			ConflictsWith: []string{},
			Description:   "Wheel arch flares",
		},

		// Wheels
		{
			ID:            "standard-wheels",
			Name:          "Standard Wheels",
			Price:         0,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/wheels/standard.glb"},
			Category:      model.CategoryWheels,
			IsExclusive:   true,
			ConflictsWith: []string{"black-rhino-wheels"},
			Description:   "Standard VW Crafter wheels",
		},
		{
			ID:            "black-rhino-wheels",
			Name:          "Black Rhino Warlord BFG AT",
			Price:         0,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/wheels/black-rhino-at.glb"},
			Category:      model.CategoryWheels,
			IsExclusive:   true,
			ConflictsWith: []string{"standard-wheels"},
			Description:   "Black Rhino all-terrain wheels",
		},

		// Roof racks
		{
			ID:    "roof-rack-base",
			Name:  "Base Rack",
			Price: 1850,
			ModelURLs: []string{
				"/models/van-models/mwb-crafter/roof-racks/carrier-supports.glb",
				"/models/van-models/mwb-crafter/roof-racks/front-fairing.glb",
				"/models/van-models/mwb-crafter/roof-racks/rear-fairing.glb",
				"/models/van-models/mwb-crafter/roof-racks/right-rails.glb",
				"/models/van-models/mwb-crafter/roof-racks/left-rails.glb",
			},
			Category:      model.CategoryRoofRacks,
			IsExclusive:   true,
			ConflictsWith: []string{},
			Description:   "Base roof rack system with supports, fairings, and rails",
		},

		// Deck panels
		{
			ID:            "rear-deck",
			Name:          "Rear Deck",
			Price:         600,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-racks/deck-panels/deck-back.glb"},
			Category:      model.CategoryDeckPanels,
			IsExclusive:   false,
			ConflictsWith: []string{"rear-deck-maxxfan"},
			DependsOn:     []string{"roof-rack-base"},
			Description:   "Rear section deck panel",
		},
		{
			ID:            "rear-deck-maxxfan",
			Name:          "Rear Deck Rear MaxxFan",
			Price:         550,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-racks/deck-panels/deck-panels-maxxfan-rear.glb"},
			Category:      model.CategoryDeckPanels,
			IsExclusive:   true,
			ConflictsWith: []string{"rear-deck"},
			DependsOn:     []string{"roof-rack-base"},
			Description:   "Rear deck with Maxxfan installation",
		},
		{
			ID:            "middle-deck",
			Name:          "Middle Deck",
			Price:         600,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-racks/deck-panels/deck-middle.glb"},
			Category:      model.CategoryDeckPanels,
			IsExclusive:   false,
			ConflictsWith: []string{},
			DependsOn:     []string{"roof-rack-base"},
			Description:   "Middle section deck panel",
		},
		{
			ID:            "front-deck",
			Name:          "Front Deck",
			Price:         600,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-racks/deck-panels/deck-front.glb"},
			Category:      model.CategoryDeckPanels,
			IsExclusive:   false,
			ConflictsWith: []string{},
			DependsOn:     []string{"roof-rack-base"},
			Description:   "Front section deck panel",
		},

		// Roof rack accessories
		{
			ID:            "awning-brackets",
			Name:          "Awning Brackets",
			Price:         175,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-rack-accessories/awningbrackets.glb"},
			Category:      model.CategoryRoofRackAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			DependsOn:     []string{"roof-rack-base"},
			Description:   "Mounting brackets for awning installation",
		},
		{
			ID:            "fiamma-awning",
			Name:          "Fiamma F45s Awning 3.2m Black/Anthra",
			Price:         800,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-rack-accessories/fiammaf45s-awning-closed.glb"},
			Category:      model.CategoryRoofRackAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			DependsOn:     []string{"roof-rack-base", "rear-deck", "rear-deck-maxxfan", "middle-deck", "front-deck", "awning-brackets"},
			Description:   "Fiamma F45s retractable awning",
		},
		{
			ID:            "roof-rack-ladder",
			Name:          "Side Ladder",
			Price:         800,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-rack-accessories/ladder.glb"},
			Category:      model.CategoryRoofRackAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			DependsOn:     []string{"roof-rack-base", "rear-deck", "rear-deck-maxxfan", "middle-deck", "front-deck"},
			Description:   "Access ladder for roof rack",
		},
		{
			ID:            "front-runner-wolfpack-pro-2x-l",
			Name:          "Front Runner Wolfpack Pro - 2x L",
			Price:         59,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-rack-accessories/wolfpack-2x-l.glb"},
			Category:      model.CategoryRoofRackAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			DependsOn:     []string{"roof-rack-base"},
			Description:   "Two Front Runner WolfPack Pro storage boxes (Left side)",
		},
		{
			ID:            "front-runner-wolfpack-pro-2x-r",
			Name:          "Front Runner Wolfpack Pro - 2x R",
			Price:         59,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-rack-accessories/wolfpack-2x-r.glb"},
			Category:      model.CategoryRoofRackAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			DependsOn:     []string{"roof-rack-base"},
			Description:   "Two Front Runner WolfPack Pro storage boxes (Right side)",
		},
		{
			ID:            "front-runner-wolfpack-pro-1x-m",
			Name:          "Front Runner Wolfpack Pro - 1x M",
			Price:         59,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/roof-rack-accessories/wolfpack-1x-m.glb"},
			Category:      model.CategoryRoofRackAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			DependsOn:     []string{"roof-rack-base"},
			Description:   "Single Front Runner WolfPack Pro storage box (Middle)",
		},

		// Rear door carriers
		{
			ID:            "nearside-mini-carrier",
			Name:          "NS Mini Carrier",
			Price:         670,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/rear-door-carriers/ns-minicarrier.glb"},
			Category:      model.CategoryRearDoorCarriers,
			SubCategory:   model.SubCategoryNearside,
			IsExclusive:   true,
			ConflictsWith: []string{"nearside-midi-carrier"},
			Description:   "Nearside mini storage carrier",
		},
		{
			ID:            "offside-mini-carrier",
			Name:          "OS Mini Carrier",
			Price:         670,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/rear-door-carriers/os-minicarrier.glb"},
			Category:      model.CategoryRearDoorCarriers,
			SubCategory:   model.SubCategoryOffside,
			IsExclusive:   true,
			ConflictsWith: []string{"offside-midi-carrier"},
			Description:   "Offside mini storage carrier",
		},
		{
			ID:            "nearside-midi-carrier",
			Name:          "NS Midi Carrier",
			Price:         1200,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/rear-door-carriers/ns-midicarrier.glb"},
			Category:      model.CategoryRearDoorCarriers,
			SubCategory:   model.SubCategoryNearside,
			IsExclusive:   true,
			ConflictsWith: []string{"nearside-mini-carrier"},
			Description:   "Nearside midi storage carrier",
		},
		{
			ID:            "offside-midi-carrier",
			Name:          "OS Midi Carrier",
			Price:         1200,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/rear-door-carriers/os-midicarrier.glb"},
			Category:      model.CategoryRearDoorCarriers,
			SubCategory:   model.SubCategoryOffside,
			IsExclusive:   true,
			ConflictsWith: []string{"offside-mini-carrier"},
			Description:   "Offside midi storage carrier",
		},

		// Rear door accessories
		{
			ID:            "wheel-carrier",
			Name:          "Wheel Carrier Module",
			Price:         450,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/rear-door-accessories/options/wheel-carrier.glb"},
			Category:      model.CategoryRearDoorAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			DependsOn:     []string{"nearside-mini-carrier", "nearside-midi-carrier", "offside-mini-carrier", "offside-midi-carrier"},
			Description:   "Rear door spare wheel carrier",
		},

		// Exterior accessories
		{
			ID:            "bravo-snorkel",
			Name:          "Bravo Snorkel",
			Price:         495,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/exterior-accessories/bravo-snorkel.glb"},
			Category:      model.CategoryExteriorAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			Description:   "Bravo raised air intake snorkel",
		},
		{
			ID:            "front-bull-bar",
			Name:          "Front Bull Bar",
			Price:         680,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/exterior-accessories/front-bull-bar.glb"},
			Category:      model.CategoryExteriorAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			Description:   "Heavy-duty front bull bar protection",
		},
		{
			ID:            "lazer-lights-grille",
			Name:          "Lazer Lights - Grille",
			Price:         600,
			ModelURLs:     []string{"/models/van-models/mwb-crafter/exterior-accessories/lazerlights.glb"},
			Category:      model.CategoryExteriorAccessories,
			IsExclusive:   false,
			ConflictsWith: []string{},
			Description:   "Grille-mounted Lazer LED lights",
		},
	}
}
