package model

type Category string

const (
	CategoryWindows             Category = "windows"
	CategoryWheels              Category = "wheels"
	CategoryRoofRacks           Category = "roof-racks"
	CategoryDeckPanels          Category = "deck-panels"
	CategoryRoofRackAccessories Category = "roof-rack-accessories"
	CategoryRearDoorCarriers    Category = "rear-door-carriers"
	CategoryRearDoorAccessories Category = "rear-door-accessories"
	CategoryExteriorAccessories Category = "exterior-accessories"
)

type SubCategory string

const (
	SubCategoryNearside        SubCategory = "nearside"
	SubCategoryOffside         SubCategory = "offside"
	SubCategoryRackAccessories SubCategory = "rack-accessories"
)

// Chassis is a base vehicle variant. Immutable once loaded into a catalog.
type Chassis struct {
	ID          string
	Name        string
	BasePrice   float64
	ModelURLs   []string
	Description string
}

// Option is a selectable add-on component. ConflictsWith lists options that
// get deselected when this one is toggled on (only when IsExclusive is set);
// DependsOn lists options of which at least one must be selected for this
// option to be offered.
type Option struct {
	ID            string
	Name          string
	Price         float64
	ModelURLs     []string
	Category      Category
	SubCategory   SubCategory
	IsExclusive   bool
	ConflictsWith []string
	DependsOn     []string
	Description   string
}

// Catalog holds the loaded chassis and option lists together with id-keyed
// lookups. A catalog is built once and never mutated; reloads swap the whole
// value.
type Catalog struct {
	Chassis []Chassis
	Options []Option

	chassisByID map[string]*Chassis
	optionByID  map[string]*Option
}

func NewCatalog(chassis []Chassis, options []Option) *Catalog {
	c := &Catalog{
		Chassis:     chassis,
		Options:     options,
		chassisByID: make(map[string]*Chassis, len(chassis)),
		optionByID:  make(map[string]*Option, len(options)),
	}
	for i := range c.Chassis {
		c.chassisByID[c.Chassis[i].ID] = &c.Chassis[i]
	}
	for i := range c.Options {
		c.optionByID[c.Options[i].ID] = &c.Options[i]
	}

	return c
}

func (c *Catalog) ChassisByID(id string) (*Chassis, bool) {
	ch, ok := c.chassisByID[id]
	return ch, ok
}

func (c *Catalog) OptionByID(id string) (*Option, bool) {
	opt, ok := c.optionByID[id]
	return opt, ok
}
