package converter

import (
	"encoding/json"
	"fmt"

	"github.com/yakkt/campervan-configurator/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

type orderCreatedRecord struct {
	EventID    string   `json:"event_id"`
	OrderID    string   `json:"order_id"`
	SessionID  string   `json:"session_id"`
	WooOrderID int64    `json:"woo_order_id"`
	ChassisID  string   `json:"chassis_id"`
	OptionIDs  []string `json:"option_ids"`
	TotalPrice float64  `json:"total_price"`
	FinalPrice float64  `json:"final_price"`
}

func (c *kafkaConverter) OrderCreatedToPayload(m model.OrderCreated) ([]byte, error) {
	payload, err := json.Marshal(orderCreatedRecord{
		EventID:    m.EventID.String(),
		OrderID:    m.OrderID.String(),
		SessionID:  m.SessionID.String(),
		WooOrderID: m.WooOrderID,
		ChassisID:  m.ChassisID,
		OptionIDs:  m.OptionIDs,
		TotalPrice: m.TotalPrice,
		FinalPrice: m.FinalPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order created record: %w", err)
	}

	return payload, nil
}

type catalogRecord struct {
	Chassis []chassisRecord `json:"chassis"`
	Options []optionRecord  `json:"options"`
}

type chassisRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	BasePrice   float64  `json:"basePrice"`
	ModelURLs   []string `json:"modelUrls,omitempty"`
	Description string   `json:"description,omitempty"`
}

type optionRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	ModelURLs     []string `json:"modelUrls,omitempty"`
	Category      string   `json:"category"`
	SubCategory   string   `json:"subCategory,omitempty"`
	IsExclusive   bool     `json:"isExclusive"`
	ConflictsWith []string `json:"conflictsWith,omitempty"`
	DependsOn     []string `json:"dependsOn,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// CatalogToModel decodes a wholesale catalog replacement payload.
func (c *kafkaConverter) CatalogToModel(data []byte) ([]model.Chassis, []model.Option, error) {
	var rec catalogRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal catalog record: %w", err)
	}

	chassis := make([]model.Chassis, 0, len(rec.Chassis))
	for _, ch := range rec.Chassis {
		chassis = append(chassis, model.Chassis{
			ID:          ch.ID,
			Name:        ch.Name,
			BasePrice:   ch.BasePrice,
			ModelURLs:   ch.ModelURLs,
			Description: ch.Description,
		})
	}

	options := make([]model.Option, 0, len(rec.Options))
	for _, opt := range rec.Options {
		options = append(options, model.Option{
			ID:            opt.ID,
			Name:          opt.Name,
			Price:         opt.Price,
			ModelURLs:     opt.ModelURLs,
			Category:      model.Category(opt.Category),
			SubCategory:   model.SubCategory(opt.SubCategory),
			IsExclusive:   opt.IsExclusive,
			ConflictsWith: opt.ConflictsWith,
			DependsOn:     opt.DependsOn,
			Description:   opt.Description,
		})
	}

	return chassis, options, nil
}
