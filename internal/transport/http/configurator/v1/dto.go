package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/yakkt/campervan-configurator/internal/model"
)

type selectChassisRequest struct {
	ChassisID string `json:"chassisId"`
}

type priceResponse struct {
	ChassisPrice         float64            `json:"chassisPrice"`
	DiscountablePrice    float64            `json:"discountablePrice"`
	NonDiscountablePrice float64            `json:"nonDiscountablePrice"`
	AddOnPrices          map[string]float64 `json:"addOnPrices"`
	DiscountPercentage   float64            `json:"discountPercentage"`
	DiscountAmount       float64            `json:"discountAmount"`
	TotalPrice           float64            `json:"totalPrice"`
	FinalPrice           float64            `json:"finalPrice"`
}

type sessionResponse struct {
	ID           string          `json:"id"`
	ChassisID    string          `json:"chassisId,omitempty"`
	OptionIDs    []string        `json:"optionIds"`
	Price        priceResponse   `json:"price"`
	Availability map[string]bool `json:"availability"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func sessionToResponse(s *model.Session, availability map[string]bool) sessionResponse {
	return sessionResponse{
		ID:        s.ID.String(),
		ChassisID: s.Selection.ChassisID,
		OptionIDs: s.Selection.SelectedIDs(),
		Price: priceResponse{
			ChassisPrice:         s.Price.ChassisPrice,
			DiscountablePrice:    s.Price.DiscountablePrice,
			NonDiscountablePrice: s.Price.NonDiscountablePrice,
			AddOnPrices:          s.Price.AddOnPrices,
			DiscountPercentage:   s.Price.DiscountPercentage,
			DiscountAmount:       s.Price.DiscountAmount,
			TotalPrice:           s.Price.TotalPrice,
			FinalPrice:           s.Price.FinalPrice,
		},
		Availability: availability,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

type chassisPayload struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	BasePrice   float64  `json:"basePrice"`
	ModelURLs   []string `json:"modelUrls,omitempty"`
	Description string   `json:"description,omitempty"`
}

type optionPayload struct {
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

type catalogPayload struct {
	Chassis []chassisPayload `json:"chassis"`
	Options []optionPayload  `json:"options"`
}

func catalogToResponse(cat *model.Catalog) catalogPayload {
	return catalogPayload{
		Chassis: lo.Map(cat.Chassis, func(ch model.Chassis, _ int) chassisPayload {
			return chassisPayload{
				ID:          ch.ID,
				Name:        ch.Name,
				BasePrice:   ch.BasePrice,
				ModelURLs:   ch.ModelURLs,
				Description: ch.Description,
			}
		}),
		Options: lo.Map(cat.Options, func(opt model.Option, _ int) optionPayload {
			return optionPayload{
				ID:            opt.ID,
				Name:          opt.Name,
				Price:         opt.Price,
				ModelURLs:     opt.ModelURLs,
				Category:      string(opt.Category),
				SubCategory:   string(opt.SubCategory),
				IsExclusive:   opt.IsExclusive,
				ConflictsWith: opt.ConflictsWith,
				DependsOn:     opt.DependsOn,
				Description:   opt.Description,
			}
		}),
	}
}

func catalogPayloadToModel(p catalogPayload) ([]model.Chassis, []model.Option) {
	chassis := lo.Map(p.Chassis, func(ch chassisPayload, _ int) model.Chassis {
		return model.Chassis{
			ID:          ch.ID,
			Name:        ch.Name,
			BasePrice:   ch.BasePrice,
			ModelURLs:   ch.ModelURLs,
			Description: ch.Description,
		}
	})
	options := lo.Map(p.Options, func(opt optionPayload, _ int) model.Option {
		return model.Option{
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
		}
	})

	return chassis, options
}

type checkoutResponse struct {
	OrderID     string  `json:"orderId"`
	WooOrderID  int64   `json:"wooOrderId"`
	CheckoutURL string  `json:"checkoutUrl"`
	TotalPrice  float64 `json:"totalPrice"`
	FinalPrice  float64 `json:"finalPrice"`
}

func checkoutResultToResponse(res *model.CheckoutResult) checkoutResponse {
	return checkoutResponse{
		OrderID:     res.OrderID.String(),
		WooOrderID:  res.WooOrderID,
		CheckoutURL: res.CheckoutURL,
		TotalPrice:  res.TotalPrice,
		FinalPrice:  res.FinalPrice,
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	ID          string   `json:"id"`
	SessionID   string   `json:"sessionId"`
	ChassisID   string   `json:"chassisId"`
	ChassisName string   `json:"chassisName"`
	OptionIDs   []string `json:"optionIds"`
	TotalPrice  float64  `json:"totalPrice"`
	FinalPrice  float64  `json:"finalPrice"`
	WooOrderID  int64    `json:"wooOrderId"`
	CheckoutURL string   `json:"checkoutUrl"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
}

func orderToResponse(ord *model.Order) orderResponse {
	return orderResponse{
		ID:          ord.ID.String(),
		SessionID:   ord.SessionID.String(),
		ChassisID:   ord.ChassisID,
		ChassisName: ord.ChassisName,
		OptionIDs:   ord.OptionIDs,
		TotalPrice:  ord.TotalPrice,
		FinalPrice:  ord.FinalPrice,
		WooOrderID:  ord.WooOrderID,
		CheckoutURL: ord.CheckoutURL,
		Status:      string(ord.Status),
		CreatedAt:   ord.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newErrorResponse(code int, message string) errorResponse {
	return errorResponse{Code: code, Message: message}
}
