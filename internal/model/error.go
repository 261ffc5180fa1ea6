package model

import "errors"

var (
	ErrValidation      = errors.New("validation error")      // 400
	ErrSessionNotFound = errors.New("session not found")     // 404
	ErrChassisNotFound = errors.New("chassis not found")     // 404
	ErrOptionNotFound  = errors.New("option not found")      // 404
	ErrOrderNotFound   = errors.New("order not found")       // 404
	ErrOrderConflict   = errors.New("order already settled") // 409
	ErrChassisRequired = errors.New("chassis not selected")  // 422
	ErrBadGateway      = errors.New("bad gateway")           // 502
	ErrCatalogEmpty    = errors.New("catalog is empty")
)
