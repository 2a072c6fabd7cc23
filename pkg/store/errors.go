package store

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrFieldNotFound     = errors.New("field not found")
	ErrStockNotFound     = errors.New("stock item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAIUnavailable     = errors.New("ai generation failed")
)
