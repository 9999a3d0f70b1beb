package service

import "errors"

// 业务错误哨兵，handler 层按 errors.Is 映射为 HTTP 响应
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")

	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyAddress        = errors.New("shipping address is required")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrOrderNotReturnable  = errors.New("order is not eligible for return")
	ErrItemNotInOrder      = errors.New("order item does not belong to order")
	ErrEmptyReason         = errors.New("return reason is required")
	ErrReturnAlreadyActive = errors.New("an active return already exists")
	ErrReturnNotFound      = errors.New("return not found")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrStaffDisabled      = errors.New("staff account disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
