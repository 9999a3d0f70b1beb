package service

import "github.com/shopfront-next/internal/constants"

// 订单状态机：键为当前状态，值为允许迁移到的状态
var allowedOrderTransitions = map[string][]string{
	constants.OrderStatusPending: {
		constants.OrderStatusProcessing,
		constants.OrderStatusCancelled,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipped,
		constants.OrderStatusCancelled,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered,
	},
	// delivered / cancelled 为终态
}

// IsValidOrderStatus 是否为已知订单状态
func IsValidOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPending,
		constants.OrderStatusProcessing,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionOrder 校验订单状态迁移是否允许
func CanTransitionOrder(from, to string) bool {
	for _, next := range allowedOrderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// 退货状态机
var allowedReturnTransitions = map[string][]string{
	constants.ReturnStatusPending: {
		constants.ReturnStatusApproved,
		constants.ReturnStatusRejected,
	},
	constants.ReturnStatusApproved: {
		constants.ReturnStatusCompleted,
	},
	// rejected / completed 为终态
}

// IsValidReturnStatus 是否为已知退货状态
func IsValidReturnStatus(status string) bool {
	switch status {
	case constants.ReturnStatusPending,
		constants.ReturnStatusApproved,
		constants.ReturnStatusRejected,
		constants.ReturnStatusCompleted:
		return true
	}
	return false
}

// CanTransitionReturn 校验退货状态迁移是否允许
func CanTransitionReturn(from, to string) bool {
	for _, next := range allowedReturnTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
