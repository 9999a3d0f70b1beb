package repository

// ProductFilter 商品列表过滤条件
type ProductFilter struct {
	Category string
	Featured *bool
	Search   string
	Page     int
	PageSize int
}

// OrderFilter 订单列表过滤条件
type OrderFilter struct {
	Status   string
	Page     int
	PageSize int
}

// ReturnFilter 退货列表过滤条件
type ReturnFilter struct {
	Status   string
	Page     int
	PageSize int
}
