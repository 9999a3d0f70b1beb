package repository

import "gorm.io/gorm"

// applyPagination 统一应用分页参数
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return query.Offset(offset).Limit(pageSize)
}
