package authz

import (
	"fmt"

	"github.com/shopfront-next/internal/constants"
)

// 角色主体命名
const (
	SubjectRoleOps    = "role:" + constants.StaffRoleOps
	SubjectRoleViewer = "role:" + constants.StaffRoleViewer
)

// SubjectForRole 运营角色到策略主体的映射
func SubjectForRole(role string) string {
	return "role:" + role
}

// EnsureDefaultPolicies 预置运营后台默认策略：
// ops 拥有全部后台操作，viewer 仅可读
func (s *Service) EnsureDefaultPolicies() error {
	policies := [][3]string{
		{SubjectRoleOps, "/api/v1/staff/*", "*"},
		{SubjectRoleViewer, "/api/v1/staff/orders", "GET"},
		{SubjectRoleViewer, "/api/v1/staff/orders/:id", "GET"},
		{SubjectRoleViewer, "/api/v1/staff/returns", "GET"},
	}
	for _, p := range policies {
		if err := s.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("add policy %v: %w", p, err)
		}
	}
	return nil
}
