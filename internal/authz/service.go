package authz

import (
	"fmt"

	"github.com/shopfront-next/internal/logger"

	"github.com/casbin/casbin/v3"
	casbinmodel "github.com/casbin/casbin/v3/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// RBAC 模型：sub 支持角色继承，obj 按路径前缀匹配
const defaultRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// Service 基于 Casbin 的访问控制服务
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建访问控制服务，策略存储于数据库
func NewService(db *gorm.DB) (*Service, error) {
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", "casbin_rule")
	if err != nil {
		return nil, fmt.Errorf("create casbin adapter: %w", err)
	}

	m, err := casbinmodel.NewModelFromString(defaultRBACModel)
	if err != nil {
		return nil, fmt.Errorf("parse rbac model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}

	return &Service{enforcer: enforcer}, nil
}

// Enforce 判断主体对资源的操作是否放行
func (s *Service) Enforce(subject, object, action string) bool {
	ok, err := s.enforcer.Enforce(subject, object, action)
	if err != nil {
		logger.Errorw("authz_enforce_failed",
			"subject", subject,
			"object", object,
			"action", action,
			"error", err,
		)
		return false
	}
	return ok
}

// AddPolicy 添加策略规则
func (s *Service) AddPolicy(subject, object, action string) error {
	_, err := s.enforcer.AddPolicy(subject, object, action)
	return err
}

// AddRoleForUser 绑定用户与角色
func (s *Service) AddRoleForUser(user, role string) error {
	_, err := s.enforcer.AddGroupingPolicy(user, role)
	return err
}
