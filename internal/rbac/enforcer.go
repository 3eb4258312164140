package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Kebijakan statis: hanya ada dua role, admin mewarisi semua izin employee
// lewat grouping policy.
var policies = [][]string{
	// employee baseline
	{RoleEmployee, "shifts", "read"},
	{RoleEmployee, "departments", "read"},
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "attendance", "create"},
	{RoleEmployee, "leaves", "read"},
	{RoleEmployee, "leaves", "create"},
	{RoleEmployee, "payrolls", "read"},
	{RoleEmployee, "timeline", "read"},
	{RoleEmployee, "timeline", "create"},

	// admin only
	{RoleAdmin, "users", "read"},
	{RoleAdmin, "users", "create"},
	{RoleAdmin, "shifts", "create"},
	{RoleAdmin, "departments", "create"},
	{RoleAdmin, "attendance", "approve"},
	{RoleAdmin, "attendance", "read_pending"},
	{RoleAdmin, "attendance", "export"},
	{RoleAdmin, "leaves", "approve"},
	{RoleAdmin, "payrolls", "create"},
	{RoleAdmin, "payrolls", "pay"},
}

type Service struct {
	enforcer *casbin.Enforcer
}

func NewService() (*Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy(RoleAdmin, RoleEmployee); err != nil {
		return nil, err
	}

	return &Service{enforcer: e}, nil
}

func (s *Service) Allowed(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
