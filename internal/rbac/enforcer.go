package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Single-tenant RBAC: subjects are roles carried in the JWT, not
// individual users.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policies is the static permission table. ADMIN manages everything;
// STAFF can punch the clock and read reports.
var policies = [][]string{
	{"ADMIN", "employee", "read"},
	{"ADMIN", "employee", "write"},
	{"ADMIN", "punch", "create"},
	{"ADMIN", "punch", "read"},
	{"ADMIN", "punch", "write"},
	{"ADMIN", "holiday", "read"},
	{"ADMIN", "holiday", "write"},
	{"ADMIN", "report", "read"},
	{"ADMIN", "user", "write"},

	{"STAFF", "punch", "create"},
	{"STAFF", "punch", "read"},
	{"STAFF", "report", "read"},
	{"STAFF", "holiday", "read"},
	{"STAFF", "employee", "read"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
