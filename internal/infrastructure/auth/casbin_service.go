package auth

import (
	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// CasbinService builds the endpoint-gate enforcer. The model matches
// (role_<role>, route pattern, method) triples with keyMatch2 on the
// path and regexMatch on the method; rules persist in the casbin_rule
// table through the gorm adapter.
type CasbinService struct {
	E *casbin.Enforcer
}

func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(modelPath, adapter)
	if err != nil {
		return nil, err
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{E: enforcer}, nil
}
