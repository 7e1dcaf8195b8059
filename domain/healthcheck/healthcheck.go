package healthcheck

import "github.com/mysterymart/goapi/base/ctx"

// HealthCheckRepo represent the healthcheck's repository contract
type HealthCheckRepo interface {
	PingDB(ctx.Ctx) error
}

// HealthCheckUsecase represent the healthcheck's usecase contract
type HealthCheckUsecase interface {
	Check(ctx.Ctx) error
}
