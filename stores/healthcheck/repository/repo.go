package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mysterymart/goapi/base/ctx"
	hcdomain "github.com/mysterymart/goapi/domain/healthcheck"
)

type impl struct {
	pool *pgxpool.Pool
}

// New creates new healthcheck repo backed by the mirror database
func New(pool *pgxpool.Pool) hcdomain.HealthCheckRepo {
	return &impl{pool: pool}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.pool.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping postgres error")
		return err
	}
	return nil
}
