package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/xerrors"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/domain"
)

type postgresMirrorRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresMirrorRepo persists minted-token rows keyed by token id. The
// mirror is an index only; the chain stays authoritative.
func NewPostgresMirrorRepo(pool *pgxpool.Pool) domain.MirrorRepo {
	return &postgresMirrorRepo{pool: pool}
}

func (r *postgresMirrorRepo) Upsert(c bCtx.Ctx, record *domain.MirrorRecord) error {
	const query = `
		INSERT INTO minted_tokens (
			token_id, token_uri, owner, creator,
			price, state, royalty_fee_numerator, timestamp
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8
		)
		ON CONFLICT (token_id) DO UPDATE SET
			token_uri             = EXCLUDED.token_uri,
			owner                 = EXCLUDED.owner,
			creator               = EXCLUDED.creator,
			price                 = EXCLUDED.price,
			state                 = EXCLUDED.state,
			royalty_fee_numerator = EXCLUDED.royalty_fee_numerator,
			timestamp             = EXCLUDED.timestamp`

	_, err := r.pool.Exec(c, query,
		record.TokenId.String(), record.TokenURI,
		record.Owner.ToLowerStr(), record.Creator.ToLowerStr(),
		record.Price, record.State, record.RoyaltyFeeNumerator, record.Timestamp,
	)
	if err != nil {
		c.WithField("err", err).Error("pool.Exec failed")
		return xerrors.Errorf("upsert minted token %s: %w", record.TokenId, err)
	}
	return nil
}
