package domain

import (
	"time"

	"github.com/mysterymart/goapi/base/ctx"
)

// MirrorRecord is the flat row persisted to the off-chain mirror after a
// mint, keyed by token id. The mirror holds no authority; it only indexes.
type MirrorRecord struct {
	TokenId             TokenId   `json:"tokenId"`
	TokenURI            string    `json:"tokenUri"`
	Owner               Address   `json:"owner"`
	Creator             Address   `json:"creator"`
	Price               string    `json:"price"`
	State               int32     `json:"state"`
	RoyaltyFeeNumerator string    `json:"royaltyFeeNumerator"`
	Timestamp           time.Time `json:"timestamp"`
}

type MirrorRepo interface {
	// Upsert persists the record, replacing any existing row with the same
	// token id.
	Upsert(ctx.Ctx, *MirrorRecord) error
}
