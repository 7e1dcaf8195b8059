package token

import (
	"github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/domain"
)

// MintItem is one token to create in a batch mint. The metadata document is
// pinned first; the resulting content identifier becomes the token URI.
type MintItem struct {
	Metadata          domain.Metadata `json:"metadata"`
	RoyaltyPercentage int64           `json:"royaltyPercentage"`
	PriceDecimal      string          `json:"price"`
}

type Usecase interface {
	// BatchMint pins every item's metadata, submits one batchMintItems
	// transaction and mirrors the minted rows off-chain. The mirror write is
	// best-effort; its failure never fails the mint.
	BatchMint(c ctx.Ctx, owner domain.Address, items []*MintItem) (domain.TxHash, error)
}
