package usecase

import (
	"fmt"
	"math/big"
	"time"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/base/goroutine"
	"github.com/mysterymart/goapi/base/log"
	"github.com/mysterymart/goapi/base/wei"
	"github.com/mysterymart/goapi/domain"
	"github.com/mysterymart/goapi/domain/market"
	"github.com/mysterymart/goapi/domain/token"
	"github.com/mysterymart/goapi/service/pinata"
)

type MinterCfg struct {
	Pinata    pinata.Service
	ReadPort  market.ReadPort
	WritePort market.WritePort
	Mirror    domain.MirrorRepo
	// MirrorTimeout bounds the background mirror write, not the mint itself.
	MirrorTimeout time.Duration
}

type minter struct {
	pinata        pinata.Service
	read          market.ReadPort
	write         market.WritePort
	mirror        domain.MirrorRepo
	mirrorTimeout time.Duration
}

func NewMinter(cfg *MinterCfg) token.Usecase {
	timeout := cfg.MirrorTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &minter{
		pinata:        cfg.Pinata,
		read:          cfg.ReadPort,
		write:         cfg.WritePort,
		mirror:        cfg.Mirror,
		mirrorTimeout: timeout,
	}
}

func (u *minter) BatchMint(c bCtx.Ctx, owner domain.Address, items []*token.MintItem) (domain.TxHash, error) {
	if owner.IsEmpty() || len(items) == 0 {
		return "", domain.ErrValidation
	}

	tokenURIs := make([]string, len(items))
	royalties := make([]*big.Int, len(items))
	prices := make([]*big.Int, len(items))
	for i, item := range items {
		if item.RoyaltyPercentage < 0 {
			return "", domain.ErrValidation
		}
		price, err := wei.ToBaseUnits(item.PriceDecimal)
		if err != nil {
			return "", err
		}
		cid, err := u.pinata.PinJson(c, item.Metadata, pinata.WithMetadata(pinata.PinataMetadata{
			Name: item.Metadata.Name,
		}))
		if err != nil {
			c.WithFields(log.Fields{
				"name": item.Metadata.Name,
				"err":  err,
			}).Error("pinata.PinJson failed")
			return "", err
		}
		tokenURIs[i] = fmt.Sprintf("ipfs://%s", cid)
		royalties[i] = big.NewInt(item.RoyaltyPercentage)
		prices[i] = price
	}

	hash, err := u.write.BatchMintItems(c, owner, tokenURIs, royalties, prices)
	if err != nil {
		c.WithFields(log.Fields{
			"owner": owner,
			"err":   err,
		}).Error("write.BatchMintItems failed")
		return "", err
	}

	goroutine.RecoverableGo(func() {
		u.mirrorMinted(c, owner, items, tokenURIs)
	})

	return hash, nil
}

// mirrorMinted resolves the freshly assigned token ids and indexes the new
// rows. Best-effort: any failure is logged and dropped.
func (u *minter) mirrorMinted(parent bCtx.Ctx, owner domain.Address, items []*token.MintItem, tokenURIs []string) {
	c, cancel := bCtx.WithTimeout(parent, u.mirrorTimeout)
	defer cancel()

	balance, err := u.read.BalanceOf(c, owner)
	if err != nil {
		c.WithField("err", err).Warn("read.BalanceOf failed, skipping mirror")
		return
	}
	minted := int64(len(items))
	if balance.Int64() < minted {
		c.WithFields(log.Fields{
			"balance": balance,
			"minted":  minted,
		}).Warn("balance below batch size, skipping mirror")
		return
	}

	now := time.Now()
	first := balance.Int64() - minted
	for i := int64(0); i < minted; i++ {
		tokenId, err := u.read.TokenOfOwnerByIndex(c, owner, big.NewInt(first+i))
		if err != nil {
			c.WithField("err", err).Warn("read.TokenOfOwnerByIndex failed, skipping mirror")
			return
		}
		record := &domain.MirrorRecord{
			TokenId:             tokenId,
			TokenURI:            tokenURIs[i],
			Owner:               owner.ToLower(),
			Creator:             owner.ToLower(),
			Price:               items[i].PriceDecimal,
			State:               0,
			RoyaltyFeeNumerator: fmt.Sprintf("%d", items[i].RoyaltyPercentage),
			Timestamp:           now,
		}
		if err := u.mirror.Upsert(c, record); err != nil {
			c.WithFields(log.Fields{
				"tokenId": tokenId,
				"err":     err,
			}).Warn("mirror.Upsert failed")
		}
	}
}
