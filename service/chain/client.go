package chain

import (
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/base/log"
	"github.com/mysterymart/goapi/domain"
)

var ErrReverted = xerrors.New("transaction reverted")

const defaultTxWaitTimeout = 2 * time.Minute

type ClientCfg struct {
	RpcUrl string
	// hex private key of the submitting account; empty disables the write path
	PrivateKey string
	ChainId    int64
	// how long Transact waits for a receipt before giving up on the
	// transaction; zero means defaultTxWaitTimeout
	TxWaitTimeout time.Duration
}

// Client packs, submits and unpacks contract interactions. Call is a gasless
// read; Transact signs and sends a state-changing transaction and waits for
// its receipt. Transact never retries: a sent transaction cannot be taken
// back, so resubmitting blindly could double the user's intent.
type Client interface {
	Call(c bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Transact(c bCtx.Ctx, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error)
}

type clientImpl struct {
	client        *ethclient.Client
	chainId       *big.Int
	key           *ecdsa.PrivateKey
	from          common.Address
	txWaitTimeout time.Duration
}

func NewClient(c bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(c, cfg.RpcUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	impl := &clientImpl{
		client:        client,
		chainId:       big.NewInt(cfg.ChainId),
		txWaitTimeout: cfg.TxWaitTimeout,
	}
	if impl.txWaitTimeout == 0 {
		impl.txWaitTimeout = defaultTxWaitTimeout
	}
	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(cfg.PrivateKey)
		if err != nil {
			c.WithField("err", err).Error("failed to parse private key")
			return nil, err
		}
		impl.key = key
		impl.from = crypto.PubkeyToAddress(key.PublicKey)
	}
	return impl, nil
}

func (cl *clientImpl) Call(c bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := cl.client.CallContract(c, msg, nil)
	if err != nil {
		c.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		c.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (cl *clientImpl) Transact(c bCtx.Ctx, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error) {
	if cl.key == nil {
		return "", xerrors.New("write path disabled: no private key configured")
	}
	data, err := _abi.Pack(method, params...)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Pack failed")
		return "", err
	}
	if value == nil {
		value = big.NewInt(0)
	}

	nonce, err := cl.client.PendingNonceAt(c, cl.from)
	if err != nil {
		c.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", err
	}
	gasPrice, err := cl.client.SuggestGasPrice(c)
	if err != nil {
		c.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", err
	}
	gasLimit, err := cl.client.EstimateGas(c, ethereum.CallMsg{
		From:  cl.from,
		To:    &addr,
		Value: value,
		Data:  data,
	})
	if err != nil {
		// estimation fails when the call would revert; surface it before
		// spending any gas
		c.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Warn("client.EstimateGas failed")
		return "", err
	}

	tx := types.NewTransaction(nonce, addr, value, gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(cl.chainId), cl.key)
	if err != nil {
		c.WithField("err", err).Error("types.SignTx failed")
		return "", err
	}
	if err := cl.client.SendTransaction(c, signed); err != nil {
		c.WithField("err", err).Error("client.SendTransaction failed")
		return "", err
	}

	receipt, err := cl.waitMined(c, signed.Hash())
	if err != nil {
		return "", err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.WithFields(log.Fields{
			"method": method,
			"tx":     signed.Hash().Hex(),
		}).Warn("transaction reverted")
		return domain.TxHash(signed.Hash().Hex()), ErrReverted
	}
	return domain.TxHash(signed.Hash().Hex()), nil
}

func (cl *clientImpl) waitMined(c bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := bCtx.WithTimeout(c, cl.txWaitTimeout)
	defer cancel()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		receipt, err := cl.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if err != ethereum.NotFound {
			ctx.WithField("err", err).Error("client.TransactionReceipt failed")
			return nil, err
		}
		select {
		case <-ctx.Done():
			ctx.WithField("tx", hash.Hex()).Warn("gave up waiting for receipt")
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
