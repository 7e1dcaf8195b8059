package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

// EmptyAddress is the zero-address sentinel the contract returns where no
// party is set, e.g. an auction with no bid yet.
const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return id, nil
}

// BoxId is the 64-bit blind box identifier, kept as its hex form without the
// 0x prefix. The chain carries it as an unsigned integer.
type BoxId string

func (b BoxId) String() string {
	return string(b)
}

func (b BoxId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(string(b), 16)
	if !ok {
		return nil, xerrors.Errorf("invalid box id %s", b)
	}
	return id, nil
}

// BoxIdFromBigInt renders the id zero-padded to 16 hex chars so the string
// form matches what CreateBlindBox handed out.
func BoxIdFromBigInt(id *big.Int) BoxId {
	return BoxId(fmt.Sprintf("%016x", id))
}

type TxHash string

type BlockNumber uint64
