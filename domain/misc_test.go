package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxIdFromBigInt(t *testing.T) {
	req := require.New(t)

	// high nibble zero: the string form must keep its leading zero
	id, ok := new(big.Int).SetString("0ab1c2d3e4f50617", 16)
	req.True(ok)

	boxId := BoxIdFromBigInt(id)
	req.Equal(BoxId("0ab1c2d3e4f50617"), boxId)
	req.Len(boxId.String(), 16)

	parsed, err := boxId.ToBigInt()
	req.NoError(err)
	req.Zero(parsed.Cmp(id))
}

func TestBoxIdToBigIntInvalid(t *testing.T) {
	req := require.New(t)
	_, err := BoxId("not-hex").ToBigInt()
	req.Error(err)
}
