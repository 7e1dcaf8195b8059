package wei

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mysterymart/goapi/domain"
)

func TestToBaseUnits(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "one ether", in: "1", want: "1000000000000000000"},
		{name: "half ether", in: "0.5", want: "500000000000000000"},
		{name: "full precision", in: "0.000000000000000001", want: "1"},
		{name: "eighteen nines", in: "1.999999999999999999", want: "1999999999999999999"},
		{name: "zero allowed here", in: "0", want: "0"},
		{name: "whitespace trimmed", in: " 1.5 ", want: "1500000000000000000"},
		{name: "empty", in: "", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
		{name: "non numeric", in: "abc", wantErr: true},
		{name: "too many fractional digits", in: "0.0000000000000000001", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := ToBaseUnits(tt.in)
			if tt.wantErr {
				req.ErrorIs(err, domain.ErrInvalidAmount)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got.String())
		})
	}
}

func TestToPositiveBaseUnits(t *testing.T) {
	req := require.New(t)

	_, err := ToPositiveBaseUnits("0")
	req.ErrorIs(err, domain.ErrInvalidAmount)

	_, err = ToPositiveBaseUnits("0.0")
	req.ErrorIs(err, domain.ErrInvalidAmount)

	got, err := ToPositiveBaseUnits("0.1")
	req.NoError(err)
	req.Equal("100000000000000000", got.String())
}

func TestRoundTrip(t *testing.T) {
	req := require.New(t)
	// toDecimalString(toBaseUnits(s)) round-trips to the canonical form of s
	cases := map[string]string{
		"1":                    "1",
		"1.50":                 "1.5",
		"0.000000000000000001": "0.000000000000000001",
		"123.456":              "123.456",
		"0":                    "0",
	}
	for in, want := range cases {
		v, err := ToBaseUnits(in)
		req.NoError(err)
		req.Equal(want, ToDecimalString(v))
	}
}

func TestToDecimalStringNil(t *testing.T) {
	require.Equal(t, "0", ToDecimalString(nil))
	require.Equal(t, "1.5", ToDecimalString(big.NewInt(0).SetUint64(1500000000000000000)))
}
