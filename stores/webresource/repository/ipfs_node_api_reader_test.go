package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/require"

	bCtx "github.com/mysterymart/goapi/base/ctx"
)

func Test_ipfsNodeApiReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	expected := []byte(`{"name":"token #7","image":"ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ"}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/cat" || r.URL.Query().Get("arg") != "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"Message":"invalid path","Code":0}`))
			return
		}
		w.Write(expected)
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(srv.URL), 10*time.Second)
	b, err := r.Get(ctx, "QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0")
	req.NoError(err)
	req.Equal(expected, b)
}

func Test_ipfsNodeApiReaderRepo_Get_nodeError(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"Message":"merkledag: not found","Code":0}`))
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(srv.URL), 10*time.Second)
	_, err := r.Get(ctx, "QmUnknown")
	req.Error(err)
}
