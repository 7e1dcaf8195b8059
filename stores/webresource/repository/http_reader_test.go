package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/mysterymart/goapi/base/ctx"
)

func Test_httpReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	expected := []byte(`{"name":"token #7","image":"ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ"}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(expected)
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewHttpReaderRepo(1, 10*time.Second, nil)
	b, err := r.Get(ctx, srv.URL)
	req.NoError(err)
	req.Equal(expected, b)
}

func Test_httpReaderRepo_Get_non200(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewHttpReaderRepo(0, 10*time.Second, nil)
	_, err := r.Get(ctx, srv.URL)
	req.Error(err)
}
