package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/stretchr/testify/require"

	bCtx "github.com/mysterymart/goapi/base/ctx"
)

// rpc stub that reports every transaction receipt as not yet available
func newPendingRpcServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Id json.RawMessage `json:"id"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      req.Id,
			"result":  nil,
		})
	}))
}

func Test_clientImpl_waitMined_timeout(t *testing.T) {
	req := require.New(t)
	srv := newPendingRpcServer()
	defer srv.Close()

	client, err := ethclient.Dial(srv.URL)
	req.NoError(err)

	cl := &clientImpl{client: client, txWaitTimeout: 50 * time.Millisecond}
	start := time.Now()
	_, err = cl.waitMined(bCtx.Background(), common.HexToHash("0x01"))
	req.Error(err)
	req.ErrorIs(err, context.DeadlineExceeded)
	req.Less(time.Since(start), 5*time.Second)
}

func Test_NewClient_defaultTxWaitTimeout(t *testing.T) {
	req := require.New(t)
	srv := newPendingRpcServer()
	defer srv.Close()

	client, err := NewClient(bCtx.Background(), &ClientCfg{RpcUrl: srv.URL, ChainId: 1337})
	req.NoError(err)
	req.Equal(defaultTxWaitTimeout, client.(*clientImpl).txWaitTimeout)
}
