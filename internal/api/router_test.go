package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexZinkM/unified-wallet/ethereum"
	"github.com/AlexZinkM/unified-wallet/internal/chains"
	"github.com/AlexZinkM/unified-wallet/internal/storage"
	"github.com/AlexZinkM/unified-wallet/internal/wallet"
	"github.com/AlexZinkM/unified-wallet/solana"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetupRouterRoutes(t *testing.T) {
	log := zap.NewNop()
	m := wallet.NewManager(wallet.NewStore(storage.NewMemoryStore()))
	reg := chains.NewRegistry()
	reg.Register(solana.NewAdapter(m, nil, nil, log))
	reg.Register(ethereum.NewAdapter(m, nil, nil, 1, log))

	router, err := SetupRouter(m, reg, log)
	require.NoError(t, err)

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/wallet/status", "", http.StatusOK},
		{http.MethodPost, "/wallet/unlock", `{"password":"pw"}`, http.StatusNotFound},
		{http.MethodPost, "/wallet/create", `{"password":"pw"}`, http.StatusOK},
		{http.MethodPost, "/solana/sign", `{"message":"aGk="}`, http.StatusOK},
		{http.MethodPost, "/ethereum/sign", `{"message":"aGk="}`, http.StatusOK},
		{http.MethodPost, "/wallet/lock", "", http.StatusOK},
		{http.MethodPost, "/ethereum/sign", `{"message":"aGk="}`, http.StatusLocked},
		{http.MethodGet, "/bitcoin/balance", "", http.StatusNotFound},
		{http.MethodGet, "/wallet/create", "", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
		assert.Equal(t, tc.want, rec.Code, "%s %s: %s", tc.method, tc.path, rec.Body.String())
	}
}
