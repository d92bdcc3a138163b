package api

import (
	"net/http"
	"time"

	"github.com/AlexZinkM/unified-wallet/internal/chains"
	"github.com/AlexZinkM/unified-wallet/internal/handler"
	"github.com/AlexZinkM/unified-wallet/internal/wallet"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers. Every chain in registry gets
// its endpoints under /{chain}/.
func SetupRouter(manager *wallet.Manager, registry *chains.Registry, log *zap.Logger) (http.Handler, error) {
	walletHandler := handler.NewWalletHandler(manager, registry, log)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet lifecycle endpoints
	mux.HandleFunc("/wallet/create", walletHandler.Create)
	mux.HandleFunc("/wallet/import", walletHandler.Import)
	mux.HandleFunc("/wallet/import-key", walletHandler.ImportKey)
	mux.HandleFunc("/wallet/unlock", walletHandler.Unlock)
	mux.HandleFunc("/wallet/lock", walletHandler.Lock)
	mux.HandleFunc("/wallet/clear", walletHandler.Clear)
	mux.HandleFunc("/wallet/password", walletHandler.ChangePassword)
	mux.HandleFunc("/wallet/status", walletHandler.Status)
	mux.HandleFunc("/wallet/qr", walletHandler.QR)

	// Chain endpoints
	for _, chain := range registry.List() {
		chainHandler, err := handler.NewChainHandler(chain, registry, log)
		if err != nil {
			return nil, err
		}
		prefix := "/" + string(chain)
		mux.HandleFunc(prefix+"/balance", chainHandler.GetBalance)
		mux.HandleFunc(prefix+"/sign", chainHandler.SignMessage)
		mux.HandleFunc(prefix+"/transaction/sign", chainHandler.SignTransaction)
		mux.HandleFunc(prefix+"/transaction/send", chainHandler.SendTransaction)
		mux.HandleFunc(prefix+"/transaction/broadcast", chainHandler.BroadcastTransaction)
	}

	return logRequests(mux, log), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs method, path, status and latency. Never bodies.
func logRequests(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("latency", time.Since(start)))
	})
}
