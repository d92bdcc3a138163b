package handler

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/unified-wallet/internal/chains"
	"github.com/AlexZinkM/unified-wallet/internal/model"

	"go.uber.org/zap"
)

// ChainHandler serves balance and signing endpoints of one chain under /{chain}/.
type ChainHandler struct {
	chain    model.Chain
	registry *chains.Registry
	log      *zap.Logger
}

// NewChainHandler creates a handler for a chain registered in registry
func NewChainHandler(chain model.Chain, registry *chains.Registry, log *zap.Logger) (*ChainHandler, error) {
	if _, err := registry.Get(chain); err != nil {
		return nil, err
	}
	return &ChainHandler{
		chain:    chain,
		registry: registry,
		log:      log.With(zap.String("chain", string(chain))),
	}, nil
}

func (h *ChainHandler) adapter() (chains.Adapter, error) {
	return h.registry.Get(h.chain)
}

// GetBalance handles GET /{chain}/balance
// @Summary      Get balance
// @Description  Native and USDC balance with the USD value of the native asset. Defaults to the unlocked wallet's address.
// @Tags         chain
// @Produce      json
// @Param        chain    path      string  true   "solana or ethereum"
// @Param        address  query     string  false  "Address to query instead of the wallet's"
// @Success      200      {object}  model.BalanceResponse
// @Failure      423      {object}  model.ErrorResponse
// @Router       /{chain}/balance [get]
func (h *ChainHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	adapter, err := h.adapter()
	if err != nil {
		writeError(w, err)
		return
	}

	balance, err := adapter.GetBalances(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		h.log.Warn("balance lookup failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// SignMessage handles POST /{chain}/sign
// @Summary      Sign message
// @Description  Signs arbitrary bytes (base64). Solana returns a base58 ed25519 signature, Ethereum a personal_sign signature.
// @Tags         chain
// @Accept       json
// @Produce      json
// @Param        chain    path      string                    true  "solana or ethereum"
// @Param        request  body      model.SignMessageRequest  true  "Message"
// @Success      200      {object}  model.SignMessageResponse
// @Failure      423      {object}  model.ErrorResponse
// @Router       /{chain}/sign [post]
func (h *ChainHandler) SignMessage(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req model.SignMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	msg, err := base64.StdEncoding.DecodeString(req.Message)
	if err != nil {
		writeError(w, fmt.Errorf("%w: message must be base64: %w", errBadRequest, err))
		return
	}

	adapter, err := h.adapter()
	if err != nil {
		writeError(w, err)
		return
	}

	sig, err := adapter.SignMessage(msg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SignMessageResponse{Signature: sig})
}

// SignTransaction handles POST /{chain}/transaction/sign
// @Summary      Sign transaction
// @Description  Builds and signs a transfer without broadcasting it. The body is model.SolanaTxRequest or model.EthereumTxRequest by chain.
// @Tags         chain
// @Accept       json
// @Produce      json
// @Param        chain    path      string                   true  "solana or ethereum"
// @Param        request  body      model.SolanaTxRequest    true  "Transaction (Ethereum: model.EthereumTxRequest)"
// @Success      200      {object}  model.SignTxResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      423      {object}  model.ErrorResponse
// @Router       /{chain}/transaction/sign [post]
func (h *ChainHandler) SignTransaction(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	req, err := h.decodeTx(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	signed, err := h.registry.Sign(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SignTxResponse{SignedTx: signed})
}

// SendTransaction handles POST /{chain}/transaction/send
// @Summary      Send transaction
// @Description  Builds, signs and broadcasts a transfer. Subject to the send cooldown.
// @Tags         chain
// @Accept       json
// @Produce      json
// @Param        chain    path      string                   true  "solana or ethereum"
// @Param        request  body      model.SolanaTxRequest    true  "Transaction (Ethereum: model.EthereumTxRequest)"
// @Success      200      {object}  model.SendTxResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      423      {object}  model.ErrorResponse
// @Failure      429      {object}  model.ErrorResponse
// @Router       /{chain}/transaction/send [post]
func (h *ChainHandler) SendTransaction(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	req, err := h.decodeTx(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	txID, err := h.registry.Send(r.Context(), req)
	if err != nil {
		h.log.Warn("send failed", zap.Error(err))
		writeError(w, err)
		return
	}

	h.log.Info("transaction submitted", zap.String("tx_id", txID))
	writeJSON(w, http.StatusOK, model.SendTxResponse{TxID: txID})
}

// BroadcastTransaction handles POST /{chain}/transaction/broadcast
// @Summary      Broadcast signed transaction
// @Description  Submits the output of /{chain}/transaction/sign unchanged. Subject to the send cooldown.
// @Tags         chain
// @Accept       json
// @Produce      json
// @Param        chain    path      string                  true  "solana or ethereum"
// @Param        request  body      model.BroadcastRequest  true  "Signed transaction"
// @Success      200      {object}  model.SendTxResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      429      {object}  model.ErrorResponse
// @Router       /{chain}/transaction/broadcast [post]
func (h *ChainHandler) BroadcastTransaction(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req model.BroadcastRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	txID, err := h.registry.Broadcast(r.Context(), h.chain, req.SignedTx)
	if err != nil {
		h.log.Warn("broadcast failed", zap.Error(err))
		writeError(w, err)
		return
	}

	h.log.Info("signed transaction submitted", zap.String("tx_id", txID))
	writeJSON(w, http.StatusOK, model.SendTxResponse{TxID: txID})
}

// decodeTx decodes the body into the request type of this handler's chain.
func (h *ChainHandler) decodeTx(w http.ResponseWriter, r *http.Request) (model.TxRequest, error) {
	req, err := model.NewTxRequest(h.chain)
	if err != nil {
		return nil, err
	}
	if err := decodeJSON(w, r, req); err != nil {
		return nil, err
	}
	return req, nil
}
