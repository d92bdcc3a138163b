package handler

import (
	"net/http"

	"github.com/AlexZinkM/unified-wallet/internal/chains"
	"github.com/AlexZinkM/unified-wallet/internal/common"
	"github.com/AlexZinkM/unified-wallet/internal/model"
	"github.com/AlexZinkM/unified-wallet/internal/wallet"

	"go.uber.org/zap"
)

// WalletHandler serves the wallet lifecycle: create, import, unlock, lock and clear.
type WalletHandler struct {
	manager  *wallet.Manager
	registry *chains.Registry
	log      *zap.Logger
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(manager *wallet.Manager, registry *chains.Registry, log *zap.Logger) *WalletHandler {
	return &WalletHandler{manager: manager, registry: registry, log: log}
}

// Create handles POST /wallet/create
// @Summary      Create new wallet
// @Description  Generates a recovery phrase, derives Solana and Ethereum keys, stores them encrypted and unlocks. The mnemonic is returned only once.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.PasswordRequest  true  "Password"
// @Success      200      {object}  model.CreateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/create [post]
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req model.PasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	// Use password as []byte, then zero it immediately
	password := []byte(req.Password)
	defer clear(password)

	mnemonic, session, err := h.manager.Create(r.Context(), password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CreateResponse{
		Mnemonic:   mnemonic,
		PublicKeys: session.PublicKeys(),
	})
}

// Import handles POST /wallet/import
// @Summary      Import wallet from recovery phrase
// @Description  Restores both chain keys from a BIP-39 mnemonic, overwriting any stored wallet, and unlocks.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Mnemonic and password"
// @Success      200      {object}  model.SessionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req model.ImportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	password := []byte(req.Password)
	defer clear(password)

	session, err := h.manager.Import(r.Context(), req.Mnemonic, password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{PublicKeys: session.PublicKeys()})
}

// ImportKey handles POST /wallet/import-key
// @Summary      Import Solana private key
// @Description  Restores a Solana-only wallet from 64 comma-separated byte values. Ethereum is unavailable for such wallets.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportKeyRequest  true  "Private key and password"
// @Success      200      {object}  model.SessionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/import-key [post]
func (h *WalletHandler) ImportKey(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req model.ImportKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	password := []byte(req.Password)
	defer clear(password)

	session, err := h.manager.ImportPrivateKey(r.Context(), req.PrivateKey, password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{PublicKeys: session.PublicKeys()})
}

// Unlock handles POST /wallet/unlock
// @Summary      Unlock wallet
// @Description  Decrypts the stored wallet. A failed attempt leaves the wallet locked.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.PasswordRequest  true  "Password"
// @Success      200      {object}  model.SessionResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallet/unlock [post]
func (h *WalletHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req model.PasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	password := []byte(req.Password)
	defer clear(password)

	session, err := h.manager.Unlock(r.Context(), password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{PublicKeys: session.PublicKeys()})
}

// Lock handles POST /wallet/lock
// @Summary      Lock wallet
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.SuccessResponse
// @Router       /wallet/lock [post]
func (h *WalletHandler) Lock(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	h.manager.Lock()
	writeJSON(w, http.StatusOK, model.SuccessResponse{Success: true, Message: "Wallet locked"})
}

// Clear handles POST /wallet/clear
// @Summary      Delete wallet
// @Description  Removes the stored wallet and locks. Without the recovery phrase the keys are gone.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.SuccessResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /wallet/clear [post]
func (h *WalletHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	if err := h.manager.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SuccessResponse{Success: true, Message: "Wallet cleared"})
}

// ChangePassword handles POST /wallet/password
// @Summary      Change password
// @Description  Re-encrypts both chain keys under the new password
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChangePasswordRequest  true  "Old and new password"
// @Success      200      {object}  model.SuccessResponse
// @Failure      401      {object}  model.ErrorResponse
// @Router       /wallet/password [post]
func (h *WalletHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req model.ChangePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	oldPassword, newPassword := []byte(req.OldPassword), []byte(req.NewPassword)
	defer clear(oldPassword)
	defer clear(newPassword)

	if err := h.manager.ChangePassword(r.Context(), oldPassword, newPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SuccessResponse{Success: true, Message: "Password changed"})
}

// Status handles GET /wallet/status
// @Summary      Wallet state
// @Description  Reports uninitialized, locked or unlocked, with public keys when unlocked
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.StatusResponse
// @Router       /wallet/status [get]
func (h *WalletHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	state, err := h.manager.State(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := model.StatusResponse{State: string(state)}
	if session, err := h.manager.Session(); err == nil {
		pk := session.PublicKeys()
		resp.IsUnlocked = true
		resp.PublicKeys = &pk
	}
	writeJSON(w, http.StatusOK, resp)
}

// QR handles GET /wallet/qr
// @Summary      Receive address QR code
// @Description  Returns the wallet's address on the chain and a base64 PNG QR code of it
// @Tags         wallet
// @Produce      json
// @Param        chain  query     string  true  "solana or ethereum"
// @Success      200    {object}  model.QRResponse
// @Failure      423    {object}  model.ErrorResponse
// @Router       /wallet/qr [get]
func (h *WalletHandler) QR(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	chain, err := model.ParseChain(r.URL.Query().Get("chain"))
	if err != nil {
		writeError(w, err)
		return
	}
	adapter, err := h.registry.Get(chain)
	if err != nil {
		writeError(w, err)
		return
	}

	address, err := adapter.PublicKey()
	if err != nil {
		writeError(w, err)
		return
	}

	qr, err := common.QRCodePNG(address)
	if err != nil {
		h.log.Error("failed to render QR code", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.QRResponse{Chain: chain, Address: address, QR: qr})
}
