package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/cardano-wallet/internal/common"
	"github.com/AlexZinkM/cardano-wallet/internal/model"
	"github.com/AlexZinkM/cardano-wallet/internal/repository"
)

const qrSize = 256

// WalletService is the set of wallet operations served by the facade
type WalletService interface {
	ListWallets(ctx context.Context) ([]model.Wallet, error)
	RestoreWallet(ctx context.Context, content *model.RestoreWalletRequest) (*model.Wallet, error)
	GetWalletByID(ctx context.Context, walletID string) (*model.Wallet, error)
	GetWalletAddresses(ctx context.Context, walletID string) (*model.WalletAddressesResponse, error)
}

// WalletHandler exposes wallet operations over local HTTP
type WalletHandler struct {
	wallets WalletService
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(wallets WalletService) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// ListWallets handles GET /cardano/wallets
// @Summary      List wallets
// @Description  Lists all wallets known to the backend
// @Tags         wallets
// @Produce      json
// @Success      200  {array}   model.Wallet
// @Failure      502  {object}  model.ErrorResponse
// @Router       /cardano/wallets [get]
func (h *WalletHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.wallets.ListWallets(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wallets)
}

// RestoreWallet handles POST /cardano/wallets
// @Summary      Create or restore wallet
// @Description  Restores a wallet from a mnemonic sentence. The request is encrypted before it leaves the machine.
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      model.RestoreWalletRequest  true  "Wallet data"
// @Success      200      {object}  model.Wallet
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /cardano/wallets [post]
func (h *WalletHandler) RestoreWallet(w http.ResponseWriter, r *http.Request) {
	var req model.RestoreWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	defer clear(req.MnemonicSentence)

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	wallet, err := h.wallets.RestoreWallet(r.Context(), &req)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wallet)
}

// GetWallet handles GET /cardano/wallets/{id}
// @Summary      Get wallet
// @Description  Gets details of a single wallet
// @Tags         wallets
// @Produce      json
// @Param        id   path      string  true  "Wallet ID"
// @Success      200  {object}  model.Wallet
// @Failure      502  {object}  model.ErrorResponse
// @Router       /cardano/wallets/{id} [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.wallets.GetWalletByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wallet)
}

// GetWalletAddresses handles GET /cardano/wallets/{id}/addresses
// @Summary      List wallet addresses
// @Description  Lists addresses of a wallet
// @Tags         wallets
// @Produce      json
// @Param        id   path      string  true  "Wallet ID"
// @Success      200  {object}  model.WalletAddressesResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /cardano/wallets/{id}/addresses [get]
func (h *WalletHandler) GetWalletAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.wallets.GetWalletAddresses(r.Context(), r.PathValue("id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

// ReceiveAddress handles GET /cardano/wallets/{id}/receive
// @Summary      Get receive address
// @Description  Returns the first unused address of a wallet with a QR code (base64 PNG)
// @Tags         wallets
// @Produce      json
// @Param        id   path      string  true  "Wallet ID"
// @Success      200  {object}  model.ReceiveAddressResponse
// @Failure      404  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /cardano/wallets/{id}/receive [get]
func (h *WalletHandler) ReceiveAddress(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.wallets.GetWalletAddresses(r.Context(), r.PathValue("id"))
	if err != nil {
		writeBackendError(w, err)
		return
	}

	unused, ok := addresses.FirstUnused()
	if !ok {
		writeError(w, http.StatusNotFound, model.ErrorResponse{Error: "wallet has no unused address", Code: "no_unused_address"})
		return
	}

	qr, err := common.AddressQR(unused.ID, qrSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, model.ReceiveAddressResponse{
		WalletID: addresses.WalletID,
		Address:  unused.ID,
		QR:       qr,
	})
}

// writeBackendError maps a repository error to a facade response.
// Backend status codes are passed through.
func writeBackendError(w http.ResponseWriter, err error) {
	var respErr *repository.ResponseError
	switch {
	case errors.As(err, &respErr):
		body := respErr.Detail
		if body.Text() == "" {
			body.Error = err.Error()
		}
		writeError(w, respErr.StatusCode, body)
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, model.ErrorResponse{Error: err.Error(), Code: "timeout"})
	default:
		writeError(w, http.StatusBadGateway, model.ErrorResponse{Error: err.Error(), Code: "backend_unavailable"})
	}
}

func writeError(w http.ResponseWriter, status int, body model.ErrorResponse) {
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
