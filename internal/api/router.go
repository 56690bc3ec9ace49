package api

import (
	"net/http"

	_ "github.com/AlexZinkM/cardano-wallet/docs" // swagger spec
	"github.com/AlexZinkM/cardano-wallet/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(walletHandler *handler.WalletHandler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("GET /cardano/wallets", walletHandler.ListWallets)
	mux.HandleFunc("POST /cardano/wallets", walletHandler.RestoreWallet)
	mux.HandleFunc("GET /cardano/wallets/{id}", walletHandler.GetWallet)
	mux.HandleFunc("GET /cardano/wallets/{id}/addresses", walletHandler.GetWalletAddresses)
	mux.HandleFunc("GET /cardano/wallets/{id}/receive", walletHandler.ReceiveAddress)

	return mux
}
