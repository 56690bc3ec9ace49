// Command cardano-wallet talks to the encrypted Cardano wallet backend and
// serves a local JSON facade over it.
//
// @title        Cardano Wallet API
// @version      1.0
// @description  Local facade over the encrypted Cardano wallet backend.
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/AlexZinkM/cardano-wallet/internal/config"
	"github.com/AlexZinkM/cardano-wallet/internal/crypto"
	"github.com/AlexZinkM/cardano-wallet/internal/logging"
	"github.com/AlexZinkM/cardano-wallet/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what commands talking to the backend need
type app struct {
	logger  *zap.Logger
	wallets *repository.WalletRepository
}

func newApp() (*app, error) {
	if err := config.Init(); err != nil {
		return nil, err
	}
	cfg := config.Get()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []repository.Option{
		repository.WithHTTPClient(&http.Client{Timeout: config.GetRequestTimeout()}),
		repository.WithErrorHandler(repository.LogErrorHandler(logger)),
	}

	if path := config.GetServerPublicKeyPath(); path != "" {
		publicKey, err := crypto.LoadPublicKey(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, repository.WithEncryptor(crypto.NewHybridEncryptor(publicKey)))
	} else {
		logger.Warn("SERVER_PUBLIC_KEY_PATH is not set, request content is sent without encryption")
	}

	return &app{
		logger:  logger,
		wallets: repository.NewWalletRepository(config.GetBaseURL(), opts...),
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cardano-wallet",
		Short:         "Client for the encrypted Cardano wallet backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newWalletsCmd(),
		newWalletCmd(),
		newAddressesCmd(),
		newRestoreCmd(),
		newBackupCmd(),
		newRekeyCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
