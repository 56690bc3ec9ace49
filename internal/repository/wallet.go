package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/cardano-wallet/internal/format"
	"github.com/AlexZinkM/cardano-wallet/internal/model"
)

const (
	walletPrefix = "/cardano"

	walletsPath   = "/wallets"
	addressesPath = "/addresses"
)

// WalletRepository is the client for wallet operations of the backend
type WalletRepository struct {
	*BaseRepository
}

// NewWalletRepository creates a wallet repository for the backend at baseURL
func NewWalletRepository(baseURL string, opts ...Option) *WalletRepository {
	return &WalletRepository{
		BaseRepository: NewBaseRepository(baseURL, walletPrefix, opts...),
	}
}

// emptyContent is encrypted for operations without a payload; the backend
// expects ciphertext of {} rather than no content at all.
func emptyContent() map[string]any {
	return map[string]any{}
}

// ListWallets returns all wallets known to the backend
func (r *WalletRepository) ListWallets(ctx context.Context) ([]model.Wallet, error) {
	wallets, err := r.listWallets(ctx)
	if err != nil {
		r.ErrorResponseHandler(err)
		return nil, err
	}
	return wallets, nil
}

func (r *WalletRepository) listWallets(ctx context.Context) ([]model.Wallet, error) {
	envelope, err := r.newEnvelope(emptyContent(), model.RequestTypeListWallets)
	if err != nil {
		return nil, err
	}

	data, err := r.post(ctx, walletsPath, envelope)
	if err != nil {
		return nil, err
	}

	var wallets []model.Wallet
	if err := json.Unmarshal(data, &wallets); err != nil {
		return nil, fmt.Errorf("failed to decode wallets: %w", err)
	}
	for i := range wallets {
		if err := wallets[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid wallet at index %d: %w", i, err)
		}
	}
	return wallets, nil
}

// RestoreWallet creates or restores a wallet from a mnemonic sentence.
// The whole request is encrypted.
func (r *WalletRepository) RestoreWallet(ctx context.Context, content *model.RestoreWalletRequest) (*model.Wallet, error) {
	wallet, err := r.restoreWallet(ctx, content)
	if err != nil {
		r.ErrorResponseHandler(err)
		return nil, err
	}
	return wallet, nil
}

func (r *WalletRepository) restoreWallet(ctx context.Context, content *model.RestoreWalletRequest) (*model.Wallet, error) {
	envelope, err := r.newEnvelope(content, model.RequestTypeRestoreWallet)
	if err != nil {
		return nil, err
	}

	data, err := r.post(ctx, walletsPath, envelope)
	if err != nil {
		return nil, err
	}
	return decodeWallet(data)
}

// GetWalletByID returns details of a single wallet
func (r *WalletRepository) GetWalletByID(ctx context.Context, walletID string) (*model.Wallet, error) {
	wallet, err := r.getWalletByID(ctx, walletID)
	if err != nil {
		r.ErrorResponseHandler(err)
		return nil, err
	}
	return wallet, nil
}

func (r *WalletRepository) getWalletByID(ctx context.Context, walletID string) (*model.Wallet, error) {
	envelope, err := r.newEnvelope(emptyContent(), model.RequestTypeWalletDetail)
	if err != nil {
		return nil, err
	}
	envelope.WalletID = &walletID

	data, err := r.post(ctx, walletsPath, envelope)
	if err != nil {
		return nil, err
	}
	return decodeWallet(data)
}

// GetWalletAddresses returns addresses of a wallet.
// The backend answers in snake_case; keys are converted to camelCase.
func (r *WalletRepository) GetWalletAddresses(ctx context.Context, walletID string) (*model.WalletAddressesResponse, error) {
	addresses, err := r.getWalletAddresses(ctx, walletID)
	if err != nil {
		r.ErrorResponseHandler(err)
		return nil, err
	}
	return addresses, nil
}

func (r *WalletRepository) getWalletAddresses(ctx context.Context, walletID string) (*model.WalletAddressesResponse, error) {
	envelope, err := r.newEnvelope(emptyContent(), model.RequestTypeWalletAddresses)
	if err != nil {
		return nil, err
	}
	envelope.WalletID = &walletID

	data, err := r.post(ctx, addressesPath, envelope)
	if err != nil {
		return nil, err
	}

	camelized, err := format.Camelize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to camelize addresses: %w", err)
	}

	var addresses model.WalletAddressesResponse
	if err := json.Unmarshal(camelized, &addresses); err != nil {
		return nil, fmt.Errorf("failed to decode addresses: %w", err)
	}
	if err := addresses.Validate(); err != nil {
		return nil, fmt.Errorf("invalid addresses response: %w", err)
	}
	return &addresses, nil
}

func decodeWallet(data []byte) (*model.Wallet, error) {
	var wallet model.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, fmt.Errorf("failed to decode wallet: %w", err)
	}
	if err := wallet.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wallet: %w", err)
	}
	return &wallet, nil
}
