package model

import (
	"errors"
	"fmt"
)

// Quantity is an amount with its unit (lovelace for ADA amounts)
type Quantity struct {
	Quantity int64  `json:"quantity"`
	Unit     string `json:"unit"`
}

// WalletBalance groups the balances reported for a wallet
type WalletBalance struct {
	Available Quantity `json:"available"`
	Total     Quantity `json:"total"`
	Reward    Quantity `json:"reward"`
}

// SyncProgress is the sync percentage of a wallet. It may be fractional.
type SyncProgress struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// WalletState is the sync state of a wallet ("ready", "syncing", "not_responding")
type WalletState struct {
	Status   string        `json:"status"`
	Progress *SyncProgress `json:"progress,omitempty"` // only while syncing
}

// PassphraseInfo holds metadata about the spending passphrase
type PassphraseInfo struct {
	LastUpdatedAt string `json:"lastUpdatedAt"`
}

// ChainTip is the last block known to the wallet
type ChainTip struct {
	EpochNumber int64 `json:"epochNumber"`
	SlotNumber  int64 `json:"slotNumber"`
	Height      int64 `json:"height"`
}

// Wallet represents a wallet as returned by wallets/list, wallets/detail and wallets/createOrRestore
type Wallet struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Balance        WalletBalance   `json:"balance"`
	State          WalletState     `json:"state"`
	AddressPoolGap int             `json:"addressPoolGap,omitempty"`
	Passphrase     *PassphraseInfo `json:"passphrase,omitempty"`
	Tip            *ChainTip       `json:"tip,omitempty"`
}

// Validate checks the fields every wallet response must carry.
func (w *Wallet) Validate() error {
	if w.ID == "" {
		return errors.New("wallet id is missing")
	}
	return nil
}

// RestoreWalletRequest is the plaintext content of wallets/createOrRestore
type RestoreWalletRequest struct {
	Name                 string   `json:"name"`
	MnemonicSentence     []string `json:"mnemonicSentence"`
	MnemonicSecondFactor []string `json:"mnemonicSecondFactor,omitempty"`
	Passphrase           string   `json:"passphrase"`
	AddressPoolGap       int      `json:"addressPoolGap,omitempty"`
}

// Validate validates RestoreWalletRequest before it is encrypted and sent.
func (r *RestoreWalletRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	switch len(r.MnemonicSentence) {
	case 12, 15, 18, 21, 24:
	default:
		return fmt.Errorf("mnemonic sentence must have 12, 15, 18, 21 or 24 words, got %d", len(r.MnemonicSentence))
	}
	if len(r.Passphrase) < 10 {
		return errors.New("passphrase must be at least 10 characters")
	}
	return nil
}

// WalletAddress is a single address of a wallet
type WalletAddress struct {
	ID             string   `json:"id"`
	State          string   `json:"state"` // "used" or "unused"
	DerivationPath []string `json:"derivationPath,omitempty"`
}

// WalletAddressesResponse is the camelized response of wallets/addresses/list
type WalletAddressesResponse struct {
	WalletID  string          `json:"walletId"`
	CreatedAt string          `json:"createdAt,omitempty"`
	Addresses []WalletAddress `json:"addresses,omitempty"`
}

// Validate checks the fields every addresses response must carry.
func (r *WalletAddressesResponse) Validate() error {
	if r.WalletID == "" {
		return errors.New("wallet id is missing")
	}
	return nil
}

// FirstUnused returns the first address in "unused" state, if any
func (r *WalletAddressesResponse) FirstUnused() (WalletAddress, bool) {
	for _, a := range r.Addresses {
		if a.State == "unused" {
			return a, true
		}
	}
	return WalletAddress{}, false
}

// ReceiveAddressResponse is the first unused address of a wallet with its QR code
type ReceiveAddressResponse struct {
	WalletID string `json:"walletId"`
	Address  string `json:"address"`
	QR       string `json:"QR"` // base64 PNG
}

// CWBFile represents .cwb mnemonic backup file structure
type CWBFile struct {
	Network    string `json:"network"`
	WalletName string `json:"walletName"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// MnemonicBackup represents decrypted backup data
type MnemonicBackup struct {
	MnemonicSentence []string `json:"mnemonicSentence"`
	CreatedAt        string   `json:"createdAt"`
}
