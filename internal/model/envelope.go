package model

// Request types multiplexed onto the wallet endpoints
const (
	RequestTypeListWallets     = "wallets/list"
	RequestTypeRestoreWallet   = "wallets/createOrRestore"
	RequestTypeWalletDetail    = "wallets/detail"
	RequestTypeWalletAddresses = "wallets/addresses/list"
)

// Envelope is the body of every request sent to the wallet backend.
// Content and ContentKey are omitted when no encryptor is configured.
// WalletID is sent only by per-wallet operations, even when empty.
type Envelope struct {
	Content     string  `json:"content,omitempty"`
	ContentKey  string  `json:"contentKey,omitempty"`
	RequestType string  `json:"requestType"`
	WalletID    *string `json:"walletId,omitempty"`
}
