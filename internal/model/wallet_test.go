package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func words(n int) []string {
	return strings.Fields(strings.Repeat("abandon ", n))
}

func TestRestoreWalletRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RestoreWalletRequest
		wantErr string
	}{
		{
			name: "valid 24 words",
			req:  RestoreWalletRequest{Name: "main", MnemonicSentence: words(24), Passphrase: "0123456789"},
		},
		{
			name: "valid 15 words",
			req:  RestoreWalletRequest{Name: "main", MnemonicSentence: words(15), Passphrase: "0123456789"},
		},
		{
			name:    "missing name",
			req:     RestoreWalletRequest{MnemonicSentence: words(24), Passphrase: "0123456789"},
			wantErr: "name is required",
		},
		{
			name:    "odd word count",
			req:     RestoreWalletRequest{Name: "main", MnemonicSentence: words(13), Passphrase: "0123456789"},
			wantErr: "mnemonic sentence must have 12, 15, 18, 21 or 24 words, got 13",
		},
		{
			name:    "short passphrase",
			req:     RestoreWalletRequest{Name: "main", MnemonicSentence: words(12), Passphrase: "short"},
			wantErr: "passphrase must be at least 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestWallet_Validate(t *testing.T) {
	assert.NoError(t, (&Wallet{ID: "w1"}).Validate())
	assert.EqualError(t, (&Wallet{Name: "main"}).Validate(), "wallet id is missing")
}

func TestWalletAddressesResponse(t *testing.T) {
	resp := &WalletAddressesResponse{
		WalletID: "w1",
		Addresses: []WalletAddress{
			{ID: "addr_test1a", State: "used"},
			{ID: "addr_test1b", State: "unused"},
			{ID: "addr_test1c", State: "unused"},
		},
	}
	assert.NoError(t, resp.Validate())

	addr, ok := resp.FirstUnused()
	assert.True(t, ok)
	assert.Equal(t, "addr_test1b", addr.ID)

	_, ok = (&WalletAddressesResponse{WalletID: "w1"}).FirstUnused()
	assert.False(t, ok)

	assert.EqualError(t, (&WalletAddressesResponse{}).Validate(), "wallet id is missing")
}

func TestErrorResponse_Text(t *testing.T) {
	assert.Equal(t, "wallet w1 is unknown", ErrorResponse{Error: "no such wallet", Message: "wallet w1 is unknown"}.Text())
	assert.Equal(t, "no such wallet", ErrorResponse{Error: "no such wallet"}.Text())
	assert.Empty(t, ErrorResponse{}.Text())
}
