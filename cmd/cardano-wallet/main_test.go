package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexZinkM/cardano-wallet/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var envelope model.Envelope
		_ = json.Unmarshal(data, &envelope)
		var walletID string
		if envelope.WalletID != nil {
			walletID = *envelope.WalletID
		}

		switch envelope.RequestType {
		case model.RequestTypeListWallets:
			w.Write([]byte(`[{"id":"w1","name":"main","state":{"status":"ready"},
				"balance":{"available":{"quantity":1500000,"unit":"lovelace"},"total":{"quantity":2000000,"unit":"lovelace"}}}]`))
		case model.RequestTypeWalletDetail:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"no such wallet","code":"no_such_wallet"}`))
		case model.RequestTypeWalletAddresses:
			w.Write([]byte(`{"wallet_id":"` + walletID + `","addresses":[
				{"id":"addr_test1used","state":"used"},{"id":"addr_test1fresh","state":"unused"}]}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestWalletsCommand(t *testing.T) {
	t.Setenv("BASE_URL", newTestBackend(t).URL)
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "wallets")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"ID", "NAME", "STATE", "AVAILABLE", "ADA", "TOTAL", "ADA"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"w1", "main", "ready", "1.500000", "2.000000"}, strings.Fields(lines[1]))
}

func TestWalletsCommand_MinAvailable(t *testing.T) {
	t.Setenv("BASE_URL", newTestBackend(t).URL)
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "wallets", "--min-available", "1.5")
	require.NoError(t, err)
	assert.Contains(t, out, "w1")

	out, err = run(t, "wallets", "--min-available", "1.500001")
	require.NoError(t, err)
	assert.NotContains(t, out, "w1")

	_, err = run(t, "wallets", "--min-available", "one")
	assert.ErrorContains(t, err, `invalid --min-available "one"`)
}

func TestFilterByAvailable(t *testing.T) {
	wallets := []model.Wallet{
		{ID: "rich", Balance: model.WalletBalance{Available: model.Quantity{Quantity: 10_000_000}}},
		{ID: "exact", Balance: model.WalletBalance{Available: model.Quantity{Quantity: 2_500_000}}},
		{ID: "poor", Balance: model.WalletBalance{Available: model.Quantity{Quantity: 2_499_999}}},
		{ID: "negative", Balance: model.WalletBalance{Available: model.Quantity{Quantity: -1}}},
	}

	kept, err := filterByAvailable(wallets, "2.5")
	require.NoError(t, err)

	var ids []string
	for _, w := range kept {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"rich", "exact"}, ids)
}

func TestWalletCommand_BackendError(t *testing.T) {
	t.Setenv("BASE_URL", newTestBackend(t).URL)
	t.Setenv("LOG_LEVEL", "error")

	_, err := run(t, "wallet", "missing")
	assert.EqualError(t, err, "404 status: no such wallet")
}

func TestAddressesCommand_QR(t *testing.T) {
	t.Setenv("BASE_URL", newTestBackend(t).URL)
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "addresses", "w1", "--qr")
	require.NoError(t, err)
	assert.Contains(t, out, "addr_test1used")
	assert.Contains(t, out, "Receive address addr_test1fresh")
}

func TestBackupCommand_RequiresFlags(t *testing.T) {
	_, err := run(t, "backup")
	assert.ErrorContains(t, err, `required flag(s) "name", "out" not set`)
}

func TestRekeyCommand_RequiresFile(t *testing.T) {
	_, err := run(t, "rekey")
	assert.EqualError(t, err, "accepts 1 arg(s), received 0")
}

func TestPrintWallet(t *testing.T) {
	var out bytes.Buffer
	wallet := &model.Wallet{
		ID:    "w1",
		Name:  "main",
		State: model.WalletState{Status: "syncing", Progress: &model.SyncProgress{Quantity: 81.23, Unit: "percent"}},
		Balance: model.WalletBalance{
			Total: model.Quantity{Quantity: 2000000, Unit: "lovelace"},
		},
	}

	require.NoError(t, printWallet(&out, wallet, "usd", "0.5000"))

	text := out.String()
	assert.Contains(t, text, "81.23%")
	assert.Contains(t, text, "2.000000 ADA")
	assert.Contains(t, text, "1.00 (rate 0.5000)")
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1.500000", formatQuantity(model.Quantity{Quantity: 1500000}))
	assert.Equal(t, "-0.000001", formatQuantity(model.Quantity{Quantity: -1}))
}
