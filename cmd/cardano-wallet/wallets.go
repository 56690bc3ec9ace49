package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/AlexZinkM/cardano-wallet/internal/client"
	"github.com/AlexZinkM/cardano-wallet/internal/common"
	"github.com/AlexZinkM/cardano-wallet/internal/config"
	"github.com/AlexZinkM/cardano-wallet/internal/model"

	"github.com/spf13/cobra"
)

func newWalletsCmd() *cobra.Command {
	var minAvailable string

	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "List wallets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minAvailable != "" {
				if _, err := common.ADAToLovelace(minAvailable); err != nil {
					return fmt.Errorf("invalid --min-available %q: %w", minAvailable, err)
				}
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			wallets, err := a.wallets.ListWallets(cmd.Context())
			if err != nil {
				return err
			}
			if minAvailable != "" {
				wallets, err = filterByAvailable(wallets, minAvailable)
				if err != nil {
					return err
				}
			}
			return printWallets(cmd.OutOrStdout(), wallets)
		},
	}

	cmd.Flags().StringVar(&minAvailable, "min-available", "", "only list wallets with at least this many ADA available (e.g. 10.5)")
	return cmd
}

// filterByAvailable keeps wallets whose available balance is at least minADA
func filterByAvailable(wallets []model.Wallet, minADA string) ([]model.Wallet, error) {
	var kept []model.Wallet
	for _, wallet := range wallets {
		if wallet.Balance.Available.Quantity < 0 {
			continue
		}
		cmp, err := common.CompareADAAmounts(formatQuantity(wallet.Balance.Available), minADA)
		if err != nil {
			return nil, err
		}
		if cmp >= 0 {
			kept = append(kept, wallet)
		}
	}
	return kept, nil
}

func newWalletCmd() *cobra.Command {
	var fiat string

	cmd := &cobra.Command{
		Use:   "wallet <id>",
		Short: "Show wallet details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			wallet, err := a.wallets.GetWalletByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var rate string
			if fiat != "" {
				rate, err = client.NewCoinGeckoClient(config.Get().CoinGeckoURL).GetADARate(cmd.Context(), fiat)
				if err != nil {
					return fmt.Errorf("failed to get rate: %w", err)
				}
			}
			return printWallet(cmd.OutOrStdout(), wallet, fiat, rate)
		},
	}

	cmd.Flags().StringVar(&fiat, "fiat", "", "show total balance in this currency (e.g. usd, eur)")
	return cmd
}

func newAddressesCmd() *cobra.Command {
	var showQR bool

	cmd := &cobra.Command{
		Use:   "addresses <wallet-id>",
		Short: "List wallet addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			addresses, err := a.wallets.GetWalletAddresses(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printAddresses(out, addresses); err != nil {
				return err
			}

			if showQR {
				unused, ok := addresses.FirstUnused()
				if !ok {
					return fmt.Errorf("wallet %s has no unused address", addresses.WalletID)
				}
				qr, err := common.AddressQRTerminal(unused.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nReceive address %s\n%s", unused.ID, qr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showQR, "qr", false, "print a QR code of the first unused address")
	return cmd
}

func printWallets(w io.Writer, wallets []model.Wallet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATE\tAVAILABLE ADA\tTOTAL ADA")
	for _, wallet := range wallets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			wallet.ID,
			wallet.Name,
			wallet.State.Status,
			formatQuantity(wallet.Balance.Available),
			formatQuantity(wallet.Balance.Total),
		)
	}
	return tw.Flush()
}

func printWallet(w io.Writer, wallet *model.Wallet, fiat, rate string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", wallet.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", wallet.Name)
	fmt.Fprintf(tw, "State:\t%s\n", wallet.State.Status)
	if wallet.State.Progress != nil {
		fmt.Fprintf(tw, "Sync progress:\t%s%%\n", strconv.FormatFloat(wallet.State.Progress.Quantity, 'f', -1, 64))
	}
	fmt.Fprintf(tw, "Available:\t%s ADA\n", formatQuantity(wallet.Balance.Available))
	fmt.Fprintf(tw, "Reward:\t%s ADA\n", formatQuantity(wallet.Balance.Reward))
	fmt.Fprintf(tw, "Total:\t%s ADA\n", formatQuantity(wallet.Balance.Total))
	if rate != "" {
		// float only for display
		total, _ := strconv.ParseFloat(formatQuantity(wallet.Balance.Total), 64)
		rateFloat, _ := strconv.ParseFloat(rate, 64)
		fmt.Fprintf(tw, "Total (%s):\t%.2f (rate %s)\n", fiat, total*rateFloat, rate)
	}
	if wallet.Tip != nil {
		fmt.Fprintf(tw, "Tip:\tepoch %d, slot %d, height %d\n", wallet.Tip.EpochNumber, wallet.Tip.SlotNumber, wallet.Tip.Height)
	}
	return tw.Flush()
}

func printAddresses(w io.Writer, addresses *model.WalletAddressesResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ADDRESS\tSTATE")
	for _, address := range addresses.Addresses {
		fmt.Fprintf(tw, "%s\t%s\n", address.ID, address.State)
	}
	return tw.Flush()
}

// formatQuantity renders a lovelace quantity as ADA
func formatQuantity(q model.Quantity) string {
	if q.Quantity < 0 {
		return "-" + common.LovelaceToADA(uint64(-q.Quantity))
	}
	return common.LovelaceToADA(uint64(q.Quantity))
}
