package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlexZinkM/cardano-wallet/internal/config"
	"github.com/AlexZinkM/cardano-wallet/internal/crypto"
	"github.com/AlexZinkM/cardano-wallet/internal/model"

	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	var (
		name       string
		backupPath string
		poolGap    int
	)

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Create or restore a wallet from a mnemonic sentence",
		Long: "Create or restore a wallet from a mnemonic sentence.\n" +
			"The mnemonic is read from a .cwb backup (--backup) or typed in with hidden input.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			var mnemonic []string
			if backupPath != "" {
				header, backup, err := openBackupInteractive(backupPath)
				if err != nil {
					return err
				}
				mnemonic = backup.MnemonicSentence
				if header.Network != config.GetNetwork() {
					clear(mnemonic)
					return fmt.Errorf("backup is for %s but backend network is %s", header.Network, config.GetNetwork())
				}
				if name == "" {
					name = header.WalletName
				}
			} else {
				mnemonic, err = promptMnemonic()
				if err != nil {
					return err
				}
			}
			defer clear(mnemonic)

			passphrase, err := promptConfirmed("Spending passphrase")
			if err != nil {
				return err
			}
			defer clear(passphrase)

			req := &model.RestoreWalletRequest{
				Name:             name,
				MnemonicSentence: mnemonic,
				Passphrase:       string(passphrase),
				AddressPoolGap:   poolGap,
			}
			if err := req.Validate(); err != nil {
				return err
			}

			wallet, err := a.wallets.RestoreWallet(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet %q restored: %s\n", wallet.Name, wallet.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "wallet name (defaults to the name stored in the backup)")
	cmd.Flags().StringVar(&backupPath, "backup", "", "path to a .cwb mnemonic backup")
	cmd.Flags().IntVar(&poolGap, "address-pool-gap", 0, "address pool gap (backend default if 0)")
	return cmd
}

func newBackupCmd() *cobra.Command {
	var (
		out     string
		name    string
		network string
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a mnemonic sentence to an encrypted .cwb backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mnemonic, err := promptMnemonic()
			if err != nil {
				return err
			}
			defer clear(mnemonic)

			password, err := promptConfirmed("Backup password")
			if err != nil {
				return err
			}
			defer clear(password)

			backup := &model.MnemonicBackup{
				MnemonicSentence: mnemonic,
				CreatedAt:        time.Now().Format(time.RFC3339),
			}
			if err := crypto.SealBackup(out, network, name, backup, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "path of the .cwb file to create")
	cmd.Flags().StringVar(&name, "name", "", "wallet name stored with the backup")
	cmd.Flags().StringVar(&network, "network", "mainnet", "network stored with the backup")
	cmd.MarkFlagRequired("out")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newRekeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rekey <file.cwb>",
		Short: "Change the password of a .cwb backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldPassword, err := config.PromptSecret("Current backup password")
			if err != nil {
				return err
			}
			defer clear(oldPassword)

			newPassword, err := promptConfirmed("New backup password")
			if err != nil {
				return err
			}
			defer clear(newPassword)

			if err := crypto.RekeyBackup(args[0], oldPassword, newPassword); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup %s re-encrypted\n", args[0])
			return nil
		},
	}
}

func openBackupInteractive(path string) (*model.CWBFile, *model.MnemonicBackup, error) {
	password, err := config.PromptSecret("Backup password")
	if err != nil {
		return nil, nil, err
	}
	defer clear(password)

	return crypto.OpenBackup(path, password)
}

func promptMnemonic() ([]string, error) {
	raw, err := config.PromptSecret("Mnemonic sentence (words separated by spaces)")
	if err != nil {
		return nil, err
	}
	defer clear(raw)

	return strings.Fields(strings.ToLower(string(raw))), nil
}

// promptConfirmed asks for a secret twice and returns it when both entries match
func promptConfirmed(label string) ([]byte, error) {
	first, err := config.PromptSecret(label)
	if err != nil {
		return nil, err
	}

	second, err := config.PromptSecret("Repeat " + strings.ToLower(label))
	if err != nil {
		clear(first)
		return nil, err
	}
	defer clear(second)

	if !bytes.Equal(first, second) {
		clear(first)
		return nil, errors.New("entries do not match")
	}
	return first, nil
}
