package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexZinkM/cardano-wallet/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	backupExt = ".cwb"
	saltLen   = 32
	nonceLen  = 12
)

// scrypt parameters for mnemonic backups.
// N=2^18 needs ~256MB RAM and 0.5-2s, still usable on phones.
var (
	scryptN      = 1 << 18
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrInvalidPassword is returned when a backup cannot be opened with the given password
var ErrInvalidPassword = errors.New("invalid password")

// SealBackup encrypts the mnemonic backup and writes it to a .cwb file.
// password must be []byte for security (caller should zero it after use)
func SealBackup(filePath, network, walletName string, backup *model.MnemonicBackup, password []byte) error {
	if !strings.HasSuffix(filePath, backupExt) {
		return fmt.Errorf("file must have %s extension", backupExt)
	}

	// Refuse to overwrite an existing backup
	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return fmt.Errorf("file is not empty: %w", os.ErrExist)
	}

	fileData, err := encodeBackup(network, walletName, backup, password)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, fileData, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// RekeyBackup re-encrypts an existing .cwb file under a new password.
// Salt and nonce are regenerated; the file is replaced atomically.
func RekeyBackup(filePath string, oldPassword, newPassword []byte) error {
	header, backup, err := OpenBackup(filePath, oldPassword)
	if err != nil {
		return err
	}
	defer clear(backup.MnemonicSentence)

	fileData, err := encodeBackup(header.Network, header.WalletName, backup, newPassword)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filePath), ".rekey-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(fileData); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filePath); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}

// encodeBackup seals the backup and returns the BOM-prefixed file contents
func encodeBackup(network, walletName string, backup *model.MnemonicBackup, password []byte) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(backup)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup: %w", err)
	}
	defer clear(plaintext)

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	cwbFile := model.CWBFile{
		Network:    network,
		WalletName: walletName,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}

	fileData, err := json.MarshalIndent(cwbFile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cwb file: %w", err)
	}

	// UTF-8 BOM for proper display in Windows
	return append(utf8BOM, fileData...), nil
}

// OpenBackup reads and decrypts a .cwb file.
// password must be []byte for security (caller should zero it after use)
func OpenBackup(filePath string, password []byte) (*model.CWBFile, *model.MnemonicBackup, error) {
	cwbFile, err := ReadBackupHeader(filePath)
	if err != nil {
		return nil, nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(cwbFile.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(cwbFile.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(cwbFile.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, ErrInvalidPassword
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var backup model.MnemonicBackup
	if err := json.Unmarshal(plaintext, &backup); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal backup: %w", err)
	}

	return cwbFile, &backup, nil
}

// ReadBackupHeader reads the unencrypted part of a .cwb file (without decryption)
func ReadBackupHeader(filePath string) (*model.CWBFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(fileData) >= 3 && fileData[0] == 0xEF && fileData[1] == 0xBB && fileData[2] == 0xBF {
		fileData = fileData[3:]
	}

	var cwbFile model.CWBFile
	if err := json.Unmarshal(fileData, &cwbFile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cwb file: %w", err)
	}

	return &cwbFile, nil
}
