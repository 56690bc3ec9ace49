package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	contentKeyLen = 32 // AES-256
)

// EncryptedContent is the output of content encryption: the sealed payload
// and the AES key wrapped with the backend's public key, both base64.
type EncryptedContent struct {
	EncryptedData   string `json:"encryptedData"`
	EncryptedAESKey string `json:"encryptedAesKey"`
}

// ContentEncryptor encrypts a request payload before it is put into an envelope
type ContentEncryptor interface {
	Encrypt(payload any) (*EncryptedContent, error)
}

// HybridEncryptor seals payloads with a fresh AES-256-GCM key per call and
// wraps that key with RSA-OAEP (SHA-256).
type HybridEncryptor struct {
	publicKey *rsa.PublicKey
	random    io.Reader
}

// NewHybridEncryptor creates an encryptor for the given backend public key
func NewHybridEncryptor(publicKey *rsa.PublicKey) *HybridEncryptor {
	return &HybridEncryptor{
		publicKey: publicKey,
		random:    rand.Reader,
	}
}

// Encrypt serializes payload to JSON and encrypts it.
// Output layout of EncryptedData: nonce || ciphertext || tag.
func (e *HybridEncryptor) Encrypt(payload any) (*EncryptedContent, error) {
	if e.publicKey == nil {
		return nil, errors.New("public key is not set")
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content: %w", err)
	}
	defer clear(plaintext)

	key := make([]byte, contentKeyLen)
	if _, err := io.ReadFull(e.random, key); err != nil {
		return nil, fmt.Errorf("failed to generate content key: %w", err)
	}
	defer clear(key)

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(e.random, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	sealed := aesGCM.Seal(nonce, nonce, plaintext, nil)

	wrappedKey, err := rsa.EncryptOAEP(sha256.New(), e.random, e.publicKey, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap content key: %w", err)
	}

	return &EncryptedContent{
		EncryptedData:   base64.StdEncoding.EncodeToString(sealed),
		EncryptedAESKey: base64.StdEncoding.EncodeToString(wrappedKey),
	}, nil
}

// OpenContent reverses HybridEncryptor.Encrypt with the backend's private key
// and returns the JSON plaintext.
func OpenContent(privateKey *rsa.PrivateKey, content *EncryptedContent) ([]byte, error) {
	wrappedKey, err := base64.StdEncoding.DecodeString(content.EncryptedAESKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode content key: %w", err)
	}
	sealed, err := base64.StdEncoding.DecodeString(content.EncryptedData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if len(sealed) < nonceLen {
		return nil, errors.New("content is too short")
	}

	key, err := rsa.DecryptOAEP(sha256.New(), nil, privateKey, wrappedKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap content key: %w", err)
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := aesGCM.Open(nil, sealed[:nonceLen], sealed[nonceLen:], nil)
	if err != nil {
		return nil, errors.New("content authentication failed")
	}
	return plaintext, nil
}

// ParsePublicKeyPEM parses an RSA public key in PKIX ("PUBLIC KEY") or
// PKCS#1 ("RSA PUBLIC KEY") PEM form.
func ParsePublicKeyPEM(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	switch block.Type {
	case "PUBLIC KEY":
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("unsupported public key type %T", key)
		}
		return rsaKey, nil
	case "RSA PUBLIC KEY":
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("unexpected PEM block type %q", block.Type)
	}
}

// LoadPublicKey reads a PEM encoded RSA public key from file
func LoadPublicKey(filePath string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key: %w", err)
	}
	return ParsePublicKeyPEM(data)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
