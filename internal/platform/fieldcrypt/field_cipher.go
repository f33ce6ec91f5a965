// Package fieldcrypt provides authenticated encryption for individual sensitive
// field values (tax file numbers, bank details) so that the rest of a stored
// application record stays plain and queryable.
package fieldcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const (
	// KeySize is the required key length in bytes (AES-256).
	KeySize = 32
	// nonceSize is the GCM nonce length in bytes.
	nonceSize = 12
	// tagSize is the GCM authentication tag length in bytes.
	tagSize = 16
)

// EncryptedField is the storage representation of one encrypted scalar value.
// All three parts are hex encoded.
type EncryptedField struct {
	Encrypted string `json:"encrypted"`
	IV        string `json:"iv"`
	AuthTag   string `json:"authTag"`
}

// UnmarshalJSON accepts both the structured object form and the legacy form
// where the object was embedded as a JSON string inside a larger record.
func (f *EncryptedField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var embedded string
		if err := json.Unmarshal(data, &embedded); err != nil {
			return err
		}
		data = []byte(embedded)
	}
	type plain EncryptedField
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = EncryptedField(p)
	return nil
}

// IsZero reports whether the field carries no ciphertext at all.
func (f EncryptedField) IsZero() bool {
	return f.Encrypted == "" && f.IV == "" && f.AuthTag == ""
}

// DecryptionError is returned when a stored field cannot be authenticated or is
// structurally malformed. Callers surface it per field, never as a whole-record
// failure.
type DecryptionError struct {
	Reason string
	Err    error
}

func (e *DecryptionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("field decryption failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("field decryption failed: %s", e.Reason)
}

func (e *DecryptionError) Unwrap() error { return e.Err }

// Cipher performs AES-256-GCM encryption of scalar field values. It is safe for
// concurrent use; every Encrypt call draws a fresh random nonce internally, so
// nonce reuse cannot be caused by a caller.
type Cipher struct {
	aead cipher.AEAD
}

// New builds a Cipher from a hex-encoded 256-bit key. Configuration with a
// missing or mis-sized key is a startup failure, not a runtime condition.
func New(hexKey string) (*Cipher, error) {
	if hexKey == "" {
		return nil, fmt.Errorf("field encryption key is not configured")
	}
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("field encryption key is not valid hex: %w", err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("field encryption key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise GCM: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals a plaintext value under a fresh random IV.
func (c *Cipher) Encrypt(plaintext string) (EncryptedField, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return EncryptedField{}, fmt.Errorf("failed to generate IV: %w", err)
	}
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	// GCM appends the tag to the ciphertext; store the two parts separately.
	ct, tag := sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:]
	return EncryptedField{
		Encrypted: hex.EncodeToString(ct),
		IV:        hex.EncodeToString(nonce),
		AuthTag:   hex.EncodeToString(tag),
	}, nil
}

// Decrypt opens a stored field. It fails closed: a tag mismatch, bad hex, or a
// malformed shape yields a *DecryptionError and never partial plaintext.
func (c *Cipher) Decrypt(field EncryptedField) (string, error) {
	ct, err := hex.DecodeString(field.Encrypted)
	if err != nil {
		return "", &DecryptionError{Reason: "ciphertext is not valid hex", Err: err}
	}
	nonce, err := hex.DecodeString(field.IV)
	if err != nil {
		return "", &DecryptionError{Reason: "iv is not valid hex", Err: err}
	}
	if len(nonce) != nonceSize {
		return "", &DecryptionError{Reason: fmt.Sprintf("iv must be %d bytes, got %d", nonceSize, len(nonce))}
	}
	tag, err := hex.DecodeString(field.AuthTag)
	if err != nil {
		return "", &DecryptionError{Reason: "auth tag is not valid hex", Err: err}
	}
	if len(tag) != tagSize {
		return "", &DecryptionError{Reason: fmt.Sprintf("auth tag must be %d bytes, got %d", tagSize, len(tag))}
	}
	plaintext, err := c.aead.Open(nil, nonce, append(ct, tag...), nil)
	if err != nil {
		return "", &DecryptionError{Reason: "authentication failed", Err: err}
	}
	return string(plaintext), nil
}
