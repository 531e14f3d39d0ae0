package keystore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/izouxv/goShamir/utils"
	"golang.org/x/crypto/scrypt"
)

const (
	keyHeaderKDF = "scrypt"
	cipherName   = "aes-256-gcm"
	version      = 1
)

// ScryptN is the N parameter of Scrypt encryption algorithm, using 2^18 per recommendation for standard security.
// For testing, a smaller value can be used to speed up execution.
var ScryptN = 1 << 18

// ScryptP is the P parameter of Scrypt encryption algorithm, using 1 per recommendation.
var ScryptP = 1

var (
	// ErrInvalidPassword is returned when the password for decryption is incorrect.
	ErrInvalidPassword = errors.New("invalid password")
)

// Envelope is the JSON form of a sealed payload.
type Envelope struct {
	ID      string     `json:"id"`
	Version int        `json:"version"`
	Content string     `json:"content"`
	Crypto  CryptoJSON `json:"crypto"`
}

// CryptoJSON contains the cryptographic parameters.
type CryptoJSON struct {
	Cipher     string           `json:"cipher"`
	CipherText []byte           `json:"ciphertext"`
	KDF        string           `json:"kdf"`
	KDFParams  ScryptParamsJSON `json:"kdfparams"`
}

// ScryptParamsJSON contains the parameters for the scrypt KDF.
type ScryptParamsJSON struct {
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
	Dklen int    `json:"dklen"`
	Salt  []byte `json:"salt"`
}

// Seal encrypts payload with a key derived from password and returns the
// JSON-encoded envelope. content names the payload format and is
// authenticated together with it.
func Seal(payload []byte, content, password string) ([]byte, error) {
	salt, err := utils.GenerateSalt(32)
	if err != nil {
		return nil, err
	}

	// 32-byte key for AES-256-GCM
	const dklen = 32
	derivedKey, err := scrypt.Key([]byte(password), salt, ScryptN, 8, ScryptP, dklen)
	if err != nil {
		return nil, err
	}

	cipherText, err := GCMEncrypt(payload, derivedKey, []byte(content))
	if err != nil {
		return nil, err
	}

	env := &Envelope{
		ID:      uuid.New().String(),
		Version: version,
		Content: content,
		Crypto: CryptoJSON{
			Cipher:     cipherName,
			CipherText: cipherText,
			KDF:        keyHeaderKDF,
			KDFParams: ScryptParamsJSON{
				N:     ScryptN,
				R:     8,
				P:     ScryptP,
				Dklen: dklen,
				Salt:  salt,
			},
		},
	}
	return json.MarshalIndent(env, "", "  ")
}

// Open decrypts an envelope produced by Seal and returns its payload and content name.
func Open(envelopeBytes []byte, password string) (payload []byte, content string, err error) {
	var env Envelope
	if err := json.Unmarshal(envelopeBytes, &env); err != nil {
		return nil, "", err
	}

	if env.Version != version {
		return nil, "", fmt.Errorf("unsupported keystore version: %d", env.Version)
	}
	if env.Crypto.KDF != keyHeaderKDF {
		return nil, "", fmt.Errorf("unsupported KDF: %s", env.Crypto.KDF)
	}
	if env.Crypto.Cipher != cipherName {
		return nil, "", fmt.Errorf("unsupported cipher: %s", env.Crypto.Cipher)
	}

	kdfParams := env.Crypto.KDFParams
	derivedKey, err := scrypt.Key([]byte(password), kdfParams.Salt, kdfParams.N, kdfParams.R, kdfParams.P, kdfParams.Dklen)
	if err != nil {
		return nil, "", err
	}

	// A wrong password derives a wrong key and fails GCM authentication.
	payload, err = GCMDecrypt(env.Crypto.CipherText, derivedKey, []byte(env.Content))
	if err != nil {
		return nil, "", ErrInvalidPassword
	}
	return payload, env.Content, nil
}

// IsSealed reports whether data looks like a sealed envelope.
func IsSealed(data []byte) bool {
	var probe struct {
		Crypto *CryptoJSON `json:"crypto"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Crypto != nil && probe.Crypto.KDF != ""
}
