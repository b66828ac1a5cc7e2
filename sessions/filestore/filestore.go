// Package filestore keeps the session in a local file, sealed with
// XChaCha20-Poly1305 under a scrypt-derived key when a passphrase is set.
package filestore

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/sessions"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	fileVersion = 1
	saltSize    = 16

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

var _ sessions.Repo = (*Repo)(nil)

type fileEnvelope struct {
	Version   int    `json:"version"`
	Encrypted bool   `json:"encrypted"`
	Salt      []byte `json:"salt,omitempty"`
	Nonce     []byte `json:"nonce,omitempty"`
	Data      []byte `json:"data"`
}

type Repo struct {
	path       string
	passphrase string
}

func New(path, passphrase string) *Repo {
	return &Repo{path: path, passphrase: passphrase}
}

func (r *Repo) Load(_ context.Context) (sessions.Session, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return sessions.Session{}, errors.ErrNoSession
	}
	if err != nil {
		return sessions.Session{}, fmt.Errorf("filestore.Load: %w", err)
	}

	var env fileEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return sessions.Session{}, fmt.Errorf("filestore.Load: decode: %w", err)
	}
	if env.Version != fileVersion {
		return sessions.Session{}, fmt.Errorf("filestore.Load: version %d: %w", env.Version, errors.ErrUnsupported)
	}

	plain := env.Data
	if env.Encrypted {
		if r.passphrase == "" {
			return sessions.Session{}, fmt.Errorf("filestore.Load: encrypted session needs a passphrase: %w", errors.ErrInvalidRequest)
		}
		plain, err = r.open(env)
		if err != nil {
			return sessions.Session{}, err
		}
	}

	var s sessions.Session
	if err := json.Unmarshal(plain, &s); err != nil {
		return sessions.Session{}, fmt.Errorf("filestore.Load: decode session: %w", err)
	}
	return s, nil
}

func (r *Repo) Save(_ context.Context, s sessions.Session) error {
	plain, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("filestore.Save: %w", err)
	}

	env := fileEnvelope{Version: fileVersion, Data: plain}
	if r.passphrase != "" {
		if env, err = r.seal(plain); err != nil {
			return err
		}
	}

	out, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("filestore.Save: %w", err)
	}
	return writeFileAtomic(r.path, out)
}

func (r *Repo) Clear(_ context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("filestore.Clear: %w", err)
	}
	return nil
}

func (r *Repo) seal(plain []byte) (fileEnvelope, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fileEnvelope{}, fmt.Errorf("filestore.seal: salt: %w", err)
	}
	aead, err := r.aead(salt)
	if err != nil {
		return fileEnvelope{}, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fileEnvelope{}, fmt.Errorf("filestore.seal: nonce: %w", err)
	}
	return fileEnvelope{
		Version:   fileVersion,
		Encrypted: true,
		Salt:      salt,
		Nonce:     nonce,
		Data:      aead.Seal(nil, nonce, plain, nil),
	}, nil
}

func (r *Repo) open(env fileEnvelope) ([]byte, error) {
	aead, err := r.aead(env.Salt)
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("filestore.open: bad nonce: %w", errors.ErrInvalidRequest)
	}
	plain, err := aead.Open(nil, env.Nonce, env.Data, nil)
	if err != nil {
		return nil, fmt.Errorf("filestore.open: wrong passphrase or corrupt file: %w", err)
	}
	return plain, nil
}

func (r *Repo) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(r.passphrase), salt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("filestore: derive key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("filestore: cipher: %w", err)
	}
	return aead, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("filestore: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("filestore: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: chmod: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("filestore: rename: %w", err)
	}
	return nil
}
