package transfer

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/akyairhashvil/cantieri/internal/models"
	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/akyairhashvil/cantieri/internal/util"
)

const vaultVersion = 1

// Vault is the full-backup document.
type Vault struct {
	Version    int         `json:"version"`
	ExportedAt string      `json:"exported_at,omitempty"`
	LastID     int64       `json:"last_id"`
	Workers    []Record    `json:"workers"`
	Vehicles   []Record    `json:"vehicles"`
	Sites      []Record    `json:"sites"`
	Jobs       []JobRecord `json:"jobs"`
}

type encryptedVault struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

// ExportVault serialises snap. A non-empty passphrase seals the document
// with AES-GCM under an argon2id key.
func ExportVault(snap store.Snapshot, passphrase string) ([]byte, error) {
	v := Vault{
		Version:    vaultVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		LastID:     snap.LastID,
		Workers:    WorkerRecords(snap.Workers),
		Vehicles:   VehicleRecords(snap.Vehicles),
		Sites:      SiteRecords(snap.Sites),
		Jobs:       JobRecords(snap.Jobs),
	}
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode vault: %w", err)
	}
	if passphrase == "" {
		return payload, nil
	}
	if err := util.ValidatePassphrase(passphrase); err != nil {
		return nil, err
	}
	return seal(payload, passphrase)
}

// IsEncrypted reports whether payload is a sealed vault.
func IsEncrypted(payload []byte) bool {
	var probe struct {
		Encrypted bool `json:"encrypted"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return false
	}
	return probe.Encrypted
}

// ImportVault decodes and validates a vault. Sealed vaults need the
// passphrase they were exported with.
func ImportVault(ctx context.Context, payload []byte, passphrase string) (store.Snapshot, error) {
	if IsEncrypted(payload) {
		if passphrase == "" {
			return store.Snapshot{}, ErrNeedPassphrase
		}
		plain, err := Open(payload, passphrase)
		if err != nil {
			return store.Snapshot{}, err
		}
		payload = plain
	}

	problems, err := validate(ctx, vaultSchema, payload)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidVault, err)
	}
	if len(problems) > 0 {
		msgs := make([]string, 0, len(problems))
		for _, p := range problems {
			msgs = append(msgs, p.Field+": "+p.Message)
		}
		return store.Snapshot{}, fmt.Errorf("%w: %s", ErrInvalidVault, strings.Join(msgs, "; "))
	}

	var v Vault
	if err := json.Unmarshal(payload, &v); err != nil {
		return store.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidVault, err)
	}
	for name, ids := range map[string][]int64{
		"workers":  recordIDs(v.Workers),
		"vehicles": recordIDs(v.Vehicles),
		"sites":    recordIDs(v.Sites),
		"jobs":     jobIDs(v.Jobs),
	} {
		if id, dup := firstDuplicate(ids); dup {
			return store.Snapshot{}, fmt.Errorf("%w: %s: %w %d", ErrInvalidVault, name, ErrDuplicateID, id)
		}
	}
	return store.Snapshot{
		Workers:  Workers(v.Workers),
		Vehicles: Vehicles(v.Vehicles),
		Sites:    Sites(v.Sites),
		Jobs:     vaultJobs(v.Jobs),
		LastID:   v.LastID,
	}, nil
}

// vaultJobs keeps the status recorded in a backup and derives it only when
// the record carries none.
func vaultJobs(recs []JobRecord) []models.Job {
	jobs := Jobs(recs)
	for i, r := range recs {
		if status, ok := models.ParseJobStatus(r.Status); ok {
			jobs[i].Status = status
		}
	}
	return jobs
}

func seal(payload []byte, passphrase string) ([]byte, error) {
	salt, err := util.NewSalt()
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(util.DeriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	ciphertext := gcm.Seal(nil, nonce, payload, nil)
	return json.Marshal(encryptedVault{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	})
}

// Open decrypts a sealed vault and returns the plain JSON document.
func Open(payload []byte, passphrase string) ([]byte, error) {
	var env encryptedVault
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVault, err)
	}
	if !env.Encrypted {
		return nil, ErrNotEncrypted
	}
	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrInvalidVault, err)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", ErrInvalidVault, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: data: %v", ErrInvalidVault, err)
	}
	gcm, err := newGCM(util.DeriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: nonce size %d", ErrInvalidVault, len(nonce))
	}
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plain, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func recordIDs(recs []Record) []int64 {
	out := make([]int64, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func jobIDs(recs []JobRecord) []int64 {
	out := make([]int64, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func firstDuplicate(ids []int64) (int64, bool) {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return 0, false
}
