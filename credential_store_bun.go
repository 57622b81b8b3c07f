package console

import (
	"context"
	"database/sql"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// credentialRecord is the single-row slot model. The table is keyed so one
// database can hold slots for several console profiles.
type credentialRecord struct {
	bun.BaseModel `bun:"table:credentials,alias:cred"`
	Key           string    `bun:"key,pk" json:"key"`
	Value         string    `bun:"value,notnull" json:"value"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

var _ CredentialStore = (*BunCredentialStore)(nil)

// BunCredentialStore persists the raw credential in a sqlite-backed kv
// table so the session survives console restarts. The value is stored as
// plain text; there is no encryption and no expiry metadata alongside it.
type BunCredentialStore struct {
	db  *bun.DB
	key string
}

// OpenCredentialDB opens (or creates) the sqlite database backing the
// credential slot. Use ":memory:" for a throwaway store.
func OpenCredentialDB(path string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "failed to open credential database").
			WithTextCode(TextCodeCredentialVault)
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

func NewBunCredentialStore(db *bun.DB, key string) *BunCredentialStore {
	if key == "" {
		key = "auth_token"
	}
	return &BunCredentialStore{db: db, key: key}
}

// Init creates the credentials table when missing.
func (s *BunCredentialStore) Init(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*credentialRecord)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to create credentials table").
			WithTextCode(TextCodeCredentialVault)
	}
	return nil
}

// Read returns the stored credential, empty when the slot is vacant.
func (s *BunCredentialStore) Read(ctx context.Context) (string, error) {
	record := &credentialRecord{}
	err := s.db.NewSelect().
		Model(record).
		Where("key = ?", s.key).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read credential slot").
			WithTextCode(TextCodeCredentialVault)
	}
	return record.Value, nil
}

func (s *BunCredentialStore) Write(ctx context.Context, credential string) error {
	record := &credentialRecord{
		Key:       s.key,
		Value:     credential,
		UpdatedAt: time.Now(),
	}

	if _, err := s.db.NewInsert().
		Model(record).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to write credential slot").
			WithTextCode(TextCodeCredentialVault)
	}
	return nil
}

func (s *BunCredentialStore) Clear(ctx context.Context) error {
	if _, err := s.db.NewDelete().
		Model((*credentialRecord)(nil)).
		Where("key = ?", s.key).
		Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to clear credential slot").
			WithTextCode(TextCodeCredentialVault)
	}
	return nil
}
