package console

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Bridge synchronizes the Store with the durable credential slot: it
// rehydrates the session once at startup and owns logout, so the store and
// the slot always change together.
type Bridge struct {
	store  *Store
	slot   CredentialStore
	logger Logger
}

func NewBridge(store *Store, slot CredentialStore) *Bridge {
	return &Bridge{
		store:  store,
		slot:   slot,
		logger: defLogger{},
	}
}

func (b *Bridge) WithLogger(logger Logger) *Bridge {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Store exposes the session store the bridge mirrors.
func (b *Bridge) Store() *Store {
	return b.store
}

// Slot exposes the durable credential slot.
func (b *Bridge) Slot() CredentialStore {
	return b.slot
}

// Rehydrate performs the one-time startup read of the durable slot. A
// decodable credential becomes a session carrying the SessionEmailUnknown
// placeholder; an undecodable one is cleared from the slot and the session
// stays nil. The loading flag transitions false -> true -> false on every
// exit path so route guards can hold navigation until the decision is final.
func (b *Bridge) Rehydrate(ctx context.Context) error {
	b.store.SetLoading(true)
	defer b.store.SetLoading(false)

	raw, err := b.slot.Read(ctx)
	if err != nil {
		b.logger.Error("Rehydrate slot read error", "error", err)
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to read durable credential").
			WithTextCode(TextCodeCredentialVault)
	}

	if raw == "" {
		return nil
	}

	claims, err := DecodeToken(raw)
	if err != nil {
		// Recovered locally: a stale or corrupted credential means no
		// session, never a blocking error for the caller.
		b.logger.Warn("Rehydrate found undecodable credential, clearing slot", "error", err)
		if clearErr := b.slot.Clear(ctx); clearErr != nil {
			b.logger.Error("Rehydrate slot clear error", "error", clearErr)
		}
		return nil
	}

	op := b.store.Begin()
	b.store.Apply(op, &Session{
		ID:    claims.UserID(),
		Email: SessionEmailUnknown,
		Role:  UserRole(claims.Role()),
		Token: raw,
	})

	return nil
}

// Logout clears the store and the durable slot. The store is cleared first,
// so no reader can observe a session after the slot is gone. Logging out
// while logged out is a no-op, not an error, and there is no server-side
// invalidation call.
func (b *Bridge) Logout(ctx context.Context) error {
	op := b.store.Begin()
	b.store.Apply(op, nil)

	if err := b.slot.Clear(ctx); err != nil {
		b.logger.Error("Logout slot clear error", "error", err)
		return goerrors.Wrap(err, goerrors.CategoryOperation, "failed to clear durable credential").
			WithTextCode(TextCodeCredentialVault)
	}
	return nil
}
