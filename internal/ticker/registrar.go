package ticker

import (
	"context"
	"fmt"
	"log/slog"

	"folio/internal/db/models/postgres/public/model"
)

// IdentityStore persists the identity/alias mapping.
type IdentityStore interface {
	Identities(ctx context.Context) ([]model.TickerIdentity, error)
	AddIdentity(ctx context.Context, identity model.TickerIdentity) error
	SetAlias(ctx context.Context, symbol, canonical string) error
}

type Registrar struct {
	Store IdentityStore
}

// Register records a newly seen instrument. A candidate matching an existing
// identity is stored and aliased to that identity's canonical symbol; the
// first detected mapping wins, later registrations never re-point it. Returns
// the canonical symbol the candidate resolves to.
func (r *Registrar) Register(ctx context.Context, candidate model.TickerIdentity) (string, error) {
	known, err := r.Store.Identities(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load identities: %w", err)
	}
	for _, id := range known {
		if id.Symbol == candidate.Symbol {
			// already registered, keep whatever mapping exists
			return ResolveCanonical(known, candidate.Symbol), nil
		}
	}

	if err := r.Store.AddIdentity(ctx, candidate); err != nil {
		return "", fmt.Errorf("failed to add identity %s: %w", candidate.Symbol, err)
	}

	canonical := DetectAlias(candidate, known)
	if canonical == "" {
		return candidate.Symbol, nil
	}

	slog.Info("new symbol detected as alias", "symbol", candidate.Symbol, "canonical", canonical)
	if err := r.Store.SetAlias(ctx, candidate.Symbol, canonical); err != nil {
		return "", fmt.Errorf("failed to alias %s to %s: %w", candidate.Symbol, canonical, err)
	}
	return canonical, nil
}
