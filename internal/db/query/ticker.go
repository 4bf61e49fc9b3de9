package db

import (
	"database/sql"
	"fmt"
	"time"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// GetTickerIdentities loads the whole identity/alias mapping. The table is
// small; alias resolution happens in memory.
func GetTickerIdentities(tx *sql.Tx) ([]model.TickerIdentity, error) {
	t := table.TickerIdentity
	stmt := t.SELECT(t.AllColumns)

	result := []model.TickerIdentity{}
	if err := stmt.Query(tx, &result); err != nil {
		return nil, fmt.Errorf("failed to load ticker identities: %w", err)
	}
	return result, nil
}

// AddTickerIdentity inserts a new identity if the symbol is unknown.
func AddTickerIdentity(tx *sql.Tx, identity model.TickerIdentity) error {
	t := table.TickerIdentity
	identity.CreatedAt = time.Now().UTC()
	identity.ModifiedAt = identity.CreatedAt
	stmt := t.INSERT(t.AllColumns).
		MODEL(identity).
		ON_CONFLICT(t.Symbol).
		DO_NOTHING()

	if _, err := stmt.Exec(tx); err != nil {
		return fmt.Errorf("failed to insert ticker identity %s: %w", identity.Symbol, err)
	}
	return nil
}

// SetAlias points symbol at canonical. First detection wins: an existing
// alias is never overwritten here, manual correction is the only override.
// Any identities already aliased to symbol are re-pointed at canonical so
// chains stay one hop deep.
func SetAlias(tx *sql.Tx, symbol, canonical string) error {
	t := table.TickerIdentity
	now := time.Now().UTC()

	stmt := t.UPDATE(t.AliasOf, t.ModifiedAt).
		SET(postgres.String(canonical), postgres.TimestampT(now)).
		WHERE(t.Symbol.EQ(postgres.String(symbol)).
			AND(t.AliasOf.IS_NULL()))
	if _, err := stmt.Exec(tx); err != nil {
		return fmt.Errorf("failed to set alias %s -> %s: %w", symbol, canonical, err)
	}

	repoint := t.UPDATE(t.AliasOf, t.ModifiedAt).
		SET(postgres.String(canonical), postgres.TimestampT(now)).
		WHERE(t.AliasOf.EQ(postgres.String(symbol)))
	if _, err := repoint.Exec(tx); err != nil {
		return fmt.Errorf("failed to repoint aliases of %s: %w", symbol, err)
	}

	return nil
}
