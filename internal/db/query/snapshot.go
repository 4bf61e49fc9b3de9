package db

import (
	"database/sql"
	"fmt"

	"folio/internal/db/models/postgres/public/model"
	"folio/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// ReplaceSnapshot swaps the user's portfolio snapshot for a freshly
// computed one inside the caller's transaction: stage everything, commit
// once. Concurrent readers never observe a half-written summary.
func ReplaceSnapshot(tx *sql.Tx, userID int32, rows []model.PortfolioSnapshot) error {
	t := table.PortfolioSnapshot

	del := t.DELETE().WHERE(t.UserID.EQ(postgres.Int32(userID)))
	if _, err := del.Exec(tx); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	if len(rows) == 0 {
		return nil
	}
	models := make([]*model.PortfolioSnapshot, len(rows))
	for i := range rows {
		models[i] = &rows[i]
	}
	ins := t.INSERT(t.MutableColumns).MODELS(models)
	if _, err := ins.Exec(tx); err != nil {
		return fmt.Errorf("failed to insert snapshot rows: %w", err)
	}

	return nil
}

// GetSnapshot returns the user's current snapshot rows.
func GetSnapshot(tx *sql.Tx, userID int32) ([]model.PortfolioSnapshot, error) {
	t := table.PortfolioSnapshot
	stmt := t.SELECT(t.AllColumns).
		WHERE(t.UserID.EQ(postgres.Int32(userID))).
		ORDER_BY(t.Symbol.ASC())

	result := []model.PortfolioSnapshot{}
	if err := stmt.Query(tx, &result); err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return result, nil
}
