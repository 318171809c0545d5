package database

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. All statements are idempotent so repeated
// startup against an existing database is safe.
func Migrate(db *sql.DB) error {
	schema := `
	-- Cohort-level outcome assessments (indirect survey + direct scores).
	CREATE TABLE IF NOT EXISTS assessments (
		id TEXT PRIMARY KEY,
		program TEXT NOT NULL,
		batch TEXT NOT NULL,
		year_of_graduation INTEGER NOT NULL,
		indirect_results TEXT NOT NULL, -- JSON: outcome -> tally
		direct_scores TEXT NOT NULL,    -- JSON: outcome -> percentage
		composites TEXT NOT NULL,       -- JSON: outcome -> weighted breakdown
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Educational-objective survey analyses.
	CREATE TABLE IF NOT EXISTS peo_analyses (
		id TEXT PRIMARY KEY,
		batch TEXT NOT NULL,
		alumni TEXT NOT NULL,   -- JSON: survey result
		employer TEXT NOT NULL, -- JSON: survey result
		averages TEXT NOT NULL, -- JSON: objective -> average
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Merged student outcome analyses from the two-phase upload flow.
	CREATE TABLE IF NOT EXISTS final_results (
		id TEXT PRIMARY KEY,
		batch TEXT NOT NULL,
		file_names TEXT NOT NULL, -- JSON array
		students TEXT NOT NULL,   -- JSON array of merged records
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_assessments_batch ON assessments(batch);
	CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
	CREATE INDEX IF NOT EXISTS idx_peo_analyses_batch ON peo_analyses(batch);
	CREATE INDEX IF NOT EXISTS idx_final_results_batch ON final_results(batch);
	CREATE INDEX IF NOT EXISTS idx_final_results_created_at ON final_results(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
