// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estimate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/woodshop/cabinetry/tree"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	label      TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS materials (
	run_id   TEXT NOT NULL REFERENCES runs(id),
	material TEXT NOT NULL,
	panels   INTEGER NOT NULL,
	total    REAL NOT NULL,
	unit     TEXT NOT NULL,
	quantity INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS cutlist (
	id        TEXT PRIMARY KEY,
	run_id    TEXT NOT NULL REFERENCES runs(id),
	path      TEXT NOT NULL,
	material  TEXT NOT NULL,
	width     REAL NOT NULL,
	height    REAL NOT NULL,
	thickness REAL NOT NULL
);
`

// Export writes the bill of materials and the full cutlist for the
// tree rooted at root into the SQLite database at path, creating the
// file and schema as needed. Each call is one run, identified by a
// fresh id, so repeated estimates of the same scene can be compared.
// It returns the run id.
func Export(ctx context.Context, path, label string, root tree.Node) (string, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return "", fmt.Errorf("estimate: open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return "", fmt.Errorf("estimate: create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("estimate: begin: %w", err)
	}
	defer tx.Rollback()

	runID := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, label, created_at) VALUES (?, ?, ?)`,
		runID, label, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("estimate: insert run: %w", err)
	}

	for _, l := range Materials(root) {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO materials (run_id, material, panels, total, unit, quantity)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, l.Mat.Name, l.Panels, l.Total(), l.Mat.Unit.String(), l.Quantity())
		if err != nil {
			return "", fmt.Errorf("estimate: insert material %s: %w", l.Mat.Name, err)
		}
	}

	for _, p := range Panels(root) {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO cutlist (id, run_id, path, material, width, height, thickness)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), runID, p.Path(), p.Mat.Name,
			p.Width, p.Height, p.Mat.Thickness)
		if err != nil {
			return "", fmt.Errorf("estimate: insert panel %s: %w", p.Path(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("estimate: commit: %w", err)
	}
	return runID, nil
}
