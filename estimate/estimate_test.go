// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estimate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/tree"
)

func buildScene(t *testing.T) *part.Container {
	t.Helper()
	root := part.NewContainer("root")
	add := func(n tree.Node) {
		require.NoError(t, root.AddChild(n))
	}
	add(part.NewPanel("a", 48, 24, material.Ply34))
	add(part.NewPanel("b", 48, 24, material.Ply34))
	add(part.NewPanel("stile", 1.5, 30, material.HardwoodPaint34))
	return root
}

func TestMaterials(t *testing.T) {
	lines := Materials(buildScene(t))
	require.Len(t, lines, 2)

	// Sorted by material name.
	hw, ply := lines[0], lines[1]
	assert.Equal(t, "HARDWOOD_PAINT_3_4", hw.Mat.Name)
	assert.Equal(t, "PLY_3_4", ply.Mat.Name)

	assert.Equal(t, 2, ply.Panels)
	assert.InDelta(t, 2*48*24, ply.Total(), 1.0e-3)
	// ceil(2304 / (4608 * 0.8)) = 1 sheet.
	assert.Equal(t, 1, ply.Quantity())

	assert.InDelta(t, 1.5*30*0.75, hw.Total(), 1.0e-3)
	assert.Equal(t, 1, hw.Quantity())
	assert.Contains(t, hw.String(), "total volume=34")
	assert.Contains(t, hw.String(), "board ft")
	assert.Contains(t, ply.String(), "total area=2304")
}

func TestMaterialsSkipsPlaceholders(t *testing.T) {
	root := part.NewContainer("root")
	require.NoError(t, root.AddChild(part.NewPanel("ghost", 10, 10, material.None34)))
	assert.Empty(t, Materials(root))
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.db")
	runID, err := Export(context.Background(), path, "test", buildScene(t))
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM cutlist WHERE run_id = ?`, runID).Scan(&n))
	assert.Equal(t, 3, n)

	var qty int
	require.NoError(t, db.QueryRow(
		`SELECT quantity FROM materials WHERE run_id = ? AND material = 'PLY_3_4'`,
		runID).Scan(&qty))
	assert.Equal(t, 1, qty)

	// A second export is a distinct run in the same file.
	runID2, err := Export(context.Background(), path, "test", buildScene(t))
	require.NoError(t, err)
	assert.NotEqual(t, runID, runID2)
}
