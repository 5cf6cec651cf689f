package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usagebar/internal/domain"
)

func TestTmuxStatus(t *testing.T) {
	tests := []struct {
		name string
		view domain.StatusView
		want string
	}{
		{"hidden", domain.StatusView{}, ""},
		{"neutral", domain.StatusView{Text: "★ Pro sonnet-4 → 1.5K"}, "★ Pro sonnet-4 → 1.5K"},
		{"warning", domain.StatusView{Color: domain.ColorWarning, Text: "$8.50"}, "#[bg=colour172,fg=colour255] $8.50 #[default]"},
		{"error", domain.StatusView{Color: domain.ColorError, Text: "✖ Error"}, "#[bg=colour160,fg=colour255] ✖ Error #[default]"},
		{"escapes formats", domain.StatusView{Text: "#(rm -rf ~)"}, "##(rm -rf ~)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tmuxStatus(tt.view))
		})
	}
}

func TestWriteStatus_JSON(t *testing.T) {
	var buf bytes.Buffer
	view := domain.StatusView{Color: domain.ColorWarning, Text: "★ Pro", Tooltip: "Plan: Pro"}

	require.NoError(t, writeStatus(&buf, view, "json"))

	assert.JSONEq(t, `{"color":"warning","text":"★ Pro","tooltip":"Plan: Pro"}`, buf.String())
}

func TestWriteStatus_Plain(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeStatus(&buf, domain.StatusView{Color: domain.ColorError, Text: "✖ Error"}, "plain"))

	assert.Equal(t, "✖ Error\n", buf.String())
}

func TestLazyRepository_OpensOnFirstUse(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	repo := newLazyRepository(dbPath)

	require.NoError(t, repo.Close(), "closing an unopened repository is a no-op")
	assert.NoFileExists(t, dbPath)

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, domain.UsageSnapshot{Plan: domain.PlanMax, TokenCount: 42}))
	assert.FileExists(t, dbPath)

	snapshots, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, int64(42), snapshots[0].TokenCount)

	require.NoError(t, repo.Close())
}
