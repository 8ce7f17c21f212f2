package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmuraoka/shinkoku-navi/internal/advice"
	"github.com/hmuraoka/shinkoku-navi/internal/config"
)

func TestLoadTable_EmbeddedDefault(t *testing.T) {
	resetRootCmd(t)

	tbl, vr, err := loadTable(config.Default())
	require.NoError(t, err)
	assert.Equal(t, 11, tbl.Len())
	assert.False(t, vr.HasErrors())
}

func TestLoadTable_FlagBeatsConfig(t *testing.T) {
	resetRootCmd(t)

	flagPath := writeTableFile(t, warningTableTOML)
	cfg := config.Default()
	cfg.Table.File = "/does/not/exist.toml"

	flagTable = flagPath
	tbl, _, err := loadTable(cfg)
	require.NoError(t, err, "--table must take precedence over table.file")
	assert.Equal(t, 1, tbl.Len())
}

func TestLoadTable_ConfigFile(t *testing.T) {
	resetRootCmd(t)

	cfg := config.Default()
	cfg.Table.File = writeTableFile(t, warningTableTOML)

	tbl, _, err := loadTable(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestBuildFetcher_OfflineWhenFlagSet(t *testing.T) {
	resetRootCmd(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	flagNoAdvice = true
	fetcher := buildFetcher(context.Background(), config.Default())
	assert.IsType(t, &advice.StaticFetcher{}, fetcher)
}

func TestBuildFetcher_OfflineWhenDisabled(t *testing.T) {
	resetRootCmd(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg := config.Default()
	cfg.Advice.Disabled = true
	fetcher := buildFetcher(context.Background(), cfg)
	assert.IsType(t, &advice.StaticFetcher{}, fetcher)
}

func TestBuildFetcher_OfflineWithoutKey(t *testing.T) {
	resetRootCmd(t)
	t.Setenv("GEMINI_API_KEY", "")

	fetcher := buildFetcher(context.Background(), config.Default())
	require.IsType(t, &advice.StaticFetcher{}, fetcher)

	adv := fetcher.Fetch(context.Background(), "")
	assert.Equal(t, advice.OfflineText, adv.Text)
}
