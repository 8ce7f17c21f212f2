package buildinfo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	t.Parallel()

	info := GetInfo()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, Commit, info.Commit)
	assert.Equal(t, Date, info.Date)
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	info := Info{Version: "1.2.3", Commit: "abc1234", Date: "2026-01-15T10:00:00Z"}
	assert.Equal(t, "shinkoku v1.2.3 (commit: abc1234, built: 2026-01-15T10:00:00Z)", info.String())
}

func TestInfo_JSON(t *testing.T) {
	t.Parallel()

	info := Info{Version: "1.2.3", Commit: "abc1234", Date: "2026-01-15T10:00:00Z"}
	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc1234","date":"2026-01-15T10:00:00Z"}`, string(data))
}
