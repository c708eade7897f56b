package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/saasboard/internal/errors"
	"github.com/zhubert/saasboard/internal/projects"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Len(t, d.Stats, 4)
	assert.Len(t, d.Activities, 5)
	assert.Len(t, d.Alerts, 3)
	require.Len(t, d.Projects, 5)

	assert.Equal(t, projects.Project{
		ID: 1, Name: "Project Alpha", Status: projects.StatusActive, Progress: 75, Owner: "John Doe",
	}, d.Projects[0])
	assert.Equal(t, TrendDown, d.Stats[2].Trend)
	assert.Equal(t, AlertError, d.Alerts[1].Type)
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Len(t, d.Projects, 5)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
projects:
  - id: 7
    name: Project Zeta
    status: Pending
    progress: 5
    owner: Ann Lee
`), 0644))

	d, err := Load(path)
	require.NoError(t, err)
	require.Len(t, d.Projects, 1)
	assert.Equal(t, "Project Zeta", d.Projects[0].Name)
	assert.Empty(t, d.Stats)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindIO))
}

func TestLoad_InvalidData(t *testing.T) {
	tests := map[string]string{
		"bad progress": "projects:\n  - {id: 1, name: A, status: Active, progress: 150, owner: x}\n",
		"bad status":   "projects:\n  - {id: 1, name: A, status: Archived, progress: 1, owner: x}\n",
		"dup ids":      "projects:\n  - {id: 1, name: A, status: Active, progress: 1, owner: x}\n  - {id: 1, name: B, status: Active, progress: 1, owner: y}\n",
		"bad trend":    "stats:\n  - {label: L, value: v, change: c, trend: sideways}\n",
		"bad alert":    "alerts:\n  - {id: 1, type: fatal, message: m, time: t}\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.KindInvalid), "got %v", err)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("widgets: []\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindIO))
}
