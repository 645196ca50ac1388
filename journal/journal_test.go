package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaults(t *testing.T) {
	dir := t.TempDir()
	files, err := Generate(Config{}, []int{100, 400}, dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "run_Re100.jou"), files[0])
	assert.Equal(t, filepath.Join(dir, "run_Re400.jou"), files[1])

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "; Re = 100, U_lid = 0.0001004 m/s")
	assert.Contains(t, text, "/file/read-case lidDrivenCavityFlow.msh")
	assert.Contains(t, text, "/solve/iterate 2000")
	assert.Contains(t, text, "interior_full_Re100.csv")
	assert.Contains(t, text, "vertical_centerline_Re100.csv")
	assert.Contains(t, text, `"WSS_Re100.txt"`)
}

func TestGenerateCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "custom.jou.tmpl")
	require.NoError(t, os.WriteFile(tmplPath,
		[]byte("mesh={{.Mesh}} re={{.Re}} iters={{.Iterations}}\n"), 0644))

	cfg := Config{Mesh: "cavity_2x1.msh", Iterations: 5000, TemplatePath: tmplPath}
	files, err := Generate(cfg, []int{1000}, filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "mesh=cavity_2x1.msh re=1000 iters=5000\n", string(data))
}

func TestGenerateBadTemplate(t *testing.T) {
	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "broken.tmpl")
	require.NoError(t, os.WriteFile(tmplPath, []byte("{{.Re"), 0644))

	_, err := Generate(Config{TemplatePath: tmplPath}, []int{100}, dir)
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	res := Sweep(100, 3250, 50)
	require.Len(t, res, 64)
	assert.Equal(t, 100, res[0])
	assert.Equal(t, 3250, res[63])

	assert.Equal(t, []int{400}, Sweep(400, 400, 50))
	assert.Nil(t, Sweep(400, 100, 50))
	assert.Nil(t, Sweep(100, 400, 0))
}
