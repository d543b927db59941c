package core_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/justype/qsub2/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helloSpec matches the documented round-trip fixture: defaults with the
// ncpus and mem clauses absent.
func helloSpec() core.JobSpec {
	return core.JobSpec{
		Name:     "job",
		Queue:    "batch",
		Walltime: "30:00:00:00",
		Command:  `echo "Hello, world!"`,
	}
}

const helloScript = `#!/bin/bash
#PBS -N job
#PBS -l select=1
#PBS -q batch
#PBS -l walltime=30:00:00:00

cd $PBS_O_WORKDIR

echo "Hello, world!"
`

func TestRenderDefaultTemplate(t *testing.T) {
	template, err := core.LoadTemplate(helloSpec())
	require.NoError(t, err)

	script := core.Render(template, helloSpec())

	assert.Equal(t, helloScript, script)
}

func TestRenderNCPUsClause(t *testing.T) {
	spec := helloSpec()
	spec.NCPUs = 4
	template, err := core.LoadTemplate(spec)
	require.NoError(t, err)

	script := core.Render(template, spec)

	// only the resource-selection line changes
	expected := strings.Replace(helloScript,
		"#PBS -l select=1\n", "#PBS -l select=1:ncpus=4\n", 1)
	assert.Equal(t, expected, script)
}

func TestRenderMemClause(t *testing.T) {
	spec := helloSpec()
	spec.NCPUs = 4
	spec.Mem = "5gb"
	template, err := core.LoadTemplate(spec)
	require.NoError(t, err)

	script := core.Render(template, spec)

	assert.Contains(t, script, "#PBS -l select=1:ncpus=4:mem=5gb\n")
}

func TestRenderDeterministic(t *testing.T) {
	spec := helloSpec()
	spec.NCPUs = 2
	spec.Mem = "1gb"
	template, err := core.LoadTemplate(spec)
	require.NoError(t, err)

	assert.Equal(t, core.Render(template, spec), core.Render(template, spec))
}

func TestRenderUnknownPlaceholderPassesThrough(t *testing.T) {
	script := core.Render("{name} {unknown} ${PBS_JOBID} {command}", helloSpec())

	assert.Equal(t, `job {unknown} ${PBS_JOBID} echo "Hello, world!"`, script)
}

func TestLoadTemplateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tmpl")
	require.NoError(t, os.WriteFile(path,
		[]byte("#PBS -N {name}\n{command}\n"), 0644))
	spec := helloSpec()
	spec.TemplatePath = path

	template, err := core.LoadTemplate(spec)

	require.NoError(t, err)
	assert.Equal(t, "#PBS -N job\necho \"Hello, world!\"\n",
		core.Render(template, spec))
}

func TestLoadTemplateMissing(t *testing.T) {
	spec := helloSpec()
	spec.TemplatePath = filepath.Join(t.TempDir(), "missing.sh")

	_, err := core.LoadTemplate(spec)

	require.ErrorIs(t, err, core.ErrTemplateNotFound)
	assert.Contains(t, err.Error(), "missing.sh")
}

func TestLoadTemplateWithoutCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("#PBS -N {name}\n"), 0644))
	spec := helloSpec()
	spec.TemplatePath = path

	_, err := core.LoadTemplate(spec)

	require.ErrorIs(t, err, core.ErrRender)
}
