package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default PBS submission script. The placeholder vocabulary ({name},
// {ncpus}, {mem}, {queue}, {walltime}, {command}) is fixed; user templates
// rely on these exact tokens.
const defaultTemplate = `#!/bin/bash
#PBS -N {name}
#PBS -l select=1{ncpus}{mem}
#PBS -q {queue}
#PBS -l walltime={walltime}

cd $PBS_O_WORKDIR

{command}
`

// LoadTemplate returns the template text for spec: the file named by
// TemplatePath when set, the embedded default otherwise. A template that
// never embeds {command} would produce a script that does not run the job,
// so it is rejected here, before any submission.
func LoadTemplate(spec JobSpec) (string, error) {
	if spec.TemplatePath == "" {
		return defaultTemplate, nil
	}
	data, err := os.ReadFile(spec.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, spec.TemplatePath)
	}
	if !strings.Contains(string(data), "{command}") {
		return "", fmt.Errorf("%w: %s is missing the {command} placeholder",
			ErrRender, spec.TemplatePath)
	}
	return string(data), nil
}

// Render substitutes spec into template. Pure and deterministic: no I/O,
// same inputs always yield byte-identical output. NCPUs and Mem render as
// resource clauses appended to the select statement and collapse to nothing
// when absent. Text that merely resembles a placeholder passes through
// untouched, so templates may contain scheduler-native ${...} syntax.
func Render(template string, spec JobSpec) string {
	var ncpus, mem string
	if spec.NCPUs > 0 {
		ncpus = ":ncpus=" + strconv.Itoa(spec.NCPUs)
	}
	if spec.Mem != "" {
		mem = ":mem=" + spec.Mem
	}
	return strings.NewReplacer(
		"{name}", spec.Name,
		"{ncpus}", ncpus,
		"{mem}", mem,
		"{queue}", spec.Queue,
		"{walltime}", spec.Walltime,
		"{command}", spec.Command,
	).Replace(template)
}
