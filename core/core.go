package core

import (
	"errors"
	"runtime"
)

// JobSpec is the fully resolved description of one batch job submission.
// Resolve builds it once per invocation; nothing mutates it afterwards.
// Field values are substituted verbatim into the script template, so the
// caller is responsible for values that are safe to embed in shell syntax.
type JobSpec struct {
	Name     string   `json:"job_name"`
	NCPUs    int      `json:"job_ncpus"` // 0 collapses the ncpus clause
	Mem      string   `json:"job_mem"`   // empty collapses the mem clause
	Queue    string   `json:"job_queue"`
	Walltime string   `json:"job_walltime"`
	Command  string   `json:"job_command"`
	Files    []string `json:"job_files"`

	TemplatePath string `json:"job_template,omitempty"` // empty: embedded default
	OutfilePath  string `json:"job_outfile,omitempty"`  // empty: submit directly
}

// Defaults seeds Resolve for every field the command line leaves unset.
// main computes it once per invocation (see LoadDefaults) so Resolve stays
// a pure function over its arguments.
type Defaults struct {
	Name     string
	NCPUs    int
	Mem      string
	Queue    string
	Walltime string
	Template string
}

func BuiltinDefaults() Defaults {
	return Defaults{
		Name:     "job",
		NCPUs:    runtime.NumCPU(),
		Mem:      "5gb",
		Queue:    "batch",
		Walltime: "30:00:00:00",
	}
}

// Sentinel errors for the failure classes main maps to exit codes.
var (
	// ErrVersion is returned by Resolve when --version is requested.
	ErrVersion = errors.New("qsub2: version requested")

	ErrTemplateNotFound = errors.New("qsub2: cannot read template")
	ErrRender           = errors.New("qsub2: invalid template")
	ErrWrite            = errors.New("qsub2: cannot write script")
)

// SubmitError reports a failed hand-off to the external submission command.
// ExitCode preserves the external command's own exit status (127 when the
// binary is missing) so main can propagate it.
type SubmitError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *SubmitError) Error() string {
	return "qsub2: submit failed: " + e.Err.Error()
}

func (e *SubmitError) Unwrap() error { return e.Err }
