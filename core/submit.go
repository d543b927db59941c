package core

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Submitter hands a rendered script to the external scheduler. The
// production implementation shells out to qsub; tests supply a mock.
type Submitter interface {
	// Submit submits the script at scriptPath and returns the scheduler's
	// job identifier line.
	Submit(scriptPath string) (string, error)
}

// QsubSubmitter submits scripts with the PBS qsub client, which takes the
// script as a file path argument.
type QsubSubmitter struct {
	Bin string
}

func NewQsubSubmitter() *QsubSubmitter {
	return &QsubSubmitter{Bin: "qsub"}
}

func (q *QsubSubmitter) Submit(scriptPath string) (string, error) {
	bin, err := exec.LookPath(q.Bin)
	if err != nil {
		return "", &SubmitError{
			ExitCode: 127,
			Err:      fmt.Errorf("%s: command not found", q.Bin),
		}
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, scriptPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		code := 1
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		}
		return "", &SubmitError{
			ExitCode: code,
			Stderr:   stderr.String(),
			Err:      err,
		}
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Dispatch delivers the rendered script. With OutfilePath set the persisted
// script is the deliverable: it is written there and the scheduler is not
// invoked. Otherwise the script is staged in a transient file, handed to
// submitter, and the temp file removed; the returned string is the
// scheduler's job identifier. Failures are terminal, no retries.
func Dispatch(script string, spec JobSpec, submitter Submitter) (string, error) {
	if spec.OutfilePath != "" {
		if err := os.WriteFile(spec.OutfilePath, []byte(script), 0644); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWrite, err)
		}
		return "", nil
	}

	tmp, err := os.CreateTemp("", "qsub2-*.sh")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(script); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return submitter.Submit(tmp.Name())
}
