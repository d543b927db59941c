package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	core "github.com/justype/qsub2/core"
	logger "github.com/justype/qsub2/logger"
)

const version = "qsub2 1.0"

func main() {
	err := run(os.Args[1:])
	if err == nil {
		os.Exit(0)
	}
	if errors.Is(err, core.ErrVersion) {
		fmt.Println(version)
		os.Exit(0)
	}
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) {
		if flagsErr.Type == flags.ErrHelp {
			core.WriteUsage(os.Stdout)
			os.Exit(0)
		}
		// unknown option, missing value, invalid syntax
		fmt.Fprintln(os.Stderr, "qsub2: "+flagsErr.Message)
		os.Exit(2)
	}
	var submitErr *core.SubmitError
	if errors.As(err, &submitErr) {
		fmt.Fprintln(os.Stderr, err.Error())
		if len(submitErr.Stderr) > 0 {
			fmt.Fprint(os.Stderr, submitErr.Stderr)
		}
		os.Exit(submitErr.ExitCode)
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, core.ErrTemplateNotFound), errors.Is(err, core.ErrRender):
		return 3
	case errors.Is(err, core.ErrWrite):
		return 4
	default:
		// option and config errors
		return 2
	}
}

func run(args []string) error {
	defaults, err := core.LoadDefaults()
	if err != nil {
		return err
	}
	spec, err := core.Resolve(args, defaults)
	if err != nil {
		return err
	}
	logger.DebugObj("jobspec", spec)

	template, err := core.LoadTemplate(spec)
	if err != nil {
		return err
	}
	script := core.Render(template, spec)

	jobID, err := core.Dispatch(script, spec, core.NewQsubSubmitter())
	if err != nil {
		return err
	}
	if spec.OutfilePath != "" {
		logger.InfoPrintf("script written to %s", spec.OutfilePath)
		return nil
	}
	logger.InfoPrintf("job submitted: %s", jobID)
	fmt.Println(jobID)
	return nil
}
