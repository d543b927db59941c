package core

import (
	"errors"
	"io"

	"github.com/jessevdk/go-flags"
)

// jobOptions is the go-flags view of the qsub2 command line. Pointer fields
// distinguish "flag given" from "flag omitted" so Defaults only fill real
// omissions.
type jobOptions struct {
	Help     bool    `short:"h" long:"help" description:"Show this help message"`
	Version  bool    `long:"version" description:"Show version information"`
	Name     *string `short:"n" long:"name" description:"Job name [job]"`
	NCPUs    *int    `short:"@" long:"ncpus" description:"CPU number [logical cpu number]"`
	Mem      *string `short:"m" long:"mem" description:"Memory [5gb]"`
	Queue    *string `short:"q" long:"queue" description:"Queue [batch]"`
	Walltime *string `long:"walltime" description:"Walltime [30:00:00:00]"`
	Template *string `long:"template" description:"Script template"`
	Outfile  *string `long:"outfile" description:"Write script here instead of submitting"`
	Args     struct {
		Command string   `positional-arg-name:"command" description:"job command (quote multi-word commands)"`
		Files   []string `positional-arg-name:"files" description:"input files"`
	} `positional-args:"true"`
}

func newParser(opts *jobOptions) *flags.Parser {
	parser := flags.NewParser(opts, flags.PassDoubleDash)
	parser.Name = "qsub2"
	parser.Usage = "[OPTIONS] <command> [files]..."
	return parser
}

// WriteUsage prints the option summary shown for --help and usage errors.
func WriteUsage(w io.Writer) {
	var opts jobOptions
	newParser(&opts).WriteHelp(w)
}

func createHelpErr() error {
	err := flags.Error{
		Type:    flags.ErrHelp,
		Message: "show help message",
	}
	return &err
}

// Resolve merges command-line arguments with defaults into a JobSpec.
// It is pure: no file, process, or environment access. Unknown flags and
// flags missing their value surface as *flags.Error; validation failures
// surface as plain errors. The first positional token is the whole job
// command; every remaining positional token is an input file.
func Resolve(args []string, defaults Defaults) (JobSpec, error) {
	var opts jobOptions
	if _, err := newParser(&opts).ParseArgs(args); err != nil {
		return JobSpec{}, err
	}
	if opts.Help {
		return JobSpec{}, createHelpErr()
	}
	if opts.Version {
		return JobSpec{}, ErrVersion
	}

	spec := JobSpec{
		Name:         defaults.Name,
		NCPUs:        defaults.NCPUs,
		Mem:          defaults.Mem,
		Queue:        defaults.Queue,
		Walltime:     defaults.Walltime,
		TemplatePath: defaults.Template,
	}
	if opts.Name != nil {
		spec.Name = *opts.Name
	}
	if opts.NCPUs != nil {
		if *opts.NCPUs <= 0 {
			return JobSpec{}, errors.New("qsub2: ncpus must be a positive integer")
		}
		spec.NCPUs = *opts.NCPUs
	}
	if opts.Mem != nil {
		spec.Mem = *opts.Mem
	}
	if opts.Queue != nil {
		spec.Queue = *opts.Queue
	}
	if opts.Walltime != nil {
		spec.Walltime = *opts.Walltime
	}
	if opts.Template != nil {
		spec.TemplatePath = *opts.Template
	}
	if opts.Outfile != nil {
		spec.OutfilePath = *opts.Outfile
	}

	spec.Command = opts.Args.Command
	spec.Files = opts.Args.Files
	if spec.Command == "" {
		return JobSpec{}, errors.New("qsub2: missing command")
	}
	return spec, nil
}
