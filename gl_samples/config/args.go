package config

import (
	"github.com/cockroachdb/errors"
)

// ErrHelp is returned by ParseArgs when the option list was requested.
var ErrHelp = errors.New("help requested")

type Options struct {
	ConfigPath string
	Verbose    bool
	SaveImages bool
	// Args are the positional arguments, in order.
	Args []string
}

const Usage = `
Other options
	--config <file>
		Read window and shader settings from a YAML file
	--verbose, -v
		Log shader compile and link events
	--save-images
		Save the first rendered frame as a png file in the current working directory
`

func ParseArgs(args []string) (Options, error) {
	var opts Options

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			return opts, ErrHelp
		case arg == "--verbose" || arg == "-v":
			opts.Verbose = true
		case arg == "--save-images":
			opts.SaveImages = true
		case arg == "--config":
			if i+1 >= len(args) {
				return opts, errors.New("--config requires a file name")
			}
			i++
			opts.ConfigPath = args[i]
		case len(arg) > 0 && arg[0] == '-':
			return opts, errors.Newf("unrecognized option: %s", arg)
		default:
			opts.Args = append(opts.Args, arg)
		}
	}

	return opts, nil
}
