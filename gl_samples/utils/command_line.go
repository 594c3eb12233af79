package utils

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/glwrapper/examples/gl_samples/config"
	"github.com/glwrapper/examples/shader"
)

// ProcessCommandLineArgs parses os.Args, loads the config file if one was
// named and enables shader logging for --verbose. It exits the process for
// --help and for unrecognized options.
func (i *SampleInfo) ProcessCommandLineArgs() error {
	opts, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		fmt.Print(config.Usage)
		os.Exit(0)
		return nil
	} else if err != nil {
		fmt.Printf("\n%v\n", err)
		fmt.Println("\nUse --help or -h for option list.")
		os.Exit(1)
		return nil
	}
	i.Options = opts

	if opts.ConfigPath != "" {
		i.Config, err = config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
	} else {
		i.Config = config.Default()
	}

	if opts.Verbose {
		shader.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	return nil
}
