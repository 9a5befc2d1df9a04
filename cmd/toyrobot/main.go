// toyrobot drives a robot around a square table.
//
// With a file argument every line of the file is run as one batch of
// commands. Without one the robot reads commands from stdin, one batch per
// line, until EOF or a line reading "EOF".
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"toyrobot/internal/config"
	"toyrobot/internal/logging"
	"toyrobot/internal/model"
	"toyrobot/internal/robot"
)

// exitError carries a process exit code for failures already reported to the user.
type exitError int

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitError) ExitCode() int { return int(e) }

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	width      int
	length     int
	logLevel   string
	logFile    string
	draw       bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("toyrobot", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML or YAML config file")
	flagSet.IntVar(&opts.width, "width", model.DefaultWidth, "table width")
	flagSet.IntVar(&opts.length, "length", model.DefaultLength, "table length")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	flagSet.StringVar(&opts.logFile, "log-file", "", "write JSON log records to this rotating file")
	flagSet.BoolVar(&opts.draw, "draw", false, "draw the table after every batch")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}
	if flagSet.NArg() > 1 {
		printHelp(stderr, flagSet)
		return exitError(2)
	}

	cfg, err := loadConfig(flagSet, opts)
	if err != nil {
		return err
	}
	logger, closer := logging.New(cfg.Log, stderr)
	defer closer.Close()

	sizeConfigured := opts.configPath != "" || flagSet.Changed("width") || flagSet.Changed("length")
	in := bufio.NewScanner(stdin)

	var table model.Table
	if flagSet.NArg() == 0 && !sizeConfigured && isTerminal(stdin) {
		fmt.Fprintln(stdout, welcome)
		table = promptTable(in, stdout)
	} else if table, err = cfg.Table.Table(); err != nil {
		return err
	}

	r, err := robot.New(model.NewNavigator(table), robot.WithOutput(stdout), robot.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug().Stringer("table", table).Msg("robot ready")

	s := &session{robot: r, out: stdout, errOut: stderr, draw: opts.draw}
	if flagSet.NArg() == 1 {
		return s.runFile(flagSet.Arg(0))
	}
	return s.play(in)
}

func loadConfig(flagSet *pflag.FlagSet, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
	}
	if flagSet.Changed("width") {
		cfg.Table.Width = opts.width
	}
	if flagSet.Changed("length") {
		cfg.Table.Length = opts.length
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flagSet.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintln(w, "usage: toyrobot [flags] [commands-file]")
	fmt.Fprintln(w)
	fmt.Fprint(w, flagSet.FlagUsages())
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
