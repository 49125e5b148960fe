package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssgreg/logftext"
	"github.com/ssgreg/rcparse/rowcol"
)

const (
	// Default read buffer size, in units of KiB (1024 bytes).
	defaultBufferSize = uint(10)

	defaultStrategy = "manual"
	defaultLogLevel = "warn"
)

var (
	// Set at build time with -ldflags "-X main.version=...".
	version = "dev"
)

var (
	errZeroBuffer = errors.New("buffer size must be positive")
	errMalformed  = errors.New("malformed lines found")
)

func main() {
	cmd := newRootCommand()

	err := cmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "rcparse failed: %s\n", err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rcparse [OPTIONS] [file ...]",
		Short:         description,
		Example:       example,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
	}
	cmd.SetHelpTemplate(helpTemplate)

	pflags := cmd.PersistentFlags()
	pflags.StringP("config", "c", "", `Read settings from the given file instead of "rcparse.{yaml,toml,json}" in "." or "$HOME/.config/rcparse".`)
	pflags.String("log-level", defaultLogLevel, `Set the diagnostics level ("debug"|"info"|"warn"|"error"). Diagnostics go to stderr.`)

	flags := cmd.Flags()
	flags.StringP("strategy", "s", defaultStrategy, `Set the parsing strategy ("manual"|"strconv").`)
	flags.String("color", "auto", `Show colored results ("always"|"never"|"auto"). --color= is the same as --color=always.`)
	flags.Uint("buffer-size", defaultBufferSize, `Set the read buffer size to buffer-size, in units of KiB (1024 bytes). Longer lines are reported as errors.`)
	flags.BoolP("number", "n", false, `Number the output lines, starting at 1.`)
	flags.BoolP("echo", "e", false, `Print the source line after each result.`)
	flags.Bool("strict", false, `Exit with an error if any line is malformed.`)
	flags.BoolP("version", "v", false, "Print version information and exit.")
	flags.BoolP("help", "h", false, "Print this help and exit.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return runRoot(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), newLogger(cfg.LogLevel, cmd.ErrOrStderr()))
	}

	cmd.AddCommand(newVerifyCommand(), newGenCommand())

	return cmd
}

func runRoot(cfg config, files []string, stdin io.Reader, out io.Writer, log *logrus.Logger) error {
	parser, err := rowcol.Lookup(cfg.Strategy)
	if err != nil {
		return err
	}

	scanOpts := Options{
		NoColor:        handleColorOption(cfg.Color, out),
		BufferSize:     handleBufferSize(cfg.BufferSize),
		NumberLines:    cfg.Number,
		StartingNumber: 1,
		Echo:           cfg.Echo,
		Parser:         parser,
	}

	var total stats
	handleReader := func(name string, r io.Reader) error {
		log.WithField("file", name).Debug("scanning")

		var (
			st  stats
			err error
		)
		scanOpts.StartingNumber, st, err = scan(r, out, scanOpts)
		total.merge(st)
		if err != nil {
			return errors.Wrapf(err, "failed to scan %s", name)
		}

		return nil
	}

	handleFile := func(name string) error {
		f, err := os.Open(name)
		if err != nil {
			return errors.WithStack(err)
		}
		defer func() {
			_ = f.Close()
		}()

		return handleReader(name, f)
	}

	err = func() error {
		if len(files) == 0 {
			// No files were specified. Read stdin.
			return handleReader("-", stdin)
		}

		// Scan all specified files.
		for _, file := range files {
			var handle func() error
			switch file {
			case "-":
				handle = func() error {
					return handleReader(file, stdin)
				}
			default:
				handle = func() error {
					return handleFile(file)
				}
			}

			err := handle()
			if err != nil {
				return err
			}
		}

		return nil
	}()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"strategy": parser.Name(),
		"lines":    total.Lines(),
		"success":  total.Success,
		"empty":    total.Empty,
		"error":    total.Error,
	}).Info("parsed")

	if cfg.Strict && total.Error > 0 {
		return errors.Wrapf(errMalformed, "%d of %d", total.Error, total.Lines())
	}

	return nil
}

// handleColorOption handles 'color' option for results written to out. It
// returns true if colored output should be turned off. Only an *os.File can
// be a terminal, so "auto" turns colors off for any other writer.
func handleColorOption(coloredLogs string, out io.Writer) bool {
	force := false

	switch strings.ToLower(coloredLogs) {
	case "never":
		return true

	case "always", "":
		force = true

		fallthrough

	default:
		f, isFile := out.(*os.File)
		if !isFile {
			return !force
		}
		ok := logftext.EnableSeqTTY(f, true)

		return !force && (!ok || logftext.CheckNoColor())
	}
}

// handleBufferSize handles 'buffer-size' option. It returns buffer size
// in bytes.
func handleBufferSize(bufferSize uint) uint {
	return bufferSize * 1024
}

const (
	description = `
Classifies lines holding a "row col" pair of unsigned 64-bit integers.

The rcparse reads files sequentially and prints one result per input line to the standard output:
the pair itself, <empty> for blank lines or <error> for anything else. Content after the second
integer is ignored. The 'file' operands are processed in command-line order. If 'file' is a single
dash '-' or absent, rcparse reads from the standard input.`

	example = `
  The command:

  	rcparse -n file1

  will parse the content of file1 and print numbered results to the standard output.

  The command:

  	rcparse verify --stress 1000000

  will check every parsing strategy against the reference lines and a million overflowing ones.`

	helpTemplate = `Usage: {{.Use}}
{{.Short}}
{{if .HasExample}}
Examples:{{.Example}}
{{end}}{{if .HasAvailableSubCommands}}
Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}
{{end}}
Options:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
`
)
