package main

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/ssgreg/rcparse/rowcol"
)

var errUnknownKind = errors.New("unknown kind")

func newGenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gen [OPTIONS]",
		Short:         "Print generated input lines, one per row.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.Int("count", 10, `Number of lines to print.`)
	flags.String("kind", "valid", `Kind of lines ("valid"|"overflow").`)
	flags.Uint64("seed", 1, `Seed for generated lines. The same seed gives the same lines.`)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return runGen(cfg, cmd.OutOrStdout())
	}

	return cmd
}

func runGen(cfg config, out io.Writer) error {
	g := rowcol.NewLineGenerator(cfg.Seed)

	var next func() string
	switch cfg.Kind {
	case "valid":
		next = func() string {
			line, _ := g.ValidLine()
			return line
		}
	case "overflow":
		next = g.OverflowLine
	default:
		return errors.Wrapf(errUnknownKind, "%q", cfg.Kind)
	}

	bw := bufio.NewWriter(out)
	for i := 0; i < cfg.Count; i++ {
		_, _ = bw.WriteString(next())
		_ = bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "failed to write lines")
}
