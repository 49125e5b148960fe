package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssgreg/rcparse/rowcol"
)

const (
	defaultStress = 100000
	defaultValid  = 10000

	// Failures beyond this many per strategy are counted but not logged.
	maxReported = 10
)

var errVerify = errors.New("verification failed")

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "verify [OPTIONS]",
		Short:         "Check parsing strategies against reference and generated lines.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.StringP("strategy", "s", "all", `Strategy to check ("all"|"manual"|"strconv").`)
	flags.Int("stress", defaultStress, `Number of overflowing lines to check.`)
	flags.Int("valid", defaultValid, `Number of generated well-formed lines to check.`)
	flags.Uint64("seed", 1, `Seed for generated lines.`)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return runVerify(cfg, cmd.OutOrStdout(), newLogger(cfg.LogLevel, cmd.ErrOrStderr()))
	}

	return cmd
}

func runVerify(cfg config, out io.Writer, log *logrus.Logger) error {
	var parsers []rowcol.Parser
	if cfg.Strategy == "all" {
		parsers = rowcol.Strategies()
	} else {
		p, err := rowcol.Lookup(cfg.Strategy)
		if err != nil {
			return err
		}
		parsers = []rowcol.Parser{p}
	}

	failed := 0
	for _, p := range parsers {
		n := verifyStrategy(p, cfg, log.WithField("strategy", p.Name()))
		if n == 0 {
			_, _ = fmt.Fprintf(out, "PASSED: %s\n", p.Name())
		} else {
			_, _ = fmt.Fprintf(out, "FAILED: %s (%d lines)\n", p.Name(), n)
		}
		failed += n
	}

	if failed > 0 {
		return errors.Wrapf(errVerify, "%d lines", failed)
	}

	return nil
}

// verifyStrategy returns the number of lines p got wrong.
func verifyStrategy(p rowcol.Parser, cfg config, log *logrus.Entry) int {
	failed := 0
	check := func(kind, input string, want rowcol.Outcome) {
		got := p.Parse(input)
		if want.Equal(got) {
			return
		}
		failed++
		if failed <= maxReported {
			log.WithFields(logrus.Fields{
				"check": kind,
				"input": fmt.Sprintf("%q", input),
				"got":   got.String(),
				"want":  want.String(),
			}).Error("unexpected outcome")
		}
	}

	for _, c := range rowcol.Cases {
		check("reference", c.Input, c.Want)
	}

	// Every strategy sees the same lines for a given seed.
	g := rowcol.NewGenerator(cfg.Seed)
	for i := 0; i < cfg.Stress; i++ {
		check("overflow", g.OverflowLine(), rowcol.Outcome{Kind: rowcol.Error})
	}
	for i := 0; i < cfg.Valid; i++ {
		line, want := g.ValidLine()
		check("valid", line, want)
	}

	log.WithField("failed", failed).Info("verified")

	return failed
}
