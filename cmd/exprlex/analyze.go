package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"ExprLex/internal/lexer"
	"ExprLex/internal/logging"
)

const (
	formatTokens = "tokens"
	formatExpr   = "expr"
	formatJSON   = "json"
)

func analyzeCmd() *cobra.Command {
	var (
		format   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "analyze [EXPR...]",
		Short: "tokenize each EXPR, or each line of stdin when none is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatTokens, formatExpr, formatJSON:
			default:
				return errors.Errorf("unknown format %q (want %s, %s or %s)", format, formatTokens, formatExpr, formatJSON)
			}

			logger := logging.NewWithWriters(logLevel, cmd.ErrOrStderr(), cmd.ErrOrStderr())
			defer logging.Sync(logger)

			l := lexer.New(lexer.WithLogger(logger))
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				for _, in := range args {
					if err := analyzeOne(l, out, in, format); err != nil {
						return err
					}
				}
				return nil
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				if err := analyzeOne(l, out, sc.Text(), format); err != nil {
					return err
				}
			}
			return errors.Wrap(sc.Err(), "read stdin")
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTokens, "output format: tokens, expr or json")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	return cmd
}

func analyzeOne(a lexer.Analyzer, out io.Writer, input, format string) error {
	tokens, err := a.Analyze(input)
	if err != nil {
		return errors.Errorf("%q: %s", input, lexer.Describe(err))
	}

	switch format {
	case formatExpr:
		fmt.Fprintln(out, lexer.Format(tokens))
	case formatJSON:
		b, err := json.Marshal(tokens)
		if err != nil {
			return errors.Wrap(err, "encode tokens")
		}
		fmt.Fprintln(out, string(b))
	default:
		for _, t := range tokens {
			fmt.Fprintln(out, t)
		}
	}
	return nil
}
