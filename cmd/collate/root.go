package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mhr3/collation/compareinfo"
	"github.com/mhr3/collation/options"
	"github.com/mhr3/collation/sortkey"
	"github.com/mhr3/collation/span"
	"github.com/mhr3/collation/utf16"
)

type rootFlags struct {
	locale      string
	mode        compareinfo.Mode
	options     string
	logLevel    string
	showMetrics bool
}

// session is what every subcommand runs against once the persistent flags
// have been applied.
type session struct {
	info   *compareinfo.CompareInfo
	opts   options.CompareOptions
	logger log.FieldLogger
	reg    *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		s     session
	)

	rootCmd := &cobra.Command{
		Use:           "collate",
		Short:         "Culture-aware string comparison, search and sort keys",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := SetFlagsFromEnv(cmd.Flags(), envPrefix); err != nil {
				return errors.Wrap(err, "setting flags from environment")
			}
			logger, err := setupLogger(flags.logLevel)
			if err != nil {
				return errors.Wrapf(err, "invalid log level %q", flags.logLevel)
			}
			opts, err := options.Parse(flags.options)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			info, err := compareinfo.New(compareinfo.Config{
				Locale:     flags.locale,
				Mode:       flags.mode,
				Logger:     logger,
				Registerer: reg,
			})
			if err != nil {
				return err
			}
			s = session{info: info, opts: opts, logger: logger, reg: reg}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !flags.showMetrics || s.reg == nil {
				return nil
			}
			return logMetrics(s.logger, s.reg)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.locale, "locale", "", "BCP 47 locale name, empty for the invariant locale")
	pf.Var(&flags.mode, "mode", "backend: linguistic, invariant or hybrid")
	pf.StringVarP(&flags.options, "options", "o", "None", "compare options, e.g. IgnoreCase|IgnoreWidth")
	pf.StringVar(&flags.logLevel, "log-level", log.InfoLevel.String(), "logging level: debug, info, warning, error")
	pf.BoolVar(&flags.showMetrics, "metrics", false, "log the engine counters when the command finishes")

	rootCmd.AddCommand(
		newCompareCmd(&s),
		newIndexCmd(&s, "index", true),
		newIndexCmd(&s, "last-index", false),
		newAffixCmd(&s, "prefix", true),
		newAffixCmd(&s, "suffix", false),
		newSortKeyCmd(&s),
		newSortCmd(&s),
		newCaseCmd(&s, "upper", true),
		newCaseCmd(&s, "lower", false),
		newVersionCmd(&s),
	)
	return rootCmd
}

func newCompareCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Print -1, 0 or 1 as A sorts before, equal to or after B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := s.info.CompareOptions(args[0], args[1], s.opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newIndexCmd(s *session, use string, fromStart bool) *cobra.Command {
	var start, count int
	short := "Print the first match of VALUE in SOURCE as <index> <length>"
	if !fromStart {
		short = "Print the last match of VALUE in SOURCE as <index> <length>"
	}
	cmd := &cobra.Command{
		Use:   use + " SOURCE VALUE",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, value := utf16.FromString(args[0]), utf16.FromString(args[1])
			ranged := cmd.Flags().Changed("start") || cmd.Flags().Changed("count")
			if ranged && !cmd.Flags().Changed("count") {
				if fromStart {
					count = len(source) - start
				} else {
					count = start + 1
				}
			}
			if ranged && !cmd.Flags().Changed("start") && !fromStart {
				start = len(source) - 1
			}

			var (
				m   span.Match
				err error
			)
			switch {
			case ranged && fromStart:
				m, err = s.info.IndexOfUnitsRange(source, value, start, count, s.opts)
			case ranged:
				m, err = s.info.LastIndexOfUnitsRange(source, value, start, count, s.opts)
			case fromStart:
				m, err = s.info.IndexOfUnits(source, value, s.opts)
			default:
				m, err = s.info.LastIndexOfUnits(source, value, s.opts)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", m.Index, m.Length)
			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "first unit of the search window (last unit for last-index)")
	cmd.Flags().IntVar(&count, "count", 0, "length of the search window in UTF-16 units")
	return cmd
}

func newAffixCmd(s *session, use string, prefix bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " SOURCE VALUE",
		Short: "Print whether VALUE is a " + use + " of SOURCE and the matched length",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, value := utf16.FromString(args[0]), utf16.FromString(args[1])
			var (
				ok  bool
				n   int
				err error
			)
			if prefix {
				ok, n, err = s.info.IsPrefixUnits(source, value, s.opts)
			} else {
				ok, n, err = s.info.IsSuffixUnits(source, value, s.opts)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%t %d\n", ok, n)
			return nil
		},
	}
}

func newSortKeyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "sort-key TEXT",
		Short: "Print the hex encoded sort key of TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := s.info.GetSortKey(args[0], s.opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(k.KeyData))
			return nil
		},
	}
}

func newSortCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort the lines of standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := readLines(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if err := sortLines(s, lines); err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, l := range lines {
				w.WriteString(l)
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}
}

// sortLines orders lines by sort key when the mode and options can produce
// keys and by pairwise comparison otherwise.
func sortLines(s *session, lines []string) error {
	if s.info.Mode() != compareinfo.Hybrid && s.opts.IsLinguistic() {
		keys := make([]sortkey.SortKey, len(lines))
		for i, l := range lines {
			k, err := s.info.GetSortKey(l, s.opts)
			if err != nil {
				return err
			}
			keys[i] = k
		}
		sort.SliceStable(keys, func(i, j int) bool {
			return sortkey.Compare(keys[i], keys[j]) < 0
		})
		for i, k := range keys {
			lines[i] = k.Original
		}
		return nil
	}

	var cmpErr error
	sort.SliceStable(lines, func(i, j int) bool {
		r, err := s.info.CompareOptions(lines[i], lines[j], s.opts)
		if err != nil && cmpErr == nil {
			cmpErr = err
		}
		return r < 0
	})
	return cmpErr
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, errors.Wrap(sc.Err(), "reading input")
}

func newCaseCmd(s *session, use string, upper bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TEXT",
		Short: "Print TEXT mapped to " + use + " case for the locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ti := s.info.TextInfo()
			var (
				out string
				err error
			)
			if upper {
				out, err = ti.ToUpper(args[0])
			} else {
				out, err = ti.ToLower(args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newVersionCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sort version of the selected locale and mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), s.info.Version())
			return nil
		},
	}
}

func logMetrics(logger log.FieldLogger, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := log.Fields{"metric": mf.GetName(), "value": m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				fields[lp.GetName()] = lp.GetValue()
			}
			logger.WithFields(fields).Info("counter")
		}
	}
	return nil
}
