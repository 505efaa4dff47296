package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/d21d3q/goais/internal/armor"
	"gitlab.com/d21d3q/goais/internal/bitstream"
	"gitlab.com/d21d3q/goais/internal/options"
	"gitlab.com/d21d3q/goais/pkg/goais"
)

var (
	rootCmd = &cobra.Command{
		Use:   "goais-analyze [payload]",
		Short: "Decode AIS messages",
		Long:  "goais-analyze decodes armored AIS payloads and NMEA sentence streams using the goais library.",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		RunE: runDecodeCmd,
	}

	decodeCmd = &cobra.Command{
		Use:   "decode [payload]",
		Short: "Decode one armored payload, or read payloads from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDecodeCmd,
	}

	sentencesCmd = &cobra.Command{
		Use:   "sentences [file]",
		Short: "Decode a stream of !AIVDM/!AIVDO sentences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runSentences(cmd.Context(), cmd.OutOrStdout(), in)
		},
	}

	encodeCmd = &cobra.Command{
		Use:   "encode <text>",
		Short: "Armor 6-bit text, printing the payload and fill bits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd.OutOrStdout(), args[0], encodeWidth)
		},
	}

	configPath  string
	logLevel    string
	typesFlag   string
	indentFlag  string
	skipErrors  bool
	fillBits    int
	encodeWidth int

	cfg = defaultConfig()
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a TOML config file")
	flags.StringVar(&logLevel, "log-level", "", "log level (overrides config and "+envLogLevel+")")
	flags.StringVar(&typesFlag, "types", "", "only print these message types, e.g. 1-3,24")
	flags.StringVar(&indentFlag, "indent", "", "JSON indent string, empty for compact output")

	rootCmd.Flags().IntVar(&fillBits, "fill", 0, "fill bits of the payload (0-5)")
	decodeCmd.Flags().IntVar(&fillBits, "fill", 0, "fill bits of the payload (0-5)")
	sentencesCmd.Flags().BoolVar(&skipErrors, "skip-errors", true, "log failed sentences and continue")
	encodeCmd.Flags().IntVar(&encodeWidth, "width", 0, "field width in bits, a multiple of 6 (default fits the text)")

	rootCmd.AddCommand(decodeCmd, sentencesCmd, encodeCmd)
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

// setup resolves configuration: defaults, then file, then environment, then
// flags.
func setup(cmd *cobra.Command) error {
	resolved := defaultConfig()
	var err error
	if configPath != "" {
		if resolved, err = loadConfig(configPath, resolved); err != nil {
			return err
		}
	}
	if resolved, err = applyEnv(resolved, os.Getenv); err != nil {
		return err
	}
	if resolved, err = applyFlags(cmd, resolved); err != nil {
		return err
	}
	cfg = resolved
	logrus.SetLevel(cfg.LogLevel)
	return nil
}

func applyFlags(cmd *cobra.Command, c config) (config, error) {
	flags := cmd.Flags()
	var err error
	if flags.Changed("log-level") {
		if c.LogLevel, err = logrus.ParseLevel(logLevel); err != nil {
			return config{}, fmt.Errorf("parse --log-level: %w", err)
		}
	}
	if flags.Changed("types") {
		if c.Types, err = options.ParseTypeFilter(typesFlag); err != nil {
			return config{}, fmt.Errorf("parse --types: %w", err)
		}
	}
	if flags.Changed("indent") {
		c.JSONIndent = indentFlag
	}
	if flags.Changed("skip-errors") {
		c.SkipErrors = skipErrors
	}
	return c, nil
}

func decodeOptions() goais.DecodeOptions {
	return goais.DecodeOptions{
		Logger: logrus.NewEntry(logrus.StandardLogger()),
		Types:  cfg.Types.Types(),
	}
}

func runDecodeCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if len(args) == 0 {
		return runInteractive(ctx, cmd.OutOrStdout(), cmd.InOrStdin())
	}
	return runDecode(ctx, cmd.OutOrStdout(), args[0], fillBits)
}

// runInteractive reads "payload [fill]" lines until EOF.
func runInteractive(ctx context.Context, out io.Writer, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	logrus.Info("goais analyze mode. Paste an armored payload, optionally followed by fill bits, and press Enter (Ctrl+D to exit).")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		fill := 0
		if len(fields) > 1 {
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				logrus.WithError(err).WithField("fill", fields[1]).Error("invalid fill bits")
				continue
			}
			fill = v
		}
		if err := runDecode(ctx, out, fields[0], fill); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"payload": fields[0], "fill": fill}).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runDecode(ctx context.Context, out io.Writer, payload string, fill int) error {
	result, err := goais.DecodeWithOptions(ctx, payload, fill, decodeOptions())
	if err != nil {
		return err
	}
	return printResult(out, result)
}

func runSentences(ctx context.Context, out io.Writer, in io.Reader) error {
	return goais.ScanSentences(ctx, in, decodeOptions(), func(r goais.Result) error {
		if r.Err != nil {
			if !cfg.SkipErrors {
				return fmt.Errorf("line %d: %w", r.Line, r.Err)
			}
			logrus.WithError(r.Err).WithFields(logrus.Fields{"line": r.Line, "payload": r.Payload, "fill": r.FillBits}).Warn("skipping sentence")
			return nil
		}
		return printResult(out, r)
	})
}

func printResult(out io.Writer, r goais.Result) error {
	text, err := r.JSON(cfg.JSONIndent)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func runEncode(out io.Writer, text string, width int) error {
	if width == 0 {
		width = len(text) * 6
	}
	var w bitstream.Writer
	if err := bitstream.EncodeText(&w, text, width); err != nil {
		return err
	}
	payload, fill := armor.Armor(w.Buffer())
	_, err := fmt.Fprintf(out, "%s %d\n", payload, fill)
	return err
}
