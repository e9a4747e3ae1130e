package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/mensa/internal/logger"
	"github.com/jmylchreest/mensa/internal/output"
	"github.com/jmylchreest/mensa/internal/prompt"
	"github.com/jmylchreest/mensa/pkg/fetcher"
	"github.com/jmylchreest/mensa/pkg/mensa"
	"github.com/jmylchreest/mensa/pkg/menu"
)

const (
	questionEnglish = "Ausgabe auf englisch? / Output in english?"
	questionToday   = "Nur heute anzeigen? / Show today only?"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the weekly or today's menu",
	Long: `Fetch the menu page and print the dishes.

Without --english or --today (and without a language/today setting in the
config file) the command asks for both, unless --no-prompt is given.

Examples:
  mensa show
  mensa show -e -t
  mensa show --no-prompt --format table
  mensa show --format json -o menu.json`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	flags := showCmd.Flags()

	// Selection
	flags.BoolP("english", "e", false, "print English dish names")
	flags.BoolP("today", "t", false, "print today's menu only")
	flags.Bool("no-prompt", false, "never ask, use flags and config only")

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "text", "output format: "+strings.Join(output.Formats(), ", "))
	flags.Bool("compact", false, "write JSON on a single line")

	// Fetch settings
	flags.String("source-url", mensa.DefaultSourceURL, "menu page URL")
	flags.String("fetch-mode", "static", "fetch mode: static, dynamic, auto")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.String("user-agent", "", "HTTP user agent (default: desktop Chrome)")
	flags.String("max-body-size", "0", "max page size (e.g., 2MB, 0=unlimited)")
	flags.StringToString("header", nil, "extra request header (e.g., --header Accept-Language=de-DE)")

	// Parsing settings
	flags.String("layout", "auto", "dish layout: auto, simple, positional")
	flags.String("timezone", mensa.DefaultTimezone, "timezone used to determine today")

	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("compact", flags.Lookup("compact"))
	_ = viper.BindPFlag("headers", flags.Lookup("header"))
	_ = viper.BindPFlag("source_url", flags.Lookup("source-url"))
	_ = viper.BindPFlag("fetch_mode", flags.Lookup("fetch-mode"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("user_agent", flags.Lookup("user-agent"))
	_ = viper.BindPFlag("max_body_size", flags.Lookup("max-body-size"))
	_ = viper.BindPFlag("layout", flags.Lookup("layout"))
	_ = viper.BindPFlag("timezone", flags.Lookup("timezone"))
}

// selection is what the user wants to see.
type selection struct {
	lang  menu.Language
	today bool
}

func runShow(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts, err := clientOptions()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	noPrompt, _ := cmd.Flags().GetBool("no-prompt")
	var p *prompt.Prompter
	if !noPrompt {
		p = prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	sel, err := resolveSelection(cmd, p)
	if err != nil {
		return err
	}
	logger.Debug("selection", "language", sel.lang, "today", sel.today)

	client, err := mensa.New(opts...)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		return err
	}
	defer func() { _ = client.Close() }()

	plan, err := client.Build(ctx)
	if err != nil {
		logger.Error("failed to read menu", "url", viper.GetString("source_url"), "error", err)
		return err
	}
	logger.Info("menu read", "days", plan.Len())

	// Setup output
	var out io.Writer = cmd.OutOrStdout()
	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		f, err := os.Create(outPath) //#nosec G304 -- CLI tool writes to user-specified output file
		if err != nil {
			logger.Error("failed to create output file", "path", outPath, "error", err)
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	format := output.Format(strings.ToLower(viper.GetString("format")))
	writer, err := output.NewWriter(out, format, writerOptions(sel.lang)...)
	if err != nil {
		logger.Error("failed to create output writer", "format", format, "error", err)
		return err
	}

	days := plan.Days()
	if sel.today {
		day, ok := client.Today()
		switch {
		case ok:
			days = []menu.DayMenu{day}
		case format == output.FormatText || format == output.FormatTable || format == "":
			_, err := fmt.Fprintln(out, menu.NothingToday(sel.lang))
			return err
		default:
			days = nil
		}
	}

	if err := writer.WriteAll(days); err != nil {
		logger.Error("failed to write output", "error", err)
		return err
	}
	return writer.Close()
}

// clientOptions turns flags, environment and config file into client options.
func clientOptions() ([]mensa.Option, error) {
	opts := []mensa.Option{
		mensa.WithSourceURL(viper.GetString("source_url")),
		mensa.WithFetchMode(fetcher.Mode(viper.GetString("fetch_mode"))),
		mensa.WithTimeout(viper.GetDuration("timeout")),
		mensa.WithUserAgent(viper.GetString("user_agent")),
	}

	if headers := viper.GetStringMapString("headers"); len(headers) > 0 {
		opts = append(opts, mensa.WithHeaders(headers))
	}

	if s := strings.TrimSpace(viper.GetString("max_body_size")); s != "" && s != "0" {
		n, err := humanize.ParseBytes(s)
		if err != nil {
			return nil, fmt.Errorf("invalid max-body-size %q: %w", s, err)
		}
		opts = append(opts, mensa.WithMaxBodySize(int(n)))
	}

	shapes, ok := menu.ParseShape(viper.GetString("layout"))
	if !ok {
		return nil, fmt.Errorf("unknown layout: %s (use auto, simple or positional)", viper.GetString("layout"))
	}
	opts = append(opts, mensa.WithShapes(shapes...))

	loc, err := mensa.LoadLocation(viper.GetString("timezone"))
	if err != nil {
		return nil, err
	}
	opts = append(opts, mensa.WithLocation(loc))

	classes := menu.DefaultClasses()
	if viper.IsSet("classes") {
		if err := viper.UnmarshalKey("classes", &classes); err != nil {
			return nil, fmt.Errorf("invalid classes: %w", err)
		}
	}
	opts = append(opts, mensa.WithClasses(classes))

	return opts, nil
}

func writerOptions(lang menu.Language) []output.WriterOption {
	return []output.WriterOption{
		output.WithLanguage(lang),
		output.WithPretty(!viper.GetBool("compact")),
	}
}

// resolveSelection decides language and scope. Explicit flags win, then
// config values, then the prompter (if any). Without either the whole week
// is printed in German.
func resolveSelection(cmd *cobra.Command, p *prompt.Prompter) (selection, error) {
	var sel selection
	flags := cmd.Flags()

	switch {
	case flags.Changed("english"):
		english, _ := flags.GetBool("english")
		if english {
			sel.lang = menu.English
		}
	case viper.IsSet("language"):
		lang, err := menu.ParseLanguage(viper.GetString("language"))
		if err != nil {
			return sel, err
		}
		sel.lang = lang
	case p != nil:
		english, err := p.YesNo(questionEnglish)
		if err != nil {
			return sel, err
		}
		if english {
			sel.lang = menu.English
		}
	}

	switch {
	case flags.Changed("today"):
		sel.today, _ = flags.GetBool("today")
	case viper.IsSet("today"):
		sel.today = viper.GetBool("today")
	case p != nil:
		today, err := p.YesNo(questionToday)
		if err != nil {
			return sel, err
		}
		sel.today = today
	}

	return sel, nil
}
