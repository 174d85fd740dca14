package termctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/termctl/internal/version"
	tcerrors "github.com/arthur-debert/termctl/pkg/errors"
	"github.com/arthur-debert/termctl/pkg/logging"
	"github.com/arthur-debert/termctl/pkg/terminal"
	"github.com/arthur-debert/termctl/pkg/ui"
)

// ErrNotTerminal is how `detect --quiet` answers "no": the command
// prints nothing and main turns this error into a bare exit code.
var ErrNotTerminal = errors.New("stream is not a terminal")

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "termctl",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			// Opt the console into escape processing before any command
			// writes formatted output
			enableConsoles()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newEnableCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// enableConsoles runs the enabler on both standard streams. A stream
// that is not a console is routine (redirected output) and logged at
// debug; a genuine OS failure is worth a warning. Either way the
// program carries on and just emits plain text.
func enableConsoles() {
	for _, p := range []terminal.Pipe{terminal.Stdout, terminal.Stderr} {
		err := terminal.EnableANSI(p)
		if err == nil {
			continue
		}
		if terminal.FailureCodeOf(err) == tcerrors.ErrHandleUnavailable {
			log.Debug().Str("pipe", p.String()).Msg("Stream is not a console, formatting stays off")
			continue
		}
		log.Warn().Err(err).Str("pipe", p.String()).Msg("Could not enable ANSI processing")
	}
}

// pipesForFlag resolves the --pipe flag value into the streams to act on.
func pipesForFlag(name string) ([]terminal.Pipe, error) {
	if name == "" || strings.EqualFold(name, "both") {
		return []terminal.Pipe{terminal.Stdout, terminal.Stderr}, nil
	}

	p, err := terminal.ParsePipe(name)
	if err != nil {
		return nil, err
	}
	return []terminal.Pipe{p}, nil
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "demo",
		Short:   MsgDemoShort,
		Long:    MsgDemoLong,
		Example: MsgDemoExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")
			outputName, _ := cmd.Flags().GetString("output")

			format, err := ui.ParseFormat(outputName)
			if err != nil {
				return err
			}
			if format == ui.FormatJSON {
				return tcerrors.New(tcerrors.ErrInvalidInput, MsgErrDemoJSON)
			}

			resolved := ui.Resolve(format, terminal.Stdout)
			log.Debug().
				Str("format", resolved.String()).
				Str("text", text).
				Msg("Rendering demo")

			renderDemo(cmd.OutOrStdout(), text, resolved == ui.FormatTerminal)
			return nil
		},
	}

	cmd.Flags().StringP("text", "t", demoSampleText, MsgFlagText)
	cmd.Flags().StringP("output", "o", "auto", MsgFlagOutput)

	return cmd
}

// pipeReport is one stream's detection result.
type pipeReport struct {
	Pipe     string `json:"pipe"`
	Terminal bool   `json:"terminal"`
	Format   string `json:"format"`
}

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "detect",
		Short:   MsgDetectShort,
		Long:    MsgDetectLong,
		Example: MsgDetectExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeName, _ := cmd.Flags().GetString("pipe")
			outputName, _ := cmd.Flags().GetString("output")
			quiet, _ := cmd.Flags().GetBool("quiet")

			pipes, err := pipesForFlag(pipeName)
			if err != nil {
				return err
			}
			format, err := ui.ParseFormat(outputName)
			if err != nil {
				return err
			}

			reports := make([]pipeReport, 0, len(pipes))
			for _, p := range pipes {
				r := pipeReport{
					Pipe:     p.String(),
					Terminal: terminal.IsTerminal(p),
					Format:   ui.DetectFormat(p).String(),
				}
				log.Debug().
					Str("pipe", r.Pipe).
					Bool("terminal", r.Terminal).
					Str("format", r.Format).
					Msg("Inspected pipe")
				reports = append(reports, r)
			}

			if quiet {
				for _, r := range reports {
					if !r.Terminal {
						return ErrNotTerminal
					}
				}
				return nil
			}

			if format == ui.FormatJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(reports)
			}

			for _, r := range reports {
				state := MsgNotTerminal
				if r.Terminal {
					state = MsgTerminal
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgDetectReport, r.Pipe, state, r.Format)
			}
			return nil
		},
	}

	cmd.Flags().StringP("pipe", "p", "both", MsgFlagPipe)
	cmd.Flags().StringP("output", "o", "text", MsgFlagOutput)
	cmd.Flags().BoolP("quiet", "q", false, MsgFlagQuiet)

	return cmd
}

func newEnableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enable",
		Short:   MsgEnableShort,
		Long:    MsgEnableLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeName, _ := cmd.Flags().GetString("pipe")

			pipes, err := pipesForFlag(pipeName)
			if err != nil {
				return err
			}

			var failed bool
			for _, p := range pipes {
				err := terminal.EnableANSI(p)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), MsgEnableOk, p)
				case terminal.FailureCodeOf(err) == tcerrors.ErrHandleUnavailable:
					// Redirected output has no console; nothing to report
					// beyond that.
					fmt.Fprintf(cmd.OutOrStdout(), MsgEnableNotConsole, p)
				default:
					failed = true
					log.Warn().Err(err).Str("pipe", p.String()).Msg("Enabling failed")
					fmt.Fprintf(cmd.OutOrStdout(), MsgEnableFailed, p, terminal.FailureCodeOf(err))
				}
			}

			if failed {
				return errors.New(MsgErrEnableFailed)
			}
			return nil
		},
	}

	cmd.Flags().StringP("pipe", "p", "both", MsgFlagPipe)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termctl version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
