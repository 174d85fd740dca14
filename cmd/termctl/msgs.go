package termctl

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Terminal ANSI formatting support tool"
	MsgDemoShort       = "Show sample text under every effect and colour"
	MsgDetectShort     = "Report whether the standard streams accept ANSI formatting"
	MsgEnableShort     = "Switch the console into ANSI escape processing"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDetectReport     = "%s: %s (format %s)\n"
	MsgTerminal         = "terminal"
	MsgNotTerminal      = "not a terminal"
	MsgEnableOk         = "%s: ansi processing enabled\n"
	MsgEnableNotConsole = "%s: not a console, nothing to enable\n"
	MsgEnableFailed     = "%s: enabling failed (%s)\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrEnableFailed = "could not enable ansi processing on every console"
	MsgErrDemoJSON     = "demo output is a text rendering, json is not available"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagPipe    = "Stream to target (stdout, stderr or both)"
	MsgFlagOutput  = "Output format (auto, term, text or json)"
	MsgFlagQuiet   = "Print nothing and answer through the exit code"
	MsgFlagText    = "Sample text the demo renders"
)

// Long messages
const (
	MsgRootLong = `termctl shows what ANSI formatting a terminal can do and tells you
whether it is safe to use it. Each standard stream is inspected on its
own, so a script can colour its stderr progress while its stdout is
piped into a file.

On Windows it can also opt the console into virtual terminal
processing, which older consoles need before they interpret escape
sequences at all.`

	MsgDemoLong = `The 'demo' command prints a sample line under every effect and colour
the catalog defines: effects, basic and bright foreground and
background colours, misc and ideogram effects, bold-colour
combinations, alternate fonts, the 256-colour palette and a 24-bit
gradient.

When stdout is redirected the demo prints the same inventory as plain
text, without a single escape byte. Use --output to force either
rendering.`

	MsgDemoExample = `  # Render the full inventory
  termctl demo

  # Render with your own sample text
  termctl demo --text "grüß gott"

  # Force the plain rendering even on a terminal
  termctl demo --output text`

	MsgDetectLong = `The 'detect' command reports, per stream, whether it is attached to an
interactive terminal and which output format resolves for it. A stream
redirected to a file or pipe reports "not a terminal" and resolves to
plain text.

With --quiet nothing is printed: the exit code is 0 when every selected
stream is a terminal and 1 otherwise, like test -t.`

	MsgDetectExample = `  # Report both streams
  termctl detect

  # Machine-readable report for stdout only
  termctl detect --pipe stdout --output json

  # Use in a script, exit code only
  termctl detect --pipe stdout --quiet && echo "stdout is a tty"`

	MsgEnableLong = `The 'enable' command asks the operating system to interpret ANSI escape
sequences on the selected streams and reports the outcome per stream.
On Windows this sets the console's virtual terminal processing mode;
everywhere else there is nothing to enable and the command always
succeeds.

A stream that is not a console (redirected output) is a normal outcome,
not a failure; the exit code is nonzero only when the OS rejects a mode
query or update on a real console.`

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(termctl completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ termctl completion bash > /etc/bash_completion.d/termctl
  # macOS:
  $ termctl completion bash > /usr/local/etc/bash_completion.d/termctl

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ termctl completion zsh > "${fpath[1]}/_termctl"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ termctl completion fish | source
  # To load completions for each session, execute once:
  $ termctl completion fish > ~/.config/fish/completions/termctl.fish

PowerShell:
  PS> termctl completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> termctl completion powershell > termctl.ps1
  # and source this file from your PowerShell profile.`
)

// MsgUsageTemplate is cobra's usage template with the section headers
// run through the bold/boldUpper template functions, which degrade to
// plain text when stdout is not a terminal.
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{boldUpper "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

{{boldUpper "Additional help topics:"}}{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
