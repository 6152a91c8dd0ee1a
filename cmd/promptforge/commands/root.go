// Package commands implements the promptforge CLI. The root command
// runs the full pipeline: load template, resolve variables, render,
// optionally simulate a response, format, and optionally append to the
// history log. One file per subcommand.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/teranos/promptforge/config"
	"github.com/teranos/promptforge/display"
	"github.com/teranos/promptforge/errors"
	"github.com/teranos/promptforge/history"
	"github.com/teranos/promptforge/logger"
	"github.com/teranos/promptforge/simulate"
	"github.com/teranos/promptforge/template"
	"github.com/teranos/promptforge/tokens"
	"github.com/teranos/promptforge/vars"
)

// saveDefault is the NoOptDefVal marker for --save given without a
// value; it resolves to the configured history path at run time.
const saveDefault = "default"

var (
	varFlags       []string
	varsFile       string
	inlineTemplate string
	interactive    bool
	simulateFlag   bool
	rulesFile      string
	formatFlag     string
	showTokens     bool
	saveFlag       string
	checkFlag      bool
	dryRun         bool
	jsonLogs       bool
)

// RootCmd is the promptforge root command; running it with a template
// executes the render pipeline.
var RootCmd = &cobra.Command{
	Use:   "promptforge [TEMPLATE_FILE]",
	Short: "Craft and test AI prompts locally",
	Long: `promptforge - Craft and test AI prompt templates locally.

Templates reference variables with {{name}} or {{name|default="value"}}.
Values come from --var flags, a JSON --vars file, template defaults, and
(with --interactive) the terminal, in that priority order.

Examples:
  promptforge prompt.txt --var role=expert
  echo 'You are a {{role}}.' | promptforge --var role=reviewer
  promptforge --template 'Task: {{task}}' --var 'task=debug code' --simulate
  promptforge prompt.txt --check
  promptforge prompt.txt --var role=expert --save --format markdown`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		cfg, err := config.Load()
		if err == nil && cfg.Log.JSON {
			jsonLogs = true
		}
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	RunE: runForge,
}

func init() {
	flags := RootCmd.Flags()
	flags.StringArrayVarP(&varFlags, "var", "V", nil, "Variable as KEY=VALUE (repeatable)")
	flags.StringVar(&varsFile, "vars", "", "JSON variables file")
	flags.StringVarP(&inlineTemplate, "template", "t", "", "Inline template text")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Prompt for missing variables")
	flags.BoolVarP(&simulateFlag, "simulate", "s", false, "Simulate an AI response")
	flags.StringVar(&rulesFile, "rules", "", "Custom simulation rules file (replaces builtins)")
	flags.StringVarP(&formatFlag, "format", "f", "", "Output format (text/markdown/json)")
	flags.BoolVar(&showTokens, "show-tokens", false, "Include a token estimate")
	flags.StringVar(&saveFlag, "save", "", "Append to history log (optional FILE via --save=FILE)")
	flags.Lookup("save").NoOptDefVal = saveDefault
	flags.BoolVarP(&checkFlag, "check", "c", false, "List template variables and exit")
	flags.BoolVar(&dryRun, "dry-run", false, "Preview the rendered prompt only")

	RootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	RootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")

	RootCmd.AddCommand(VersionCmd)
	RootCmd.AddCommand(ConfigCmd)
}

func runForge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	applyConfigDefaults(cmd, cfg)

	templateFile := ""
	if len(args) == 1 {
		templateFile = args[0]
	}
	if err := validateFlags(cmd, templateFile); err != nil {
		return err
	}

	text, err := loadTemplate(templateFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	tmpl := template.Parse(text)
	placeholders := tmpl.Placeholders()
	logger.Debugw("Parsed template", "length", len(text), "placeholders", len(placeholders))

	if checkFlag {
		fmt.Fprint(cmd.OutOrStdout(), display.CheckListing(placeholders))
		return nil
	}

	resolution, err := resolveVariables(cmd, placeholders)
	if err != nil {
		return err
	}
	display.WarnUnused(resolution.Unused)

	rendered := tmpl.Render(resolution.Values)

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "=== DRY RUN ===\n"+rendered)
		return nil
	}

	result := display.Result{
		Prompt:    rendered,
		Timestamp: time.Now(),
	}
	if showTokens {
		result.Tokens = tokens.Estimate(rendered)
	}
	if simulateFlag {
		rules, err := loadRules()
		if err != nil {
			return err
		}
		response, ok := rules.Respond(rendered, resolution.Values)
		if !ok {
			response = "No matching response."
		}
		result.Response = response
	}

	out, err := display.Format(formatFlag, result)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if cmd.Flags().Changed("save") {
		return saveToHistory(cfg, result)
	}
	return nil
}

// applyConfigDefaults lets the config file fill in flags the user did
// not set explicitly. Flags always win over config.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("format") {
		formatFlag = cfg.Output.Format
	}
	if formatFlag == "" {
		formatFlag = display.FormatText
	}
	if !cmd.Flags().Changed("show-tokens") && cfg.Output.ShowTokens {
		showTokens = true
	}
	if rulesFile == "" {
		rulesFile = cfg.Rules.Path
	}
}

func validateFlags(cmd *cobra.Command, templateFile string) error {
	if inlineTemplate != "" && templateFile != "" {
		return errors.New("cannot specify both a template file and --template")
	}
	if checkFlag && (simulateFlag || cmd.Flags().Changed("save")) {
		return errors.New("cannot combine --check with --simulate or --save")
	}
	return nil
}

// loadTemplate obtains template text from the inline flag, a file, or
// piped stdin, in that order.
func loadTemplate(templateFile string, stdin io.Reader) (string, error) {
	if inlineTemplate != "" {
		return inlineTemplate, nil
	}
	if templateFile != "" {
		data, err := os.ReadFile(templateFile)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read template %s", templateFile)
		}
		return string(data), nil
	}

	// Reading a template from an interactive terminal would just hang.
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", errors.WithHint(errors.ErrMissingTemplate,
			"pass a template file, --template TEXT, or pipe text on stdin")
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read template from stdin")
	}
	return string(data), nil
}

func resolveVariables(cmd *cobra.Command, placeholders []template.Placeholder) (*vars.Resolution, error) {
	cliVars, err := vars.ParseAssignments(varFlags)
	if err != nil {
		return nil, err
	}

	var fileVars map[string]string
	if varsFile != "" {
		fileVars, err = vars.LoadFile(varsFile)
		if err != nil {
			return nil, err
		}
	}

	resolver := &vars.Resolver{
		CLI:  cliVars,
		File: fileVars,
	}
	if interactive {
		resolver.Prompter = terminalPrompter(cmd.InOrStdin())
	}

	return resolver.Resolve(placeholders)
}

// loadRules returns the active rule set: a custom file fully replaces
// the builtins when configured. Pattern compilation happens here, so a
// bad regex fails the run before any output.
func loadRules() (simulate.RuleSet, error) {
	if rulesFile != "" {
		return simulate.Load(rulesFile)
	}
	return simulate.Builtin(), nil
}

func saveToHistory(cfg *config.Config, result display.Result) error {
	path := saveFlag
	if path == saveDefault {
		path = cfg.History.Path
	}

	written, err := history.Append(path, history.Entry{
		Prompt:    result.Prompt,
		Response:  result.Response,
		Timestamp: result.Timestamp,
	})
	if err != nil {
		return err
	}
	display.NoticeSaved(written)
	return nil
}
