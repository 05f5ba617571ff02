package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/stepper/internal/binding"
	"github.com/muurk/stepper/internal/config"
	"github.com/muurk/stepper/internal/logging"
	"github.com/muurk/stepper/internal/stepper"
	"github.com/muurk/stepper/internal/ui"
)

// Override flags, applied on top of the defaults file
var (
	unit      string
	label     string
	step      int
	minimum   int
	maximum   int
	showAlert bool

	initialValue int
	locked       bool
	showGauge    bool
	force        bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&unit, "unit", "", "Unit suffix shown after the value (e.g. \"ms\")")
	flags.StringVar(&label, "label", "", "Caption shown above the control")
	flags.IntVar(&step, "step", 1, "Amount one tap adds or subtracts")
	flags.IntVar(&minimum, "min", 0, "Lowest allowed value")
	flags.IntVar(&maximum, "max", 100, "Highest allowed value")
	flags.BoolVar(&showAlert, "show-alert", false, "Show the alert when an unconfirmed edit is corrected")

	rootCmd.Flags().IntVar(&initialValue, "value", 0, "Starting value (default is the minimum, or 0 when in range)")
	rootCmd.Flags().BoolVar(&locked, "locked", false, "Refuse button taps except toggling between 0 and 1")
	rootCmd.Flags().BoolVar(&showGauge, "gauge", false, "Show a bar of the value's position in the range")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file without asking")
}

// resolveConfig loads the defaults file and applies the flags the user
// set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg = cfg.With(flagOptions(cmd)...)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// flagOptions turns the override flags the user set into options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var opts []config.Option
	flags := cmd.Flags()
	if flags.Changed("unit") {
		opts = append(opts, config.WithUnit(unit))
	}
	if flags.Changed("label") {
		opts = append(opts, config.WithLabel(label))
	}
	if flags.Changed("step") {
		opts = append(opts, config.WithStep(step))
	}
	if flags.Changed("min") {
		opts = append(opts, config.WithMinimum(minimum))
	}
	if flags.Changed("max") {
		opts = append(opts, config.WithMaximum(maximum))
	}
	if flags.Changed("show-alert") {
		opts = append(opts, config.WithShowAlertOnAutoCorrect(showAlert))
	}
	return opts
}

func startValue(cmd *cobra.Command, cfg config.Config) (int, error) {
	if !cmd.Flags().Changed("value") {
		return cfg.Clamp(0), nil
	}
	if !cfg.Contains(initialValue) {
		return 0, fmt.Errorf("--value %d is outside [%d, %d]", initialValue, cfg.Minimum, cfg.Maximum)
	}
	return initialValue, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	start, err := startValue(cmd, cfg)
	if err != nil {
		return err
	}

	value := binding.NewInt(start)
	cancel := value.Subscribe(func(prev, next int) {
		logging.Debug("Binding changed", zap.Int("old", prev), zap.Int("new", next))
	})
	defer cancel()

	var check stepper.ActionCheck
	if locked {
		check = func() bool { return false }
	}

	model, err := newDemoModel(value, check, cfg, start, showGauge)
	if err != nil {
		return err
	}

	logging.Info("Starting editor",
		zap.Int("value", start),
		zap.Int("min", cfg.Minimum),
		zap.Int("max", cfg.Maximum),
		zap.Int("step", cfg.Step),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor error: %w", err)
	}
	if m, ok := final.(demoModel); ok {
		m.editor.Close()
	}

	fmt.Println(stepper.Format(value.Get(), cfg.Unit))
	return nil
}

// configCmd prints the resolved configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Display the configuration the editor would run with: the defaults
file (if any) with the override flags applied.`,
	Example: `  # Show the effective configuration
  stepper config

  # See what a narrower range looks like
  stepper config --min 10 --max 20 --unit ms`,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	source := configPath
	if source == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		source = path
		if _, err := os.Stat(path); err != nil {
			source = "built-in defaults"
		}
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader(ui.NewHeader("Stepper Configuration", "stepper config", configParams(cfg, source)...))
	return nil
}

func configParams(cfg config.Config, source string) []ui.Param {
	orNone := func(s string) string {
		if s == "" {
			return "(none)"
		}
		return s
	}
	return []ui.Param{
		{Key: "Source", Value: source},
		{Key: "Label", Value: orNone(cfg.Label)},
		{Key: "Unit", Value: orNone(cfg.Unit)},
		{Key: "Range", Value: fmt.Sprintf("%s .. %s", stepper.Format(cfg.Minimum, cfg.Unit), stepper.Format(cfg.Maximum, cfg.Unit))},
		{Key: "Step", Value: strconv.Itoa(cfg.Step)},
		{Key: "Buttons", Value: cfg.DecrementIcon.Glyph + " " + cfg.IncrementIcon.Glyph},
		{Key: "Edit controls", Value: cfg.CancelIcon.Glyph + " " + cfg.ConfirmIcon.Glyph},
		{Key: "Autocorrect", Value: strconv.FormatBool(cfg.ShowAlertOnAutoCorrect)},
	}
}

// configInitCmd writes the built-in defaults to a file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a defaults file",
	Long: `Write the built-in defaults, with any override flags applied, to the
defaults file so they can be edited by hand.`,
	Example: `  # Create the file in the user config directory
  stepper config init

  # Start from a percentage range
  stepper config init --unit % --max 100 --force`,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	// Start from built-in defaults, not whatever is already on disk.
	cfg := config.Default().With(flagOptions(cmd)...)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if _, err := os.Stat(path); err == nil && !force {
		if !ui.ConfirmOverwrite(cmd.InOrStdin(), cmd.OutOrStdout(), path) {
			return nil
		}
	}

	if err := cfg.Save(path); err != nil {
		return err
	}
	logging.Info("Wrote defaults file", zap.String("path", path))

	p.PrintSuccess("Defaults written", ui.Param{Key: "Path", Value: path})
	return nil
}
