package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/saasboard/internal/app"
	"github.com/zhubert/saasboard/internal/clipboard"
	"github.com/zhubert/saasboard/internal/config"
	"github.com/zhubert/saasboard/internal/fixtures"
	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	dataPath              string
	themeName             string
	lightMode             bool
	toastDuration         time.Duration
	breakpoint            int
	locale                string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "saasboard",
	Short: "A SaaS dashboard in your terminal",
	Long: `saasboard renders a SaaS admin dashboard in the terminal: stats, recent
activity, system alerts and a searchable, sortable projects table behind a
simulated sign-in. All data comes from fixtures; nothing leaves the machine.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Preferences file (default ~/.saasboard/config.json)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "YAML fixtures file to use instead of the built-in data")

	rootCmd.Flags().StringVar(&themeName, "theme", "", fmt.Sprintf("Color theme %v", ui.ThemeNames()))
	rootCmd.Flags().BoolVar(&lightMode, "light", false, "Start in light mode")
	rootCmd.Flags().DurationVar(&toastDuration, "toast-duration", 0, "How long toasts stay visible; 0 or less keeps them until dismissed")
	rootCmd.Flags().IntVar(&breakpoint, "breakpoint", 0, "Terminal width below which the mobile layout is used")
	rootCmd.Flags().StringVar(&locale, "locale", "", "Locale for sorting project names, e.g. en or de")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("saasboard %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("saasboard %s\n", version)
}

// loadConfig reads the preferences file named by --config, or the default.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// buildOptions turns the flags into app options. Only flags the user set
// override the preferences file.
func buildOptions(cmd *cobra.Command, cfg *config.Config, data *fixtures.Dashboard) (app.Options, error) {
	opts := app.Options{
		Config:   cfg,
		Data:     data,
		Version:  version,
		CopyText: clipboard.WriteText,
		Theme:    themeName,
		Light:    lightMode,
		Locale:   locale,
	}

	if themeName != "" {
		if _, ok := ui.BuiltinThemes[ui.ThemeName(themeName)]; !ok {
			return opts, fmt.Errorf("unknown theme %q (available: %v)", themeName, ui.ThemeNames())
		}
	}
	if cmd.Flags().Changed("toast-duration") {
		d := toastDuration
		opts.ToastDuration = &d
	}
	if cmd.Flags().Changed("breakpoint") {
		if breakpoint < config.MinBreakpoint {
			return opts, fmt.Errorf("--breakpoint must be at least %d", config.MinBreakpoint)
		}
		opts.Breakpoint = breakpoint
	}
	return opts, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	data, err := fixtures.Load(dataPath)
	if err != nil {
		return fmt.Errorf("error loading fixtures: %w", err)
	}

	opts, err := buildOptions(cmd, cfg, data)
	if err != nil {
		return err
	}

	defer logger.Close()

	m := app.New(opts)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
