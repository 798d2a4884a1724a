package main

import (
	"fmt"
	"io"

	"github.com/JaimeStill/print-orders/internal/config"
	"github.com/JaimeStill/print-orders/internal/form"
	"github.com/JaimeStill/print-orders/internal/infrastructure"
	"github.com/JaimeStill/print-orders/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
	sizing     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "printorder",
		Short: "Price and submit print orders",
		Long: `printorder prices images for printing, submits orders to the storefront,
and lists submitted orders for staff.

Images are billed by the rounded square inch. Settings are read from
config.toml (plus config.<PRINT_ENV>.toml) and PRINT_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the configuration file (default config.toml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, or error")
	cmd.PersistentFlags().StringVar(&opts.sizing, "sizing", "", "Image sizing: remote or local")

	cmd.AddCommand(newQuoteCmd(opts))
	cmd.AddCommand(newSubmitCmd(opts))
	cmd.AddCommand(newOrdersCmd(opts))

	return cmd
}

// load builds the infrastructure. Flags win over files and environment.
func (o *rootOptions) load(logOut io.Writer) (*infrastructure.Infrastructure, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if o.logLevel != "" {
		level := logging.Level(o.logLevel)
		if err := level.Validate(); err != nil {
			return nil, err
		}
		cfg.Logging.Level = level
	}

	if o.sizing != "" {
		switch mode := config.Sizing(o.sizing); mode {
		case config.SizingLocal, config.SizingRemote:
			cfg.Client.Sizing = mode
		default:
			return nil, fmt.Errorf("invalid --sizing %q (must be remote or local)", o.sizing)
		}
	}

	return infrastructure.New(cfg, logOut)
}

// consoleNotifier prints notifications as single lines.
type consoleNotifier struct {
	w io.Writer
}

func (c consoleNotifier) Notify(n form.Notification) {
	fmt.Fprintf(c.w, "[%s] %s\n", n.Kind, n.Message)
}
