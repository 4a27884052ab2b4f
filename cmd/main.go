package main

import (
	"context"
	"os"
	"os/signal"
	"psychrometric-calculator/internal/harness"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/syncromatics/go-kit/v2/log"
)

var (
	rootCmd = cobra.Command{
		Use:           "gpp",
		Short:         "calculate grains of moisture per pound of dry air",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, args []string) error {
			settings := &harness.Settings{}
			err := viper.Unmarshal(settings)
			if err != nil {
				return errors.Wrap(err, "failed to parse settings")
			}
			log.Debug("using settings",
				"settings", settings)

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return harness.Execute(ctx, settings, os.Stdout)
		},
	}
)

func init() {
	harness.ConfigureFlags(rootCmd.Flags())

	viper.SetEnvPrefix("GPP")
	replacer := strings.NewReplacer("-", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv()
	viper.BindPFlags(rootCmd.Flags())
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		log.Fatal("failed to terminate cleanly",
			"err", err)
	}
}
