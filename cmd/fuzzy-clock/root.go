package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	fuzzyclock "github.com/goliatone/go-fuzzyclock"
	"github.com/goliatone/go-fuzzyclock/internal/config"
	applog "github.com/goliatone/go-fuzzyclock/internal/log"
)

const flagAt = "at"

type app struct {
	source    fuzzyclock.TimeSource
	newLogger func(debug bool) (*zap.Logger, error)
	dotenv    []string
}

func defaultApp() *app {
	return &app{
		source:    fuzzyclock.SystemClock{},
		newLogger: applog.New,
	}
}

func newRootCommand(a *app) *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:           "fuzzy-clock",
		Short:         "Tell the time the way people say it",
		Long:          "fuzzy-clock prints the current time as a phrase in English, Spanish or Portuguese, from exact readings to the part of the day.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.LoadDotEnv(a.dotenv...)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, v)
		},
	}

	persistent := cmd.PersistentFlags()
	persistent.String(config.KeyConfig, "", "path to a YAML, TOML or JSON settings file")
	persistent.Bool(config.KeyDebug, false, "write debug logs to stderr")

	flags := cmd.Flags()
	flags.StringP(config.KeyLanguage, "l", config.DefaultLanguage, "language: english|en, spanish|es|español, portuguese|pt|português")
	flags.StringP(config.KeyFuzziness, "f", config.DefaultFuzziness, "fuzziness: exact, fuzzy, very-fuzzy, max-fuzzy")
	flags.Bool(config.Key24Hour, false, "use the 24-hour clock")
	flags.BoolP(config.KeyIncludeUnits, "u", false, "include hour and minute unit words")
	flags.String(flagAt, "", "translate HH:MM instead of the current time")

	if err := config.BindFlags(v, persistent, flags); err != nil {
		panic(err)
	}

	cmd.AddCommand(newLanguagesCommand())

	return cmd
}

func (a *app) run(cmd *cobra.Command, v *viper.Viper) error {
	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := a.newLogger(settings.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("settings resolved",
		zap.String("language", settings.Language),
		zap.String("fuzziness", settings.Fuzziness),
		zap.Bool("24_hour", settings.Use24Hour),
		zap.Bool("include_units", settings.IncludeUnits),
		zap.String("config_file", settings.ConfigFile),
	)

	opts := append(settings.ClockOptions(),
		fuzzyclock.WithTimeSource(a.source),
		fuzzyclock.WithTranslatorHooks(applog.TranslationHook(logger)),
	)

	cfg, err := fuzzyclock.NewConfig(opts...)
	if err != nil {
		return err
	}

	clock, err := cfg.BuildClock()
	if err != nil {
		return err
	}

	var phrase string
	if at, _ := cmd.Flags().GetString(flagAt); strings.TrimSpace(at) != "" {
		snapshot, err := fuzzyclock.ParseClock(at)
		if err != nil {
			return err
		}
		phrase = clock.Snapshot(snapshot)
	} else {
		phrase = clock.Tell()
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), phrase)
	return err
}
