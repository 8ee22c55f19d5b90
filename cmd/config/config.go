package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	awskitconfig "github.com/BerryBytes/awskit/internal/config"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type Dependencies struct {
	Session *session.Session
}

type setter func(f *awskitconfig.FileConfig, value string) error

func stringSetter(field func(f *awskitconfig.FileConfig) *string) setter {
	return func(f *awskitconfig.FileConfig, value string) error {
		*field(f) = value
		return nil
	}
}

func secondsSetter(field func(f *awskitconfig.FileConfig) *int) setter {
	return func(f *awskitconfig.FileConfig, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("expected a non-negative number of seconds, got %q", value)
		}
		*field(f) = n
		return nil
	}
}

var setters = map[string]setter{
	"profile":                    stringSetter(func(f *awskitconfig.FileConfig) *string { return &f.Profile }),
	"region":                     stringSetter(func(f *awskitconfig.FileConfig) *string { return &f.Region }),
	"cacheDir":                   stringSetter(func(f *awskitconfig.FileConfig) *string { return &f.CacheDir }),
	"athena.workGroup":           stringSetter(func(f *awskitconfig.FileConfig) *string { return &f.Athena.WorkGroup }),
	"athena.catalog":             stringSetter(func(f *awskitconfig.FileConfig) *string { return &f.Athena.Catalog }),
	"athena.database":            stringSetter(func(f *awskitconfig.FileConfig) *string { return &f.Athena.Database }),
	"athena.resultBucket":        stringSetter(func(f *awskitconfig.FileConfig) *string { return &f.Athena.ResultBucket }),
	"athena.resultPrefix":        stringSetter(func(f *awskitconfig.FileConfig) *string { return &f.Athena.ResultPrefix }),
	"athena.pollIntervalSeconds": secondsSetter(func(f *awskitconfig.FileConfig) *int { return &f.Athena.PollIntervalSeconds }),
	"athena.timeoutSeconds":      secondsSetter(func(f *awskitconfig.FileConfig) *int { return &f.Athena.TimeoutSeconds }),
}

// Keys lists the settable keys in order.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func NewConfigCommands(deps Dependencies) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the awskit defaults in ~/.config/awskit",
	}
	configCmd.AddCommand(showCmd(deps))
	configCmd.AddCommand(setCmd(deps))
	return configCmd
}

func showCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the config file content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := deps.Session.File
			if file == nil {
				file = &awskitconfig.FileConfig{}
			}
			data, err := yaml.Marshal(file)
			if err != nil {
				return fmt.Errorf("failed to marshal config to YAML: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func setCmd(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a default and save it",
		Long:  "Set a default and save it to config.yaml. Keys: " + strings.Join(Keys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, ok := setters[args[0]]
			if !ok {
				return fmt.Errorf("unknown key %q, expected one of %s", args[0], strings.Join(Keys(), ", "))
			}

			cfg := deps.Session.Config
			if cfg == nil {
				var err error
				if cfg, err = awskitconfig.NewConfig(); err != nil {
					return err
				}
			}
			if cfg.File == nil {
				cfg.File = &awskitconfig.FileConfig{}
			}
			if err := set(cfg.File, args[1]); err != nil {
				return fmt.Errorf("invalid %s: %w", args[0], err)
			}
			if err := cfg.Save(); err != nil {
				return err
			}
			deps.Session.File = cfg.File
			deps.Session.Log.Infof("Saved %s in %s", args[0], cfg.ConfigDir)
			return nil
		},
	}
}
