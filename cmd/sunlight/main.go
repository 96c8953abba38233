package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChicagoDave/sunlight/internal/config"
)

func main() {
	v := config.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "sunlight",
		Short:        "Estimate daily sunlight windows for apartments in a row of buildings",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	if err := config.BindFlags(v, rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	env := &environment{viper: v, configFile: &configFile}
	rootCmd.AddCommand(validateCmd(env))
	rootCmd.AddCommand(windowCmd(env))
	rootCmd.AddCommand(reportCmd(env))
	rootCmd.AddCommand(dumpCmd(env))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// environment carries the settings shared by every subcommand.
type environment struct {
	viper      *viper.Viper
	configFile *string
}

func validateCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate neighborhood descriptions without computing any window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), env, args[0])
		},
	}
}

func windowCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "window [project-path] [neighborhood] [building] [floor]",
		Short: "Print the sunlight window of one apartment",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), env, args[0], args[1], args[2], args[3])
		},
	}
}

func reportCmd(env *environment) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "report [project-path] [neighborhood...]",
		Short: "Resolve every apartment and summarize sunlight per building",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), env, args[0], args[1:], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summaries as JSON")
	return cmd
}

func dumpCmd(env *environment) *cobra.Command {
	var resolve bool
	cmd := &cobra.Command{
		Use:   "dump [project-path]",
		Short: "Print the neighborhood graph as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.Context(), env, args[0], resolve)
		},
	}
	cmd.Flags().BoolVar(&resolve, "resolve", false, "resolve every apartment before dumping")
	return cmd
}
