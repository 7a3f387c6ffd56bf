package main

import (
	"runtime/debug"

	"wsinit/config"
	"wsinit/logging"
	"wsinit/workspace"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "wsinit",
		Short:         "wsinit creates the standard workspace folders in the current directory",
		Long:          `wsinit creates the standard workspace folders in the current directory, leaving existing entries untouched`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetDefaultConfig()
			if err != nil {
				return err
			}

			logging.SetupLogger(cfg)

			_, err = workspace.NewInitializer(cfg, cmd.OutOrStdout()).Run()
			return err
		},
	}
}

func main() {
	defer func() {
		err := recover()

		if err != nil {
			log.Fatal().Msgf("Panic: %+v \n Stack Trace: %s", err, debug.Stack())
		}
	}()

	err := newRootCommand().Execute()
	if err != nil {
		log.Fatal().Err(err).Msg("workspace setup failed")
	}
}
