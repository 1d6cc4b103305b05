package cmd

import (
	"context"
	"fmt"

	internalApp "github.com/haierkeys/link-store-service/internal/app"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Inspect the links.json source // 检查 links.json 来源",
}

func init() {
	var configFile string

	var checkCmd = &cobra.Command{
		Use:   "check [-c config_file]",
		Short: "Fetch links.json through the configured source and report the record count",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				found, ok := findConfig()
				if !ok {
					return errors.New("config file not found, pass one with -c")
				}
				configFile = found
			}

			cfg, realpath, err := internalApp.LoadConfig(configFile)
			if err != nil {
				return err
			}
			bootstrapLogger.Debug("config loaded", zap.String("path", realpath))

			a, err := internalApp.NewApp(cfg, zap.NewNop())
			if err != nil {
				return err
			}

			res, err := a.LinkService.Check(context.Background())
			if err != nil {
				return errors.Wrapf(err, "source %s", a.Source.Describe())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "source: %s\nrecords: %d\nbytes: %d\n", res.Source, res.Count, res.Size)
			return nil
		},
	}
	checkCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file")

	sourceCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(sourceCmd)
}
