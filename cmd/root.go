package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/haierkeys/link-store-service/internal/app"

	"github.com/spf13/cobra"
)

var frontendFiles fs.FS
var configDefault string
var rootCmd = &cobra.Command{
	Use:   "link-store",
	Short: app.Name,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpTemplate()
		cmd.Help()
	},
}

// Execute runs the root command
// frontend 需包含 templates/ 与 static/，c 为内嵌的默认配置
func Execute(frontend fs.FS, c string) {
	frontendFiles = frontend
	configDefault = c
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
