package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beccau/fix-mode/internal/cmd/root"
	"github.com/beccau/fix-mode/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "fix-mode [logfile]",
	Short: "Decode raw FIX log lines into readable field and value names",
	Args:  cobra.MaximumNArgs(1),
	Run:   root.Run,
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().Bool("no-tui", false, "Run without TUI (print decoded messages)")
	rootCmd.PersistentFlags().Bool("mock", false, "Decode synthetic FIX traffic instead of a log file")
	rootCmd.PersistentFlags().Bool("follow", false, "Keep reading the log file for appended lines")
	rootCmd.PersistentFlags().StringSlice("dict", nil, "Data dictionary as VERSION=path (repeatable)")
	rootCmd.PersistentFlags().String("dict-dir", "", "Directory of VERSION.xml data dictionaries")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("no-tui", rootCmd.PersistentFlags().Lookup("no-tui"))
	viper.BindPFlag("mock", rootCmd.PersistentFlags().Lookup("mock"))
	viper.BindPFlag("follow", rootCmd.PersistentFlags().Lookup("follow"))
	viper.BindPFlag("dict", rootCmd.PersistentFlags().Lookup("dict"))
	viper.BindPFlag("dict-dir", rootCmd.PersistentFlags().Lookup("dict-dir"))

	// Set default values
	viper.SetDefault("debug", false)
	viper.SetDefault("no-tui", false)
	viper.SetDefault("mock", false)
	viper.SetDefault("follow", false)
}

func initLogger() {
	log.InitLogger(viper.GetBool("debug"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
