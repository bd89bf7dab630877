package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName    = "config"
	ConfigURLFlagName = "config-url"
	LogLevelFlagName  = "log-level"
)

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "config.yaml", "Path to config file or \"env\" to read from environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(ConfigURLFlagName, "", "URL of shared solver configuration")
	_ = viper.BindPFlag(ConfigURLFlagName, rootCMD.PersistentFlags().Lookup(ConfigURLFlagName))

	rootCMD.PersistentFlags().String(LogLevelFlagName, "", "Overrides the configured log level")
	_ = viper.BindPFlag(LogLevelFlagName, rootCMD.PersistentFlags().Lookup(LogLevelFlagName))
}
