package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
	"github.com/xyproto/env/v2"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("skolem")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "skolem",
	Short: "Lambda abstraction engine",
	Long: `Skolem turns code snippets, mathematical lambda notation and templated
phrases into untyped lambda calculus terms, then renders, beta-reduces
and analyzes them.`,
}

var (
	cfgFile   string
	verbosity int
	inputKind string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.skolem.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase logging verbosity")
	rootCmd.PersistentFlags().StringVarP(&inputKind, "kind", "k",
		env.Str("SKOLEM_KIND", ""),
		"input kind (code, mathematical, natural_language); empty means detect")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".skolem")
	}

	viper.SetEnvPrefix("skolem")
	viper.AutomaticEnv()
	viper.SetDefault("max-input-bytes", 64*1024)

	if err := viper.ReadInConfig(); err == nil {
		log.Infof("using config file: %s", viper.ConfigFileUsed())
	}

	commonlog.Configure(verbosity, nil)
}
