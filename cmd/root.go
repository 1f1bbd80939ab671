package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "screenlog",
	Short: "screenlog cli",
	Long:  `screenlog cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	// a .env next to the binary overrides the shell environment, matching the
	// deployment tooling
	_ = godotenv.Overload()

	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("SCREENLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apiKey", "")

	viper.SetDefault("auth.scheme", "https")
	viper.SetDefault("auth.host", "")
	viper.SetDefault("auth.apiKey", "")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.frontendDir", "./frontend")

	viper.SetDefault("storage.filePath", "screenlog.db")
}
