package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gutkit/gut/pkg/static"
	"github.com/spf13/viper"
)

// NewConfig builds the toolkit configuration from defaults, an optional
// config file under the home directory, and GUT_* environment variables.
// GUT_HOME overrides the detected home directory. A missing config file
// is not an error; anything else in it is.
func NewConfig() *Configuration {
	home := os.Getenv("GUT_HOME")

	if home == "" {
		var err error

		home, err = os.UserHomeDir()

		if err != nil {
			home = "."
		}
	}

	configDir := filepath.Join(home, fmt.Sprintf(".%s", static.ROOTDIR))

	v := viper.New()
	v.SetDefault("log", static.DEFAULT_LOG_LEVEL)
	v.SetDefault("color", static.COLOR_AUTO)

	v.SetConfigName(static.CONFIGDIR)
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("GUT")
	v.AutomaticEnv()
	_ = v.BindEnv("log", "GUT_LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: config file ignored: %s\n", err)
		}
	}

	return &Configuration{
		Environment: &Environment{
			Home:            home,
			ConfigDirectory: configDir,
		},
		LogLevel:  v.GetString("log"),
		ColorMode: v.GetString("color"),
	}
}
