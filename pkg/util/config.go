package util

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig loads config.yaml from ./data/ or, when path is given, from that file.
// environment variables always override file values.
func ReadConfig(path string) error {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		viper.SetConfigFile(filepath.Clean(path))
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./data/")
	}

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
