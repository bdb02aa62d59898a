package config

import (
	"github.com/spf13/viper"
)

// Credential returns the first non-empty value among the named environment
// variables. Lookups happen on every call so a rotated secret is picked up
// without a restart.
func Credential(names ...string) (string, bool) {
	v := viper.New()
	v.AutomaticEnv()
	for _, name := range names {
		if value := v.GetString(name); value != "" {
			return value, true
		}
	}
	return "", false
}
