// File: config.go
// Role: resolves the closet-definition file path from cobra flags,
// $CLOSETCTL_CLOSET, or a config file, via spf13/viper's standard
// precedence (explicit flag > env var > config file > default). Wired the
// way openconfig-ygot's gnmidiff/cmd/root.go wires viper alongside cobra,
// down to the SetConfigFile/ReadInConfig pair that actually reads the file.
package closetcfg

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const closetPathKey = "closet"

// NewResolver returns a *viper.Viper pre-bound to $CLOSETCTL_CLOSET and
// ready to bind a --closet pflag via BindClosetFlag. cmd/closetctl owns the
// surrounding cobra command; this package owns only the resolution policy.
func NewResolver() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CLOSETCTL")
	v.AutomaticEnv()
	return v
}

// BindClosetFlag binds the --closet pflag into v, so an explicit flag value
// outranks the environment variable and any config file, per viper's
// standard precedence.
func BindClosetFlag(v *viper.Viper, flags *pflag.FlagSet) error {
	return v.BindPFlag(closetPathKey, flags.Lookup("closet"))
}

// LoadConfigFile points v at path and reads it in, the way
// gnmidiff/cmd/root.go reads its --config_file before any flag lookup. A
// config file may set "closet" as a fallback, below the --closet flag and
// $CLOSETCTL_CLOSET in viper's precedence. Call this, if at all, before
// resolving the closet path — it is a no-op to call it never, since no
// config file is required.
func LoadConfigFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("closetcfg: reading config file %s: %w", path, err)
	}
	return nil
}

// ResolveClosetPath returns the configured closet-definition file path, or
// ErrNoClosetFile if none of v's sources set one.
func ResolveClosetPath(v *viper.Viper) (string, error) {
	path := v.GetString(closetPathKey)
	if path == "" {
		return "", ErrNoClosetFile
	}
	return path, nil
}
