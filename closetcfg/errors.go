package closetcfg

import (
	"errors"
	"fmt"
)

// ErrNoClosetFile indicates that viper resolution found no closet
// definition path from any source (--closet flag, $CLOSETCTL_CLOSET, or the
// "closet" key of a --config file).
var ErrNoClosetFile = errors.New("closetcfg: no closet definition file configured")

// ErrMalformedDocument indicates the YAML document could not be read or
// parsed, or parsed but has a shape that gopkg.in/yaml.v3 itself doesn't
// reject (e.g. an inclusion entry missing "selection" or "inclusion").
var ErrMalformedDocument = errors.New("closetcfg: malformed closet document")

// malformedf wraps ErrMalformedDocument with formatted detail, so callers
// can branch with errors.Is(err, ErrMalformedDocument) while still getting
// a specific message.
func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrMalformedDocument}, args...)...)
}
