package cmd

import (
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/outfitforge/closet/closet"
	"github.com/outfitforge/closet/closetcfg"
)

// loadClosetFromFlags resolves the --closet path (flag, $CLOSETCTL_CLOSET,
// or config file) and parses it into a validated Closet.
func loadClosetFromFlags() (*closet.Closet, error) {
	path, err := closetcfg.ResolveClosetPath(resolver)
	if err != nil {
		return nil, err
	}

	glog.V(1).Infof("closetctl: loading closet definition from %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("closetctl: opening %s: %w", path, err)
	}
	defer f.Close()

	b, err := closetcfg.Load(f)
	if err != nil {
		return nil, err
	}

	return b.Build()
}
