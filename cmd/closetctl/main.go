// Command closetctl is a thin CLI wrapper exercising the closet/outfit
// engine end to end: build validates a closet definition, complete resolves
// an outfit from flags, enumerate lists every satisfying outfit. It has no
// bearing on core package semantics — same relationship the teacher's
// examples/ package has to core/flow/dfs.
package main

import (
	"os"

	"github.com/golang/glog"

	"github.com/outfitforge/closet/cmd/closetctl/cmd"
)

func main() {
	defer glog.Flush()
	if err := cmd.Execute(); err != nil {
		glog.Errorf("closetctl: %v", err)
		os.Exit(1)
	}
}
