// Package closetcfg loads a closet definition from YAML into a
// closet.Builder, and resolves where that definition file lives (--closet
// flag, $CLOSETCTL_CLOSET, or the "closet" key of a config file read via
// --config) via spf13/viper.
//
// The YAML document shape is intentionally flat:
//
//	families:
//	  - name: shirts
//	    items: [blue, red]
//	  - name: pants
//	    items: [jeans, slacks]
//	exclusions:
//	  - [blue, jeans]
//	inclusions:
//	  - selection: jeans
//	    inclusion: red
//
// Load never builds the Closet itself — the caller decides whether a
// validation failure is a reportable error (cmd/closetctl) or a programmer
// error (test fixtures, via closet.Builder.MustBuild).
package closetcfg
