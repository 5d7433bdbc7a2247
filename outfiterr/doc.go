// Package outfiterr formats any error from package closet's build-time
// taxonomy or package outfit's query-time taxonomy into a human-readable
// message for an external collaborator (cmd/closetctl). Core packages
// never format errors for display themselves — that's this package's one
// job, kept separate so diagram/boolean/closet/outfit stay free of
// presentation concerns (§7's "errors are values" contract).
package outfiterr
