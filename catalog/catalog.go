// Package catalog enumerates every dispatchable command. The explicit
// registration list below is the plugin manifest: nothing is discovered at
// runtime, and a command exists exactly when it has an entry here.
package catalog

import (
	"github.com/presstools/core/git"
	"github.com/presstools/core/registry"
	"github.com/presstools/core/wp"
)

// RegisterAll installs the full command catalogue. Called once at startup,
// before the first Create; the registry is read-only afterwards.
func RegisterAll(reg *registry.Registry) {
	wp.Register(reg)
	git.Register(reg)
}
