package registry

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/presstools/core/config"
	"github.com/presstools/core/errors"
	"github.com/presstools/core/shell"
)

// Command is the single capability every dispatchable operation implements.
// A command builds its specific invocation from its constructor-bound
// parameters and delegates to the shell facade.
type Command interface {
	Execute() (*shell.Result, error)
}

// Context bundles the collaborators shared by every command instance.
type Context struct {
	Shell  *shell.Shell
	Config *config.Config
	Log    *logrus.Entry
}

// Factory builds a command from the shared context and a parameter bag. The
// signature is uniform for every registered command: whether a command needs
// parameters is decided at registration time, not discovered at call time.
type Factory func(ctx *Context, params Params) (Command, error)

// Simple adapts a parameterless constructor to the Factory signature. Any
// supplied parameters are ignored, so callers may always pass a bag.
func Simple(fn func(ctx *Context) Command) Factory {
	return func(ctx *Context, _ Params) (Command, error) {
		return fn(ctx), nil
	}
}

// Registry maps command names to factories. It is populated once at startup
// by an explicit registration pass (the de facto plugin manifest) and
// read-only afterwards; registration and resolution must not overlap.
type Registry struct {
	log       *logrus.Entry
	factories map[string]Factory
}

// New creates an empty registry.
func New(log *logrus.Entry) *Registry {
	return &Registry{
		log:       log,
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under a case-sensitive name. Re-registering a name
// replaces the previous factory; last registration wins.
func (r *Registry) Register(name string, factory Factory) {
	if _, exists := r.factories[name]; exists {
		r.log.WithField("command", name).Warn("command re-registered, previous factory replaced")
	}
	r.factories[name] = factory
}

// Resolve looks up the factory for a name.
func (r *Registry) Resolve(name string) (Factory, bool) {
	factory, ok := r.factories[name]
	return factory, ok
}

// Has reports whether a name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns all registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create resolves a name and instantiates the command. An unknown name and a
// rejected parameter bag are both caller errors, reported synchronously and
// never retried. Every Create call produces a fresh instance.
func (r *Registry) Create(name string, ctx *Context, params Params) (Command, error) {
	factory, ok := r.Resolve(name)
	if !ok {
		return nil, errors.CommandUnknown(name)
	}
	return factory(ctx, params)
}
