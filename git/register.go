package git

import (
	"github.com/presstools/core/errors"
	"github.com/presstools/core/registry"
	"github.com/presstools/core/shell"
)

type statusCommand struct{ g *Client }

func (c *statusCommand) Execute() (*shell.Result, error) { return c.g.Status() }

type pullCommand struct{ g *Client }

func (c *pullCommand) Execute() (*shell.Result, error) { return c.g.Pull() }

type pushCommand struct{ g *Client }

func (c *pushCommand) Execute() (*shell.Result, error) { return c.g.Push() }

type cloneCommand struct {
	g   *Client
	URL string `mapstructure:"url"`
}

func (c *cloneCommand) Execute() (*shell.Result, error) { return c.g.Clone(c.URL) }

type commitCommand struct {
	g       *Client
	Message string `mapstructure:"message"`
}

func (c *commitCommand) Execute() (*shell.Result, error) { return c.g.Commit(c.Message) }

type logCommand struct {
	g *Client
	N int `mapstructure:"n"`
}

func (c *logCommand) Execute() (*shell.Result, error) { return c.g.Log(c.N) }

// Register installs the git command catalogue into the registry.
func Register(reg *registry.Registry) {
	reg.Register("git-status", registry.Simple(func(ctx *registry.Context) registry.Command {
		return &statusCommand{g: NewClient(ctx.Shell, ctx.Config)}
	}))

	reg.Register("git-pull", registry.Simple(func(ctx *registry.Context) registry.Command {
		return &pullCommand{g: NewClient(ctx.Shell, ctx.Config)}
	}))

	reg.Register("git-push", registry.Simple(func(ctx *registry.Context) registry.Command {
		return &pushCommand{g: NewClient(ctx.Shell, ctx.Config)}
	}))

	reg.Register("git-clone", func(ctx *registry.Context, params registry.Params) (registry.Command, error) {
		cmd := &cloneCommand{g: NewClient(ctx.Shell, ctx.Config)}
		if err := params.Decode("git-clone", cmd); err != nil {
			return nil, err
		}
		if cmd.URL == "" {
			return nil, errors.ParamsInvalid("git-clone", "url")
		}
		return cmd, nil
	})

	reg.Register("git-commit", func(ctx *registry.Context, params registry.Params) (registry.Command, error) {
		cmd := &commitCommand{g: NewClient(ctx.Shell, ctx.Config)}
		if err := params.Decode("git-commit", cmd); err != nil {
			return nil, err
		}
		if cmd.Message == "" {
			return nil, errors.ParamsInvalid("git-commit", "message")
		}
		return cmd, nil
	})

	reg.Register("git-log", func(ctx *registry.Context, params registry.Params) (registry.Command, error) {
		cmd := &logCommand{g: NewClient(ctx.Shell, ctx.Config)}
		if err := params.Decode("git-log", cmd); err != nil {
			return nil, err
		}
		return cmd, nil
	})
}
