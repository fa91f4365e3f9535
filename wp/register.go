package wp

import (
	"github.com/presstools/core/errors"
	"github.com/presstools/core/registry"
)

// Register installs the WP-CLI command catalogue into the registry. The list
// is explicit on purpose: adding a command means adding one implementation
// type and one entry here.
func Register(reg *registry.Registry) {
	reg.Register("core-version", registry.Simple(func(ctx *registry.Context) registry.Command {
		return &CoreVersion{WP: NewClient(ctx.Shell, ctx.Config)}
	}))

	reg.Register("core-update", registry.Simple(func(ctx *registry.Context) registry.Command {
		return &CoreUpdate{WP: NewClient(ctx.Shell, ctx.Config)}
	}))

	reg.Register("plugin-list", registry.Simple(func(ctx *registry.Context) registry.Command {
		return &PluginList{WP: NewClient(ctx.Shell, ctx.Config)}
	}))

	reg.Register("plugin-activate", func(ctx *registry.Context, params registry.Params) (registry.Command, error) {
		cmd := &PluginActivate{WP: NewClient(ctx.Shell, ctx.Config)}
		if err := params.Decode("plugin-activate", cmd); err != nil {
			return nil, err
		}
		if cmd.Plugin == "" {
			return nil, errors.ParamsInvalid("plugin-activate", "plugin")
		}
		return cmd, nil
	})

	reg.Register("plugin-deactivate", func(ctx *registry.Context, params registry.Params) (registry.Command, error) {
		cmd := &PluginDeactivate{WP: NewClient(ctx.Shell, ctx.Config)}
		if err := params.Decode("plugin-deactivate", cmd); err != nil {
			return nil, err
		}
		if cmd.Plugin == "" {
			return nil, errors.ParamsInvalid("plugin-deactivate", "plugin")
		}
		return cmd, nil
	})

	reg.Register("theme-list", registry.Simple(func(ctx *registry.Context) registry.Command {
		return &ThemeList{WP: NewClient(ctx.Shell, ctx.Config)}
	}))

	reg.Register("user-list", registry.Simple(func(ctx *registry.Context) registry.Command {
		return &UserList{WP: NewClient(ctx.Shell, ctx.Config)}
	}))

	reg.Register("db-export", func(ctx *registry.Context, params registry.Params) (registry.Command, error) {
		cmd := &DBExport{WP: NewClient(ctx.Shell, ctx.Config)}
		if err := params.Decode("db-export", cmd); err != nil {
			return nil, err
		}
		if cmd.File == "" {
			return nil, errors.ParamsInvalid("db-export", "file")
		}
		return cmd, nil
	})

	reg.Register("search-replace", func(ctx *registry.Context, params registry.Params) (registry.Command, error) {
		cmd := &SearchReplace{WP: NewClient(ctx.Shell, ctx.Config)}
		if err := params.Decode("search-replace", cmd); err != nil {
			return nil, err
		}
		if cmd.Old == "" {
			return nil, errors.ParamsInvalid("search-replace", "old")
		}
		if cmd.New == "" {
			return nil, errors.ParamsInvalid("search-replace", "new")
		}
		return cmd, nil
	})

	reg.Register("maintenance-mode", func(ctx *registry.Context, params registry.Params) (registry.Command, error) {
		cmd := &MaintenanceMode{WP: NewClient(ctx.Shell, ctx.Config)}
		if err := params.Decode("maintenance-mode", cmd); err != nil {
			return nil, err
		}
		return cmd, nil
	})
}
