package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/grouper"
	"github.com/MKhiriev/passout/internal/logger"
	"github.com/MKhiriev/passout/internal/service"
)

// run resolves the configuration, wires the services and dispatches cmd.
// version needs neither the profile nor the vault and is dispatched without
// them.
func (c *cli) run(ctx context.Context, cmd command) error {
	flags := c.flags.StructuredConfig()

	settings, err := config.GetStructuredConfig(flags)
	if err != nil {
		return err
	}

	log, err := c.newLogger(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrConfiguration, err)
	}
	log = log.WithRunID()
	ctx = log.WithContext(ctx)

	if _, ok := cmd.(versionCommand); ok {
		return c.dispatch(ctx, cmd, nil, nil)
	}

	cfg, err := config.GetConfig(flags)
	if err != nil {
		return err
	}
	log.Debug().Str("home", cfg.Settings.Home).Str("config", cfg.Settings.ConfigFilePath).Msg("configuration loaded")

	services, err := service.NewServices(cfg, c.newRunner(log), log)
	if err != nil {
		return err
	}

	return c.dispatch(ctx, cmd, cfg, services)
}

func (c *cli) dispatch(ctx context.Context, cmd command, cfg *config.Config, services *service.Services) error {
	switch cmd := cmd.(type) {
	case listCommand:
		return c.list(ctx, cmd, services)

	case addCommand:
		secret, err := c.readSecret()
		if err != nil {
			return err
		}
		return services.Credentials.Add(ctx, cmd.name, secret)

	case removeCommand:
		return services.Credentials.Remove(ctx, cmd.name)

	case stdoutCommand:
		secret, err := services.Credentials.Reveal(ctx, cmd.name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.out, "%s\n", secret)
		return err

	case clipCommand:
		return services.Clipboard.Clip(ctx, cmd.name)

	case clearCommand:
		return services.Clipboard.Clear(ctx)

	case browseCommand:
		tree, err := services.Credentials.Tree(ctx)
		if err != nil {
			return err
		}
		name, err := c.browse(tree, grouper.DefaultSeparator)
		if err != nil {
			return err
		}
		if err = services.Clipboard.Clip(ctx, name); err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.errOut, "Loaded password '%s' into clipboard\n", name)
		return err

	case configCommand:
		data, err := json.Marshal(cfg.Profile)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.out, "%s\n", data)
		return err

	case versionCommand:
		return c.version(ctx, cmd, logger.FromContext(ctx))

	default:
		return fmt.Errorf("unhandled command %T", cmd)
	}
}

func (c *cli) list(ctx context.Context, cmd listCommand, services *service.Services) error {
	if !cmd.tree && !cmd.asJSON {
		names, err := services.Credentials.List(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			if _, err = fmt.Fprintln(c.out, name); err != nil {
				return err
			}
		}
		return nil
	}

	tree, err := services.Credentials.Tree(ctx)
	if err != nil {
		return err
	}

	if cmd.asJSON {
		data, err := json.Marshal(tree)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.out, "%s\n", data)
		return err
	}
	return tree.Format(c.out, grouper.DefaultSeparator)
}

func (c *cli) version(ctx context.Context, _ versionCommand, log *logger.Logger) error {
	build := service.NewAppInfoService(c.buildInfo, log).GetBuildInfo(ctx)
	_, err := fmt.Fprintf(c.out, "%s\nBuild date: %s\nBuild commit: %s\n",
		build.Banner(), build.BuildDate(), build.BuildCommit())
	return err
}
