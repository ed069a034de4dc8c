package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ruteri/pgtls-bootstrap/cmd/flags"
	"github.com/ruteri/pgtls-bootstrap/common"
	"github.com/ruteri/pgtls-bootstrap/privilege"
	"github.com/ruteri/pgtls-bootstrap/provisioner"
	"github.com/ruteri/pgtls-bootstrap/toolchain"
	"github.com/urfave/cli/v2"
)

var LogServiceFlag = flags.LogServiceFlagFn("pgtls-bootstrap")

func main() {
	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "pgtls-bootstrap",
		Usage:   "Prepare certificate and data directories for a TLS-enabled PostgreSQL container",
		Version: common.Version,
		Flags:   append(append(flags.ProvisionerFlags, LogServiceFlag), flags.CommonFlags...),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)
			cfg := flags.ProvisionerConfig(cCtx)

			ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			identity, err := privilege.CurrentIdentity()
			if err != nil {
				logger.Error("Failed to determine current user", "err", err)
				return cli.Exit("", 1)
			}
			logger.Debug("Running as", "uid", identity.UID, "gid", identity.GID, "sudo", privilege.IsRunningUnderSudo())

			// sudo may need the terminal to prompt for a password.
			runner := toolchain.NewExecRunner(logger).WithStdin(os.Stdin)

			generator, err := provisioner.NewGenerator(cfg.Generator, runner, logger)
			if err != nil {
				logger.Error("Invalid configuration", "err", err)
				return cli.Exit("", 1)
			}

			fs := privilege.NewScopedFS(runner, identity, cfg.AllowSudo, logger)

			p, err := provisioner.New(cfg, generator, fs, logger)
			if err != nil {
				logger.Error("Invalid configuration", "err", err)
				return cli.Exit("", 1)
			}

			result, err := p.Run(ctx)
			if err != nil {
				logger.Error("Provisioning failed", "err", err)
				return cli.Exit("", 1)
			}

			common.OK(logger, "TLS bootstrap complete",
				"cert", result.CertPath,
				"key", result.KeyPath,
				"dataDir", result.DataDir,
				"owner", cfg.Ownership().String(),
			)
			if !result.NotAfter.IsZero() {
				logger.Info("Certificate validity", "notAfter", result.NotAfter.Format("2006-01-02"))
			}
			return nil
		},
	}
}
