// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command syncctl runs the desktop sync operations without the terminal UI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/intellicard-client/models"
	"github.com/urfave/cli/v2"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "syncctl: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var env *environment

	return &cli.App{
		Name:        "syncctl",
		Usage:       "sync flashcards between the local backend and the cloud",
		Description: "Headless access to the desktop sync: status, push, pull, clear-local and disconnect.",
		Version:     models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String(),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "JSON config file path", EnvVars: []string{"CONFIG"}},
			&cli.StringFlag{Name: "local-api", Usage: "base URL of the local backend"},
			&cli.StringFlag{Name: "cloud-api", Usage: "base URL of the cloud backend"},
			&cli.StringFlag{Name: "storage", Usage: "key/value storage driver: sqlite or bolt"},
			&cli.StringFlag{Name: "db", Usage: "SQLite database DSN"},
			&cli.StringFlag{Name: "log-level", Usage: "log level (debug, info, warn, error)"},
			&cli.StringFlag{Name: "log-dir", Usage: "directory of the log file"},
		},
		Before: func(c *cli.Context) error {
			var err error
			env, err = newEnvironment(c.Context, configArgs(c))
			return err
		},
		After: func(c *cli.Context) error {
			if env == nil {
				return nil
			}
			return env.Close()
		},
		Commands: []*cli.Command{
			{
				Name:  "status",
				Usage: "print the local sync status",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print the status as JSON"},
				},
				Action: func(c *cli.Context) error {
					return env.status(c.Context, c.App.Writer, c.Bool("json"))
				},
			},
			{
				Name:  "push",
				Usage: "copy every local card set to the cloud",
				Action: func(c *cli.Context) error {
					return env.push(c.Context, c.App.Writer)
				},
			},
			{
				Name:  "pull",
				Usage: "copy every cloud card set to the local backend",
				Action: func(c *cli.Context) error {
					return env.pull(c.Context, c.App.Writer)
				},
			},
			{
				Name:  "clear-local",
				Usage: "delete every card set of the local backend",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "confirm the deletion"},
				},
				Action: func(c *cli.Context) error {
					if !c.Bool("yes") {
						return cli.Exit("refusing to clear local data without --yes", 2)
					}
					return env.clearLocal(c.Context, c.App.Writer)
				},
			},
			{
				Name:  "disconnect",
				Usage: "forget the stored cloud token",
				Action: func(c *cli.Context) error {
					return env.disconnect(c.Context, c.App.Writer)
				},
			},
		},
	}
}

// configArgs converts the global flags into the client config flag syntax.
func configArgs(c *cli.Context) []string {
	args := []string{"-mode", "desktop"}
	for flagName, configName := range map[string]string{
		"config":    "c",
		"local-api": "local-api",
		"cloud-api": "cloud-api",
		"storage":   "storage",
		"db":        "d",
		"log-level": "log-level",
		"log-dir":   "log-dir",
	} {
		if v := c.String(flagName); v != "" {
			args = append(args, "-"+configName, v)
		}
	}
	return args
}
