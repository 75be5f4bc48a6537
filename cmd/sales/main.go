package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"sales/pkg/config"
)

const appID = "sales"

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:  appID,
		Usage: "sales management service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: withConfig(serve),
			},
			{
				Name:   "migrate",
				Usage:  "apply MySQL schema migrations",
				Action: withConfig(migrate),
			},
			{
				Name:  "seed",
				Usage: "load demo users and products from a YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "path to the seed file",
						Required: true,
					},
				},
				Action: withConfig(seedCatalog),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}

func withConfig(action func(*cli.Context, *config.Config) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cnf, err := config.Load()
		if err != nil {
			return err
		}
		if err := setupLogging(cnf); err != nil {
			return err
		}
		return action(c, cnf)
	}
}

func setupLogging(cnf *config.Config) error {
	level, err := log.ParseLevel(cnf.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if cnf.LogFormat == "text" {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
