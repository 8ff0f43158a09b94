package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vfg2006/rank-tracker-api/internal/config"
)

func main() {
	app := newApp(config.NewConfig)
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp(loadConfig func() (*config.Config, error)) *cli.App {
	actions := &actions{loadConfig: loadConfig}

	return &cli.App{
		Name:  "rankctl",
		Usage: "verificação e relatórios de ranking pela linha de comando",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "memory",
				Usage: "grava as observações em memória em vez do PostgreSQL",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "verifica a posição de uma palavra-chave",
				ArgsUsage: "<domain> <keyword>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "location", Aliases: []string{"l"}},
					&cli.StringFlag{Name: "client-id"},
				},
				Action: actions.check,
			},
			{
				Name:      "batch",
				Usage:     "verifica um lote de palavras-chave do mesmo domínio",
				ArgsUsage: "<domain> <keyword>...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "location", Aliases: []string{"l"}},
					&cli.StringFlag{Name: "client-id"},
				},
				Action: actions.batch,
			},
			{
				Name:  "history",
				Usage: "lista as observações gravadas",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "domain"},
					&cli.StringFlag{Name: "keyword"},
					&cli.StringFlag{Name: "client-id"},
					&cli.StringFlag{Name: "start-date", Usage: "yyyy-mm-dd"},
					&cli.StringFlag{Name: "end-date", Usage: "yyyy-mm-dd"},
				},
				Action: actions.history,
			},
			{
				Name:  "report",
				Usage: "gera o relatório mensal ou semanal",
				Subcommands: []*cli.Command{
					{
						Name:   "monthly",
						Flags:  reportFlags(),
						Action: actions.monthlyReport,
					},
					{
						Name:   "weekly",
						Flags:  reportFlags(),
						Action: actions.weeklyReport,
					},
				},
			},
			{
				Name:  "token",
				Usage: "emite um token de acesso à API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subject", Required: true},
					&cli.IntFlag{Name: "role", Value: 1, Usage: "1 admin, 2 operador, 3 cliente"},
					&cli.StringFlag{Name: "client-id"},
					&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
				},
				Action: actions.token,
			},
		},
	}
}

func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "domain"},
		&cli.StringFlag{Name: "client-id"},
		&cli.IntFlag{Name: "periods"},
	}
}
