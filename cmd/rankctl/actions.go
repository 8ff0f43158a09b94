package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vfg2006/rank-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp"
	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/internal/config"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/ranking"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
	"github.com/vfg2006/rank-tracker-api/pkg/pacing"
	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

type actions struct {
	loadConfig func() (*config.Config, error)
}

func (a *actions) config() (*config.Config, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar configuração")
	}
	log.Setup(cfg.App.LogLevel)
	return cfg, nil
}

// service monta o serviço de rankings. O retorno release libera a conexão com o banco.
func (a *actions) service(c *cli.Context) (ranking.RankingService, func(), error) {
	cfg, err := a.config()
	if err != nil {
		return nil, nil, err
	}

	var (
		repo  repository.RankObservationRepository
		release = func() {}
	)
	if c.Bool("memory") {
		repo = repository.NewMemoryRankObservationRepository()
	} else {
		conn, err := postgres.NewConnection(c.Context, cfg.Database)
		if err != nil {
			return nil, nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
		}
		repo = repository.NewRankObservationRepository(conn)
		release = func() { conn.Close() }
	}

	gate := pacing.NewIntervalGate(
		time.Duration(cfg.Serp.GlobalMinIntervalMs)*time.Millisecond,
		time.Duration(cfg.Serp.CallerMinIntervalMs)*time.Millisecond,
	)

	var provider serp.Provider
	configured, err := serp.NewProvider(cfg, gate)
	switch {
	case errors.Is(err, serpdomain.ErrNotConfigured):
		logrus.Warn("Nenhum provedor de SERP configurado")
	case err != nil:
		release()
		return nil, nil, err
	default:
		provider = configured
	}

	service, err := ranking.NewServiceFromConfig(cfg, provider, repo, pacing.RealSleeper{}, nil)
	if err != nil {
		release()
		return nil, nil, err
	}

	return service, release, nil
}

func (a *actions) check(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.Exit("informe o domínio e a palavra-chave", 2)
	}

	service, release, err := a.service(c)
	if err != nil {
		return err
	}
	defer release()

	observation, err := service.CheckKeyword(c.Context, domain.RankCheckRequest{
		Domain:   c.Args().Get(0),
		Keyword:  c.Args().Get(1),
		Location: c.String("location"),
		ClientID: optional(c.String("client-id")),
	})
	if err != nil {
		return rankExit(err)
	}

	return printJSON(c, observation)
}

func (a *actions) batch(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.Exit("informe o domínio e ao menos uma palavra-chave", 2)
	}

	service, release, err := a.service(c)
	if err != nil {
		return err
	}
	defer release()

	response, err := service.RunBatch(c.Context, domain.BatchRankRequest{
		Domain:   c.Args().First(),
		Keywords: c.Args().Tail(),
		Location: c.String("location"),
		ClientID: optional(c.String("client-id")),
	})
	if err != nil {
		return rankExit(err)
	}

	return printJSON(c, response)
}

func (a *actions) history(c *cli.Context) error {
	startDate, err := utils.ParseDate(c.String("start-date"))
	if err != nil {
		return cli.Exit("start-date deve estar no formato yyyy-mm-dd", 2)
	}
	endDate, err := utils.ParseDate(c.String("end-date"))
	if err != nil {
		return cli.Exit("end-date deve estar no formato yyyy-mm-dd", 2)
	}
	if endDate != nil {
		endOfDay := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		endDate = &endOfDay
	}

	service, release, err := a.service(c)
	if err != nil {
		return err
	}
	defer release()

	observations, err := service.GetHistory(c.Context, domain.RankFilters{
		Domain:    c.String("domain"),
		Keyword:   c.String("keyword"),
		ClientID:  c.String("client-id"),
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return rankExit(err)
	}

	return printJSON(c, observations)
}

func (a *actions) monthlyReport(c *cli.Context) error {
	return a.report(c, func(service ranking.RankingService, ctx context.Context, filters domain.ReportFilters) (*domain.RankReport, error) {
		return service.GetMonthlyReport(ctx, filters)
	})
}

func (a *actions) weeklyReport(c *cli.Context) error {
	return a.report(c, func(service ranking.RankingService, ctx context.Context, filters domain.ReportFilters) (*domain.RankReport, error) {
		return service.GetWeeklyReport(ctx, filters)
	})
}

func (a *actions) report(c *cli.Context, build func(ranking.RankingService, context.Context, domain.ReportFilters) (*domain.RankReport, error)) error {
	service, release, err := a.service(c)
	if err != nil {
		return err
	}
	defer release()

	report, err := build(service, c.Context, domain.ReportFilters{
		Domain:   c.String("domain"),
		ClientID: c.String("client-id"),
		Periods:  c.Int("periods"),
	})
	if err != nil {
		return rankExit(err)
	}

	return printJSON(c, report)
}

func (a *actions) token(c *cli.Context) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	token, err := authenticating.NewService(cfg).IssueToken(
		c.String("subject"),
		c.Int("role"),
		optional(c.String("client-id")),
		c.Duration("ttl"),
	)
	if err != nil {
		return cli.Exit(fmt.Sprintf("erro ao emitir token: %v", err), 1)
	}

	_, err = fmt.Fprintln(c.App.Writer, token)
	return err
}

func printJSON(c *cli.Context, value any) error {
	_, err := fmt.Fprintln(c.App.Writer, utils.PrettyJson(value))
	return err
}

func rankExit(err error) error {
	classified := ranking.ClassifyError(err)
	message := fmt.Sprintf("%s: %s", classified.Code, classified.Error())
	if suggestion := classified.Suggestion(); suggestion != "" {
		message += "\n" + suggestion
	}
	return cli.Exit(message, 1)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
