package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/rank-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp"
	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/internal/api"
	"github.com/vfg2006/rank-tracker-api/internal/api/handler"
	"github.com/vfg2006/rank-tracker-api/internal/config"
	"github.com/vfg2006/rank-tracker-api/internal/scheduler"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/ranking"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
	"github.com/vfg2006/rank-tracker-api/pkg/pacing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	observationRepo := repository.NewRankObservationRepository(pgConn)
	trackedKeywordRepo := repository.NewTrackedKeywordRepository(pgConn)

	gate := pacing.NewIntervalGate(
		time.Duration(cfg.Serp.GlobalMinIntervalMs)*time.Millisecond,
		time.Duration(cfg.Serp.CallerMinIntervalMs)*time.Millisecond,
	)

	rankingService, err := ranking.NewServiceFromConfig(cfg, serpProvider(cfg, gate), observationRepo, pacing.RealSleeper{}, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o serviço de rankings")
	}

	authenticator := authenticating.NewService(cfg)

	rankTrackingSyncService := scheduler.NewRankTrackingSyncService(trackedKeywordRepo, rankingService, cfg)
	if err := rankTrackingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de rankings")
	} else {
		logrus.Info("Agendador de sincronização de rankings iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		rankingService,
		authenticator,
		pgConn,
		handler.CronJobServices{RankTrackingSyncService: rankTrackingSyncService},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// serpProvider escolhe o provedor de SERP. Sem credenciais a API sobe assim mesmo
// e as verificações respondem NOT_CONFIGURED.
func serpProvider(cfg *config.Config, gate pacing.Gate) serp.Provider {
	provider, err := serp.NewProvider(cfg, gate)
	if errors.Is(err, serpdomain.ErrNotConfigured) {
		logrus.Warn("Nenhum provedor de SERP configurado, verificações de ranking desabilitadas")
		return nil
	}
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o provedor de SERP")
	}

	logrus.WithField("provider", provider.Name()).Info("Provedor de SERP configurado")
	return provider
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
