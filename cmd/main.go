package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Artexxx/HR-Employees/internal/api"
	"github.com/Artexxx/HR-Employees/internal/config"
	"github.com/Artexxx/HR-Employees/internal/exchange/producer"
	"github.com/Artexxx/HR-Employees/internal/repository/slot"
	"github.com/Artexxx/HR-Employees/internal/store"
	"github.com/Artexxx/HR-Employees/library/pg"
	"github.com/Artexxx/HR-Employees/library/yamlreader"

	"github.com/IBM/sarama"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultSlotName = "employees_data"

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(rootCtx)
	defer cancel()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	cfg := MustNewConfig(parseFlags())

	log.Info().Msgf("storage=%s", cfg.Storage.Driver.Or("file"))

	employeeSlot, closeSlot, err := openSlot(rootCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init failed")
	}
	defer closeSlot()

	opts := []store.Option{store.WithLogger(log.Logger)}

	if cfg.Kafka.Enabled.Or(false) {
		log.Info().Msgf("kafka=%+v", cfg.Kafka.Bootstrap.Or(""))

		employeeProducer, err := initEmployeeProducer(cfg.Kafka)
		if err != nil {
			log.Fatal().Err(err).Msg("kafka producer init failed")
		}
		defer func() { _ = employeeProducer.Close() }()

		opts = append(opts, store.WithNotifier(employeeProducer))
	}

	employees := store.New(rootCtx, employeeSlot, opts...)

	apiService := api.NewService(api.ServiceDeps{
		Port:  cfg.UserAPI.Port.Or(8080),
		Store: employees,
	})

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Msg("starting HTTP API")
		if err := apiService.Start(gctx); err != nil {
			log.Error().Err(err).Msg("HTTP API failed")

			return err
		}

		log.Info().Msg("HTTP API stopped")

		return nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = group.Wait()
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("signal received, graceful shutdown...")
		waitWithTimeout(done, 10*time.Second)
		log.Info().Msg("all services stopped")
	case <-done:
		log.Info().Msg("all services stopped")
	}
}

// openSlot returns the configured durable slot and a function releasing it.
func openSlot(ctx context.Context, cfg *config.Config) (store.Slot, func(), error) {
	name := cfg.Storage.Slot.Or(defaultSlotName)
	noop := func() {}

	switch driver := cfg.Storage.Driver.Or("file"); driver {
	case "file":
		f, err := slot.NewFile(cfg.Storage.Path.Or("data"), name)
		if err != nil {
			return nil, noop, fmt.Errorf("slot.NewFile: %w", err)
		}
		log.Info().Str("path", f.Path()).Msg("file slot")

		return f, noop, nil

	case "sqlite":
		s, err := slot.NewSQLite(ctx, cfg.Storage.Path.Or("hr.db"), name)
		if err != nil {
			return nil, noop, fmt.Errorf("slot.NewSQLite: %w", err)
		}

		return s, func() { _ = s.Close() }, nil

	case "postgres":
		pgClient, err := pg.NewPG(ctx, cfg.Postgres.Conn.Or(""), log.Logger)
		if err != nil {
			return nil, noop, fmt.Errorf("pg.NewPG: %w", err)
		}

		p := slot.NewPostgres(pgClient.Pool(), name)
		if err := p.EnsureSchema(ctx); err != nil {
			pgClient.Close()
			return nil, noop, err
		}

		return p, pgClient.Close, nil

	case "memory":
		log.Warn().Msg("memory slot: state is lost on exit")
		return slot.NewMemory(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func initEmployeeProducer(kafkaConfig config.KafkaConfig) (*producer.EmployeeProducer, error) {
	sCfg := sarama.NewConfig()
	sCfg.Version = sarama.V3_3_2_0
	sCfg.ClientID = kafkaConfig.ProducerClientID.Or("hr-employees")
	sCfg.Producer.Return.Successes = true
	sCfg.Producer.RequiredAcks = sarama.WaitForAll
	sCfg.Producer.Idempotent = true
	sCfg.Net.MaxOpenRequests = 1
	sCfg.Producer.Retry.Max = 5
	sCfg.Producer.Retry.Backoff = 200 * time.Millisecond

	sp, err := sarama.NewSyncProducer([]string{kafkaConfig.Bootstrap.Or("localhost:9092")}, sCfg)
	if err != nil {
		return nil, err
	}

	return producer.NewEmployeeProducer(
		sp,
		producer.Config{
			Topic:  kafkaConfig.Topic.Or("hr.employees"),
			Source: "hr-employees",
		},
		log.Logger,
	), nil
}

func waitWithTimeout(done <-chan struct{}, timeout time.Duration) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return
	case <-timer.C:
		log.Warn().Dur("timeout", timeout).Msg("graceful shutdown")
	}
}

func MustNewConfig(path string) *config.Config {
	cfg, err := yamlreader.NewConfig[config.Config](path)

	if err != nil {
		log.Fatal().Str("path", path).Err(err).Msg("failed to read application config")
		return nil
	}

	return cfg
}

func parseFlags() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load(".env")

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	if configPath == "" {
		configPath = "config/application-local.yaml"
	}
	return configPath
}
