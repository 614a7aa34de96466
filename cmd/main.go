package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/courier-hub/docs"
	"github.com/SergeyBogomolovv/courier-hub/internal/app"
	"github.com/SergeyBogomolovv/courier-hub/internal/config"
	"github.com/SergeyBogomolovv/courier-hub/internal/docstore"
	"github.com/SergeyBogomolovv/courier-hub/internal/fanout"
	"github.com/SergeyBogomolovv/courier-hub/internal/handler"
	"github.com/SergeyBogomolovv/courier-hub/internal/middleware"
	"github.com/SergeyBogomolovv/courier-hub/internal/postgres"
	"github.com/SergeyBogomolovv/courier-hub/internal/repo"
	"github.com/SergeyBogomolovv/courier-hub/internal/service"
	"github.com/SergeyBogomolovv/courier-hub/pkg/cache"
	"github.com/SergeyBogomolovv/courier-hub/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Courier Hub API
// @version         1.0
// @description     Документация HTTP API маркетплейса доставки
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application := app.New(logger, conf)
	var closers []app.Closer

	store := newStore(ctx, logger, conf, &closers)

	repos := service.Repos{
		Orders:     repo.NewOrderRepo(store),
		Deliveries: repo.NewDeliveryRepo(store),
		Products:   repo.NewProductRepo(store),
		Riders:     repo.NewRiderRepo(store),
	}
	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	hub := fanout.NewHub(logger)

	// транспорт: локальный хаб или брокер, который доставит событие во все инстансы
	var transport fanout.Transport = hub
	switch conf.Fanout.Broker {
	case config.BrokerKafka:
		relay := fanout.NewKafkaRelay(conf.Kafka)
		transport = relay
		closers = append(closers, relay)
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, hub))
		logger.Info("kafka relay enabled", slog.String("topic", conf.Kafka.Topic))
	case config.BrokerRabbitMQ:
		mq, err := fanout.ConnectRabbitMQ(conf.RabbitMQ)
		panicIfErr("failed to connect to rabbitmq", err)
		transport = fanout.NewRabbitRelay(mq)
		consumer, err := handler.NewRabbitHandler(logger, mq, hub)
		panicIfErr("failed to create rabbitmq consumer", err)
		application.SetConsumers(consumer)
		logger.Info("rabbitmq relay enabled", slog.String("exchange", conf.RabbitMQ.Exchange))
	}
	publisher := fanout.NewPublisher(transport)

	coordinator := service.NewCoordinator(logger, repos, publisher, cache, conf.Dispatch, conf.Fanout.PublishTimeout)
	directory := service.NewRiderDirectory(logger, repos.Riders, repos.Deliveries, publisher, cache, conf.Fanout.PublishTimeout)
	seeder := repo.NewCatalogSeeder(logger, conf.Store.SeedFile, repos.Products, repos.Riders)

	auth := middleware.NewAuthenticator(conf.Auth.JWTSecret)

	application.SetHTTPHandlers(
		handler.NewHTTPHandler(logger, auth, coordinator, directory),
		handler.NewWSHandler(logger, auth, hub, conf.Cors, conf.Fanout),
	)
	application.SetStarters(seeder, cache, hub)
	application.SetClosers(closers...)

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func newStore(ctx context.Context, logger *slog.Logger, conf config.Config, closers *[]app.Closer) docstore.Store {
	if conf.Store.Driver == config.StoreMemory {
		logger.Warn("using in-memory store, data is lost on restart")
		return docstore.NewMemoryStore()
	}

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	*closers = append(*closers, db)
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))

	return docstore.NewPostgresStore(db, trm.NewManager(db))
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
