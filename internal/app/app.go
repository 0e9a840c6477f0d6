package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/tecnostore/storefront/config"
	"github.com/tecnostore/storefront/internal/adapter/catalogfile"
	"github.com/tecnostore/storefront/internal/adapter/httphandler"
	"github.com/tecnostore/storefront/internal/adapter/kafka"
	"github.com/tecnostore/storefront/internal/adapter/storage"
	"github.com/tecnostore/storefront/internal/core/service"
	"github.com/tecnostore/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx              context.Context
	cfg              config.Config
	clientEventSerde schema.Serde
	sqldb            storage.SQLDB
	eventsProducer   kafka.ClientEventsProducer
	processor        kafka.ActivityProcessor
	activityView     kafka.ActivityView
	storefront       *service.Storefront
	httpServer       httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	clientEventSS := app.cfg.Broker.Topics.ClientEvents + "-value"
	clientEventSerde, err := schema.NewSerdeClientEventV1(
		app.ctx,
		schema.SubjectOpt(clientEventSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.clientEventSerde = clientEventSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	clientEventsTopic := app.cfg.Broker.Topics.ClientEvents
	activityGroup := app.cfg.Broker.Consumers.ActivityGroup

	sqldb, err := storage.NewSQLDB(ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqldb = sqldb

	eventsProducer, err := kafka.NewClientEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, clientEventsTopic),
		kafka.ProducerEncoderOpt(app.clientEventSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.eventsProducer = eventsProducer

	processor, err := kafka.NewActivityProcessor(
		seedBrokers, clientEventsTopic, activityGroup, app.clientEventSerde,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.processor = processor

	activityView, err := kafka.NewActivityView(seedBrokers, activityGroup)
	if err != nil {
		app.fallDown(op, err)
	}
	app.activityView = activityView
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	s := service.New(
		catalogfile.New(app.cfg.Catalog.Path),
		storage.NewStateRepository(app.sqldb),
		app.eventsProducer,
		service.Options{
			PageSize:     app.cfg.Catalog.PageSize,
			MaxPrice:     app.cfg.Catalog.MaxPrice,
			ShippingFee:  app.cfg.ShippingFee,
			SuggestLimit: app.cfg.Catalog.SuggestLimit,
		},
	)

	if err := s.Restore(app.ctx); err != nil {
		app.fallDown(op, err)
	}
	s.LoadCatalog(app.ctx)

	app.storefront = s
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	s := app.storefront

	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, s, s, s, s, s)
	httphandler.RegisterCart(mux, s, s)
	httphandler.RegisterAuth(mux, s, s)
	httphandler.RegisterActivity(mux, app.activityView)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	var wg sync.WaitGroup
	wg.Add(1)
	go app.processor.Run(app.ctx, &wg)
	wg.Wait()

	go app.activityView.Run(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.processor.Close()
	app.eventsProducer.Close()
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
