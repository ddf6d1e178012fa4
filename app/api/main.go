package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"

	"github.com/x-xyz/nftrelay/base/config"
	"github.com/x-xyz/nftrelay/base/ctx"
	"github.com/x-xyz/nftrelay/base/goroutine"
	"github.com/x-xyz/nftrelay/base/log"
	"github.com/x-xyz/nftrelay/base/metrics"
	bValidator "github.com/x-xyz/nftrelay/base/validator"
	mmiddleware "github.com/x-xyz/nftrelay/middleware"
	"github.com/x-xyz/nftrelay/service/bitscrunch"
	hc_delivery "github.com/x-xyz/nftrelay/stores/healthcheck/delivery/http"
	nft_delivery "github.com/x-xyz/nftrelay/stores/nft/delivery/http"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/nftrelay/app/api/docs"
)

var configPath = pflag.String("config", config.DefaultPath, "path to the yaml config file")

//	@title			NFT Relay API
//	@version		1.0
//	@description	Relay in front of the bitsCrunch NFT API.
func main() {
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Log().WithField("err", err).Panic("config.Load failed")
	}

	if err := log.Init(cfg.Debug); err != nil {
		log.Log().WithField("err", err).Panic("log.Init failed")
	}
	defer log.Sync()

	if cfg.Debug {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	metrics.Setup(metrics.Config{
		Host: cfg.DatadogHost,
		Tags: []string{"env:" + cfg.EnvName, "app:" + cfg.AppName, "pod:" + cfg.PodName},
	})

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	context.WithFields(log.Fields{
		"baseUrl": cfg.Bitscrunch.BaseUrl,
		"timeout": cfg.Bitscrunch.Timeout,
	}).Info("init bitscrunch client")
	bitscrunchClient := bitscrunch.NewClient(&bitscrunch.ClientCfg{
		HttpClient: &http.Client{},
		BaseUrl:    cfg.Bitscrunch.BaseUrl,
		Apikey:     cfg.Bitscrunch.ApiKey,
		Timeout:    cfg.Bitscrunch.Timeout,
	})

	hc_delivery.New(e)
	nft_delivery.New(e, bitscrunchClient, cfg.Server.StrictParams)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	appMet := metrics.New("app")
	serverExit := goroutine.RecoverableGo(func() error {
		if err := e.Start(cfg.Server.Address()); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
		goroutine.WithName("echo"),
		goroutine.WithBeforeStart(func() {
			context.WithField("address", cfg.Server.Address()).Info("server listening")
		}),
		goroutine.WithAfterEnded(func() {
			context.Info("server goroutine ended")
			log.Sync()
		}),
		goroutine.WithAfterRecovered(func(p interface{}, stack []byte) {
			appMet.BumpSum("panic", 1, "goroutine", "echo")
		}),
	)

	// Wait for interrupt signal to gracefully shutdown the server with a timeout.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		context.WithField("signal", sig).Info("received signal")
	case exit := <-serverExit:
		context.WithField("err", exit).Error("server stopped")
		log.Sync()
		os.Exit(1)
	}

	ctx, cancel := ctx.WithTimeout(context, cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		context.WithField("err", err).Error("shutting down the server")
	} else {
		context.Info("shutdown server successfully")
	}
}
