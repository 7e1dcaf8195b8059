package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mysterymart/goapi/base/ctx"
	"github.com/mysterymart/goapi/base/log"
	"github.com/mysterymart/goapi/domain"
	bValidator "github.com/mysterymart/goapi/base/validator"
	mmiddleware "github.com/mysterymart/goapi/middleware"
	"github.com/mysterymart/goapi/service/chain"
	"github.com/mysterymart/goapi/service/chain/contract"
	"github.com/mysterymart/goapi/service/pinata"
	hc_delivery "github.com/mysterymart/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/mysterymart/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/mysterymart/goapi/stores/healthcheck/usecase"
	market_delivery "github.com/mysterymart/goapi/stores/market/delivery/http"
	market_repository "github.com/mysterymart/goapi/stores/market/repository"
	market_usecase "github.com/mysterymart/goapi/stores/market/usecase"
	metadata_usecase "github.com/mysterymart/goapi/stores/metadata/usecase"
	mirror_repository "github.com/mysterymart/goapi/stores/mirror/repository"
	token_delivery "github.com/mysterymart/goapi/stores/token/delivery/http"
	token_usecase "github.com/mysterymart/goapi/stores/token/usecase"
	webresource_repository "github.com/mysterymart/goapi/stores/webresource/repository"
)

func init() {
	configPath := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init postgres mirror
	context.Info("init postgres")
	pool, err := pgxpool.New(context, viper.GetString("postgres.dsn"))
	if err != nil {
		log.Log().WithField("err", err).Panic("failed to create postgres pool")
	}

	// init chain client
	context.Info("init chain client")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:        viper.GetString("chain.rpcUrl"),
		PrivateKey:    viper.GetString("chain.privateKey"),
		ChainId:       viper.GetInt64("chain.chainId"),
		TxWaitTimeout: viper.GetDuration("chain.txWaitTimeout"),
	})
	if err != nil {
		log.Log().WithField("err", err).Panic("failed to create chain client")
	}
	collectible := contract.NewCollectible(chainService, common.HexToAddress(viper.GetString("chain.contractAddress")))

	// init pinning service
	pinataService := pinata.New(viper.GetString("pinata.jwt"))

	// init metadata resolver, reading ipfs through the configured node or
	// falling back to a public gateway
	httpTimeout := viper.GetDuration("http.timeout")
	var ipfsReader domain.WebResourceReaderRepository
	if nodeUri := viper.GetString("ipfs.nodeUri"); nodeUri != "" {
		ipfsReader = webresource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeUri), httpTimeout)
	} else {
		ipfsReader = webresource_repository.NewIpfsGatewayReaderRepo(http.Client{}, viper.GetString("ipfs.gateway"), httpTimeout)
	}
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		HttpReader:    webresource_repository.NewHttpReaderRepo(viper.GetInt("http.retryMax"), httpTimeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: webresource_repository.NewDataUriReaderRepo(),
		CacheTtl:      viper.GetDuration("metadata.cacheTtl"),
	})

	// init repositories
	readPort := market_repository.NewReadRepo(collectible)
	writePort := market_repository.NewWriteRepo(collectible)
	mirrorRepo := mirror_repository.NewPostgresMirrorRepo(pool)
	hcRepo := hc_repo.New(pool)

	// init usecases
	hc := hc_usecase.New(hcRepo)
	marketUsecase := market_usecase.NewCoordinator(&market_usecase.CoordinatorCfg{
		ReadPort:  readPort,
		WritePort: writePort,
		Metadata:  metadata,
	})
	tokenUsecase := token_usecase.NewMinter(&token_usecase.MinterCfg{
		Pinata:        pinataService,
		ReadPort:      readPort,
		WritePort:     writePort,
		Mirror:        mirrorRepo,
		MirrorTimeout: viper.GetDuration("mirror.timeout"),
	})

	hc_delivery.New(e, hc)
	market_delivery.New(e, marketUsecase)
	token_delivery.New(e, tokenUsecase)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	pool.Close()
}
