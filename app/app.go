// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sprintertech/sprinter-intents/api"
	"github.com/sprintertech/sprinter-intents/api/handlers"
	"github.com/sprintertech/sprinter-intents/cache"
	"github.com/sprintertech/sprinter-intents/chains"
	"github.com/sprintertech/sprinter-intents/chains/evm"
	"github.com/sprintertech/sprinter-intents/chains/sui"
	"github.com/sprintertech/sprinter-intents/config"
	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/health"
	"github.com/sprintertech/sprinter-intents/intent"
	"github.com/sprintertech/sprinter-intents/metrics"
	"github.com/sprintertech/sprinter-intents/protocol/solver"
	"github.com/sygmaprotocol/sygma-core/observability"
	"go.opentelemetry.io/otel/attribute"
)

var Version string

// App holds the long lived dependencies shared by the commands.
type App struct {
	Config    *config.Config
	Registry  *chain.Registry
	Tokens    *config.TokenStore
	Service   *intent.IntentService
	Endpoints map[string]*config.ChainEndpoint
}

// LoadConfig reads the configuration selected by the root flags and configures logging.
func LoadConfig(ctx context.Context) (*config.Config, *config.TokenStore, error) {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString(config.ConfigURLFlagName)

	var configuration *config.Config
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(nil)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, nil)
	}
	if err != nil {
		return nil, nil, err
	}

	logLevel := configuration.LogLevel
	if l := viper.GetString(config.LogLevelFlagName); l != "" {
		logLevel = l
	}
	observability.ConfigureLogger(logLevel, os.Stdout)

	if configURL == "" {
		configURL = configuration.SharedConfigURL
	}
	if configURL == "" {
		return configuration, nil, nil
	}

	sc, err := config.GetSharedConfigFromNetwork(ctx, http.DefaultClient, configURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Msgf("Loaded shared token configuration from %s", configURL)
	return configuration, config.NewTokenStore(sc), nil
}

// New builds the chain registry and the intent service from the configuration.
// Tokens from the shared configuration extend the tokens each chain ships with.
func New(cfg *config.Config, shared *config.TokenStore, opts ...intent.Option) (*App, error) {
	configs := chain.DefaultConfigs()
	if shared != nil {
		for i, c := range configs {
			configs[i] = chain.WithTokens(c, shared.ChainTokens(c.CAIP()))
		}
	}
	registry, err := chain.NewRegistry(configs...)
	if err != nil {
		return nil, err
	}

	endpoints, err := cfg.Endpoints()
	if err != nil {
		return nil, err
	}

	solverAPI := solver.NewSolverAPI(cfg.Solver.URL, cfg.SolverTimeout())
	return &App{
		Config:    cfg,
		Registry:  registry,
		Tokens:    config.NewTokenStoreFromRegistry(registry),
		Service:   intent.NewIntentService(registry, solverAPI, opts...),
		Endpoints: endpoints,
	}, nil
}

// Provider connects to the configured endpoint of c. The returned func releases the connection.
func (a *App) Provider(ctx context.Context, c chain.Chain) (*chains.Provider, func(), error) {
	cfg, err := a.Registry.ConfigFor(c)
	if err != nil {
		return nil, nil, err
	}
	endpoint, ok := a.Endpoints[string(c)]
	if !ok {
		return nil, nil, fmt.Errorf("no endpoint configured for chain %s", c)
	}

	switch cfg.Type() {
	case chain.EvmChainType:
		return evmProvider(ctx, endpoint)
	case chain.SuiChainType:
		return suiProvider(ctx, endpoint)
	default:
		return nil, nil, fmt.Errorf("unsupported chain type %s", cfg.Type())
	}
}

func evmProvider(ctx context.Context, endpoint *config.ChainEndpoint) (*chains.Provider, func(), error) {
	client, err := ethclient.DialContext(ctx, endpoint.Endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("failed connecting to %s: %w", endpoint.Name, err)
	}

	address := common.HexToAddress(endpoint.Address)
	var sender evm.TxSender
	if endpoint.Key != "" {
		chainID := new(big.Int).SetUint64(endpoint.ChainID)
		if endpoint.ChainID == 0 {
			chainID, err = client.ChainID(ctx)
			if err != nil {
				client.Close()
				return nil, nil, err
			}
		}

		keySender, err := evm.NewKeySender(client, endpoint.Key, chainID)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		address = keySender.Address()
		sender = keySender
	}

	return chains.NewEvmProvider(evm.NewProvider(address, client, sender)), client.Close, nil
}

func suiProvider(ctx context.Context, endpoint *config.ChainEndpoint) (*chains.Provider, func(), error) {
	url := endpoint.Endpoint
	if url == "" {
		var err error
		url, err = sui.Network(endpoint.Network).FullnodeURL()
		if err != nil {
			return nil, nil, err
		}
	}

	client, err := sui.NewRPCClient(ctx, url, endpoint.PollDuration())
	if err != nil {
		return nil, nil, fmt.Errorf("failed connecting to %s: %w", endpoint.Name, err)
	}

	// Sui transactions are signed by an external wallet so the account has no signing chain.
	account := sui.Account{Address: endpoint.Address}
	return chains.NewSuiProvider(sui.NewProvider(account, nil, client)), client.Close, nil
}

// Run starts the intents gateway and blocks until SIGINT or SIGTERM.
func Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configuration, shared, err := LoadConfig(ctx)
	panicOnError(err)
	log.Info().Msg("Successfully loaded configuration")

	mp, err := observability.InitMetricProvider(ctx, configuration.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	meter := mp.Meter("intents-metric-provider")
	intentMetrics, err := metrics.NewIntentMetrics(meter)
	panicOnError(err)

	a, err := New(
		configuration,
		shared,
		intent.WithMetrics(intentMetrics),
		intent.WithStatusCache(cache.NewStatusCache(ctx)),
	)
	panicOnError(err)

	_, err = metrics.NewHostMetrics(meter, a.Registry.Supported(), attribute.String("version", Version))
	panicOnError(err)

	go health.StartHealthEndpoint(configuration.HealthPort, func() error {
		if len(a.Registry.Supported()) == 0 {
			return fmt.Errorf("no supported chains")
		}
		return nil
	})

	go api.Serve(
		ctx,
		configuration.API.Addr,
		handlers.NewChainsHandler(a.Service),
		handlers.NewQuoteHandler(a.Service),
		handlers.NewStatusHandler(a.Service),
	)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	sig := <-sysErr
	log.Info().Msgf("terminating got [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
