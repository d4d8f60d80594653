package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpager/internal/store"
)

const envPrefix = "TXPAGER_"

type Options struct {
	ServerAddr     string        `env:"SERVER_ADDR" envDefault:"localhost:8080"`
	NodeAddr       string        `env:"NODE_ADDR" envDefault:"http://localhost:8545"`
	PollInterval   time.Duration `env:"POLL_INTERVAL" envDefault:"10s"`
	OverviewBlocks uint          `env:"OVERVIEW_BLOCKS" envDefault:"10"`
	OverviewTxns   int           `env:"OVERVIEW_TXNS" envDefault:"10"`
	CacheBackend   string        `env:"CACHE_BACKEND" envDefault:"transient"`
	DataDir        string        `env:"DATA_DIR" envDefault:"./data"`
	RPCRate        float64       `env:"RPC_RATE" envDefault:"20"`
	RPCBurst       int           `env:"RPC_BURST" envDefault:"5"`
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	Verbose        bool          `env:"VERBOSE"`
}

// loadOptions reads the optional .env file and the TXPAGER_ environment, then lets command line
// flags override whatever was set there.
func loadOptions(logger *logrus.Logger) (Options, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.WithError(err).Warn("Failed to load .env file, relying on environment variables")
	}

	var opts Options
	err = env.ParseWithOptions(&opts, env.Options{Prefix: envPrefix})
	if err != nil {
		return Options{}, fmt.Errorf("parse environment: %w", err)
	}

	flag.StringVar(&opts.ServerAddr, "server-addr", opts.ServerAddr, "Server addr to serve the http server on")
	flag.StringVar(&opts.NodeAddr, "node-addr", opts.NodeAddr, "The Otterscan enabled Ethereum node to connect to")
	flag.DurationVar(&opts.PollInterval, "poll-interval", opts.PollInterval, "Node polling interval for new blocks. Recommend no less than 6 seconds")
	flag.UintVar(&opts.OverviewBlocks, "overview-blocks", opts.OverviewBlocks, "Number of latest blocks kept in the overview, also the depth checked for reorganisation")
	flag.IntVar(&opts.OverviewTxns, "overview-txns", opts.OverviewTxns, "Number of latest transactions kept in the overview")
	flag.StringVar(&opts.CacheBackend, "cache-backend", opts.CacheBackend, "Preferred cache backend: transient or durable")
	flag.StringVar(&opts.DataDir, "data-dir", opts.DataDir, "Directory of the durable cache backend")
	flag.Float64Var(&opts.RPCRate, "rpc-rate", opts.RPCRate, "Max node requests per second")
	flag.IntVar(&opts.RPCBurst, "rpc-burst", opts.RPCBurst, "Max burst of node requests")
	flag.DurationVar(&opts.SessionIdleTTL, "session-idle-ttl", opts.SessionIdleTTL, "Paging sessions idle for longer than this are dropped")
	flag.BoolVar(&opts.Verbose, "v", opts.Verbose, "Verbose output")
	flag.Parse()

	return opts, nil
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.ServerAddr == "" {
		exitWithUsage(logger, "--server-addr is required")
	}
	if opts.NodeAddr == "" {
		exitWithUsage(logger, "--node-addr is required")
	}
	if opts.PollInterval < time.Second*3 {
		exitWithUsage(logger, "--poll-interval is too small, it cannot be less than 3 seconds")
	}
	if opts.OverviewBlocks < 1 {
		exitWithUsage(logger, "--overview-blocks cannot be less than 1")
	}
	if opts.OverviewTxns < 1 {
		exitWithUsage(logger, "--overview-txns cannot be less than 1")
	}
	if !store.Kind(opts.CacheBackend).Valid() {
		exitWithUsage(logger, fmt.Sprintf("--cache-backend must be %q or %q", store.KindTransient, store.KindDurable))
	}
	if opts.DataDir == "" && store.Kind(opts.CacheBackend) == store.KindDurable {
		exitWithUsage(logger, "--data-dir is required for the durable cache backend")
	}
	if opts.RPCRate <= 0 || opts.RPCBurst < 1 {
		exitWithUsage(logger, "--rpc-rate and --rpc-burst must be positive")
	}
	if opts.SessionIdleTTL < time.Minute {
		exitWithUsage(logger, "--session-idle-ttl is too small, it cannot be less than a minute")
	}
}

func exitWithUsage(logger *logrus.Logger, msg string) {
	logger.Error(msg)
	flag.Usage()
	os.Exit(1)
}
