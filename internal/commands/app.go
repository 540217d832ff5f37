package commands

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/finview-dev/finview/internal/api"
	"github.com/finview-dev/finview/internal/config"
	"github.com/finview-dev/finview/internal/datasync"
	"github.com/finview-dev/finview/internal/datasync/actionlog"
	"github.com/finview-dev/finview/internal/log"
	"github.com/finview-dev/finview/internal/query"
	"github.com/finview-dev/finview/internal/session"
)

// app wires the full client stack: config, session, API client, query
// cache, and the sync layer over them.
type app struct {
	cfg     *config.Config
	sess    *session.Session
	manager *session.Manager
	sync    *datasync.Sync
	logger  *log.Logger
}

// newApp builds the stack from a config path. An empty path uses
// ~/.finview/finview.yaml.
func newApp(cfgPath string) (*app, error) {
	_ = godotenv.Load()

	if cfgPath == "" {
		home, _ := os.UserHomeDir()
		cfgPath = filepath.Join(home, ".finview", "finview.yaml")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Paths.Session), 0o700); err != nil {
		return nil, err
	}

	sess, err := session.Load(cfg.Paths.Session)
	if err != nil {
		return nil, err
	}

	logger := log.Default("finview")
	client := api.NewClient(cfg.API.BaseURL,
		api.WithTokens(sess),
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
	)
	store := query.NewStore(cfg.Cache.TTL)

	return &app{
		cfg:  cfg,
		sess: sess,
		manager: session.NewManager(client.Auth(), sess, store,
			cfg.Paths.Session, logger),
		sync: datasync.New(datasync.FromClient(client), store, logger,
			datasync.WithActionLog(actionlog.New(cfg.Paths.ActionLog))),
		logger: logger,
	}, nil
}
