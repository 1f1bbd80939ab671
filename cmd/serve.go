package cmd

import (
	"context"
	"net/url"

	"github.com/screenlog/screenlog/config"
	phttp "github.com/screenlog/screenlog/pkg/http"
	"github.com/screenlog/screenlog/pkg/identity"
	"github.com/screenlog/screenlog/pkg/logger"
	"github.com/screenlog/screenlog/pkg/manager"
	"github.com/screenlog/screenlog/pkg/storage/sqlite"
	"github.com/screenlog/screenlog/pkg/tmdb"
	"github.com/screenlog/screenlog/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the tracking server",
	Long:  `start the tracking server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		httpClient := phttp.NewRateLimitedHTTPClient(
			phttp.WithMaxRetries(cfg.TMDB.MaxRetries),
			phttp.WithBaseBackoff(cfg.TMDB.BaseBackoff),
		)

		tmdbURL := url.URL{
			Scheme: cfg.TMDB.Scheme,
			Host:   cfg.TMDB.Host,
		}

		tmdbClient, err := tmdb.New(tmdbURL.String(), cfg.TMDB.APIKey, tmdb.WithHTTPClient(httpClient))
		if err != nil {
			log.Fatal("failed to create tmdb client", zap.Error(err))
		}

		authURL := url.URL{
			Scheme: cfg.Auth.Scheme,
			Host:   cfg.Auth.Host,
		}

		verifier, err := identity.New(authURL.String(), cfg.Auth.APIKey, identity.WithHTTPClient(httpClient))
		if err != nil {
			log.Fatal("failed to create identity client", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to open storage", zap.Error(err))
		}

		ctx := logger.WithCtx(context.Background(), log)
		if err := store.Init(ctx); err != nil {
			log.Fatal("failed to migrate storage", zap.Error(err))
		}

		m := manager.New(tmdbClient, store)

		srv := server.New(log, m, verifier, cfg.Server.FrontendDir)
		if err := srv.Serve(cfg.Server.Port); err != nil {
			log.Fatal("failed to serve", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
