package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/screenlog/screenlog/config"
	phttp "github.com/screenlog/screenlog/pkg/http"
	"github.com/screenlog/screenlog/pkg/logger"
	"github.com/screenlog/screenlog/pkg/manager"
	"github.com/screenlog/screenlog/pkg/tmdb"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "search the movie and tv catalogs",
	Long:  `search the movie and tv catalogs`,
	Args:  cobra.MinimumNArgs(1),
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

		m := manager.New(tmdbClient, nil)

		ctx := logger.WithCtx(context.Background(), log)
		results, err := m.SearchMedia(ctx, strings.Join(args, " "))
		if err != nil {
			log.Fatal("search failed", zap.Error(err))
		}

		upper := cases.Upper(language.English)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tPOPULARITY\tTITLE")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, upper.String(r.MediaType), humanize.FtoaWithDigits(float64(r.Popularity), 1), r.Title)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
