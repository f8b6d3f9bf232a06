package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/X-lab2017/opendigger-cli/internal/cli"
	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	odlog "github.com/X-lab2017/opendigger-cli/internal/core/log"
	"github.com/X-lab2017/opendigger-cli/internal/display"
	"github.com/X-lab2017/opendigger-cli/internal/github"
	"github.com/X-lab2017/opendigger-cli/internal/indicator"
	"github.com/X-lab2017/opendigger-cli/internal/store"
)

var (
	repoIndicators   []string
	repoIgnores      []string
	repoUniformQuery = cli.NewQueryValue(converter)
	repoNoCache      bool
)

var repoCmd = &cobra.Command{
	Use:   "repo <owner>/<name>",
	Short: "Select indicators for a GitHub repository",
	Long: `Validates the repository and the requested indicator tokens, then prints
the accepted indicator selection.

Indicator tokens are either a bare name (openrank) or a name with a filtering
query (project_openrank_network:start=2020-01,end=2020-12). Tokens that fail
validation abort the command; nothing is partially accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, name, err := cli.SplitRepo(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		exists, err := checkExists(ctx, store.KindRepo, owner+"/"+name, func(c *github.Checker) (bool, error) {
			return c.RepoExists(ctx, owner, name)
		}, repoNoCache)
		if err != nil {
			return err
		}
		if !exists {
			return oderror.Newf("repository %s/%s not found on GitHub", owner, name).
				WithCode(oderror.CodeNotFound).
				WithDetail("owner", owner).
				WithDetail("name", name)
		}

		selection, err := selectIndicators(repoIndicators, repoIgnores, indicator.TypeRepo, repoUniformQuery)
		if err != nil {
			return err
		}

		fmt.Fprint(os.Stdout, display.Selection(owner+"/"+name, selection))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(repoCmd)

	repoCmd.Flags().StringArrayVarP(&repoIndicators, "indicator", "i", nil, "indicator token, NAME or NAME:QUERY (repeatable)")
	repoCmd.Flags().StringArrayVar(&repoIgnores, "ignore", nil, "indicator name to exclude (repeatable)")
	repoCmd.Flags().Var(repoUniformQuery, "uniform-query", "query applied to every indicator that accepts one")
	repoCmd.Flags().BoolVar(&repoNoCache, "no-cache", false, "bypass the existence check cache")

	repoCmd.RegisterFlagCompletionFunc("indicator", indicatorCompletion)
	repoCmd.RegisterFlagCompletionFunc("ignore", bareIndicatorCompletion)
}

// checkExists runs an existence check through the cache when enabled
func checkExists(ctx context.Context, kind store.CheckKind, key string, remote func(*github.Checker) (bool, error), noCache bool) (bool, error) {
	logger := odlog.GetDefault().WithField("component", "existence-check")

	var cache *store.CheckStore
	if cfg.Cache.Enabled && !noCache {
		var err error
		cache, err = store.Open(store.Options{
			Path: cfg.Cache.Path,
			TTL:  cfg.Cache.TTL.Duration,
		})
		if err != nil {
			// A broken cache degrades to a remote check
			logger.WarnWithErr("check cache unavailable", err)
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	if cache != nil {
		present, found, err := cache.Get(ctx, kind, key)
		if err != nil {
			logger.WarnWithErr("check cache read failed", err)
		} else if found {
			logger.Debug("existence check served from cache", odlog.Fields{
				"kind": string(kind),
				"key":  key,
			})
			return present, nil
		}
	}

	checker := github.NewChecker(github.Config{
		APIBase: cfg.GitHub.APIBase,
		Token:   cfg.GitHub.Token,
		Timeout: cfg.GitHub.Timeout.Duration,
	})

	present, err := remote(checker)
	if err != nil {
		return false, err
	}

	if cache != nil {
		if err := cache.Put(ctx, kind, key, present); err != nil {
			logger.WarnWithErr("check cache write failed", err)
		}
	}
	return present, nil
}

// selectIndicators converts every indicator token against the final sibling
// snapshot, drops ignored names, and returns the accepted selection. Any
// conversion failure aborts the whole selection.
func selectIndicators(tokens, ignores []string, entity indicator.Type, uniform *cli.QueryValue) ([]display.SelectionItem, error) {
	ignored := make(map[string]bool, len(ignores))
	for _, token := range ignores {
		name, err := converter.ConvertBare(token)
		if err != nil {
			return nil, err
		}
		ignored[name] = true
	}

	siblings := indicator.Siblings{UniformQuery: uniform.IsSet()}

	var selection []display.SelectionItem
	for _, token := range tokens {
		conv, err := converter.ConvertFiltered(token, siblings)
		if err != nil {
			return nil, err
		}
		if ignored[conv.Name] {
			continue
		}

		def, err := registry.Get(conv.Name)
		if err != nil {
			return nil, err
		}
		if def.Type != entity {
			return nil, oderror.Newf("%s is a %s indicator, not a %s indicator", conv.Name, def.Type, entity).
				WithCode(oderror.CodeUnknownIndicator).
				WithDetail("name", conv.Name).
				WithDetail("expected_type", string(entity))
		}

		item := display.SelectionItem{Name: conv.Name}
		switch {
		case conv.Query != nil:
			item.Query = conv.Query.String()
		case uniform.IsSet() && def.AcceptsQuery:
			item.Query = uniform.Query().String()
		}
		selection = append(selection, item)
	}
	return selection, nil
}
