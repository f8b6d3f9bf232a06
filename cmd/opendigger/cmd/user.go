package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/X-lab2017/opendigger-cli/internal/cli"
	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	"github.com/X-lab2017/opendigger-cli/internal/display"
	"github.com/X-lab2017/opendigger-cli/internal/github"
	"github.com/X-lab2017/opendigger-cli/internal/indicator"
	"github.com/X-lab2017/opendigger-cli/internal/store"
)

var (
	userIndicators   []string
	userIgnores      []string
	userUniformQuery = cli.NewQueryValue(converter)
	userNoCache      bool
)

var userCmd = &cobra.Command{
	Use:   "user <login>",
	Short: "Select indicators for a GitHub user",
	Long: `Validates the user and the requested indicator tokens, then prints the
accepted indicator selection. Tokens that fail validation abort the command;
nothing is partially accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		login := args[0]
		if login == "" {
			return oderror.New("user login must not be empty").
				WithCode(oderror.CodeMalformedToken)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		exists, err := checkExists(ctx, store.KindUser, login, func(c *github.Checker) (bool, error) {
			return c.UserExists(ctx, login)
		}, userNoCache)
		if err != nil {
			return err
		}
		if !exists {
			return oderror.Newf("user %s not found on GitHub", login).
				WithCode(oderror.CodeNotFound).
				WithDetail("login", login)
		}

		selection, err := selectIndicators(userIndicators, userIgnores, indicator.TypeUser, userUniformQuery)
		if err != nil {
			return err
		}

		fmt.Fprint(os.Stdout, display.Selection(login, selection))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.Flags().StringArrayVarP(&userIndicators, "indicator", "i", nil, "indicator token, NAME or NAME:QUERY (repeatable)")
	userCmd.Flags().StringArrayVar(&userIgnores, "ignore", nil, "indicator name to exclude (repeatable)")
	userCmd.Flags().Var(userUniformQuery, "uniform-query", "query applied to every indicator that accepts one")
	userCmd.Flags().BoolVar(&userNoCache, "no-cache", false, "bypass the existence check cache")

	userCmd.RegisterFlagCompletionFunc("indicator", indicatorCompletion)
	userCmd.RegisterFlagCompletionFunc("ignore", bareIndicatorCompletion)
}
