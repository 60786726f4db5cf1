package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabtrainer/internal/app"
	"github.com/heartmarshall/vocabtrainer/internal/config"
	"github.com/heartmarshall/vocabtrainer/pkg/ctxutil"
)

const passwordEnv = "VOCAB_PASSWORD"

type cli struct {
	app     *app.App
	account string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "vocab",
		Short:         "Vocabulary trainer with automatic spreadsheet column detection",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			c.app = app.New(cfg, app.NewLogger(cfg.Log, cmd.ErrOrStderr()))
			cmd.SetContext(ctxutil.WithRunID(cmd.Context(), strings.Split(uuid.NewString(), "-")[0]))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.app != nil {
				c.app.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.account, "account", os.Getenv("VOCAB_ACCOUNT"),
		"account email; the password is read from "+passwordEnv)

	root.AddCommand(
		c.classifyCmd(),
		c.trainCmd(),
		c.importCmd(),
		c.exportCmd(),
		c.addCmd(),
		c.studyCmd(),
		c.markCmd(),
		c.hideCmd(),
		c.unhideAllCmd(),
		c.statsCmd(),
		c.accountCmd(),
		c.migrateCmd(),
	)
	return root
}

// connect opens the database without signing in.
func (c *cli) connect(cmd *cobra.Command) error {
	return c.app.Connect(cmd.Context())
}

// session opens the database and signs in as --account.
func (c *cli) session(cmd *cobra.Command) (context.Context, error) {
	if c.account == "" {
		return nil, errors.New("--account is required")
	}
	if err := c.connect(cmd); err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	acc, err := c.app.Accounts.Authenticate(ctx, c.account, os.Getenv(passwordEnv))
	if err != nil {
		return nil, fmt.Errorf("sign in as %s: %w", c.account, err)
	}
	return ctxutil.WithAccountID(ctx, acc.ID), nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid word id %q: %w", s, err)
	}
	return id, nil
}
