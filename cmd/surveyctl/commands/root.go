// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package commands implements the surveyctl command tree.
package commands

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/survey-builder/cliparse"
	"github.com/danielhkuo/survey-builder/db"
	"github.com/danielhkuo/survey-builder/store"
)

var (
	dbType string
	dbURL  string
	key    string

	conn *sql.DB
	repo *store.Surveys
)

func Execute() error {
	defer closeStore()
	return NewRootCmd().Execute()
}

func closeStore() error {
	if conn == nil {
		return nil
	}
	err := conn.Close()
	conn, repo = nil, nil
	return err
}

// NewRootCmd builds the command tree. Defaults come from the same
// environment variables the server reads.
func NewRootCmd() *cobra.Command {
	defaults := cliparse.Config{DatabaseType: db.TypeSQLite, SurveysKey: store.DefaultSurveysKey}
	if err := cliparse.LoadDotEnv(".env"); err == nil {
		if cfg, err := cliparse.ParseFlags(nil); err == nil {
			defaults = cfg
		}
	}

	root := &cobra.Command{
		Use:           "surveyctl",
		Short:         "Inspect and manage stored surveys",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "templates" {
				return nil
			}
			if dbType == db.TypeMemory {
				return fmt.Errorf("memory storage is per process, nothing to inspect")
			}
			if dbType == db.TypeSQLite && dbURL == "" {
				dbURL = cliparse.DefaultSQLitePath
			}

			c, err := db.Open(dbType, dbURL)
			if err != nil {
				return err
			}
			if err := db.CreateSchema(c); err != nil {
				c.Close()
				return err
			}
			kv, err := store.NewSQL(c, dbType)
			if err != nil {
				c.Close()
				return err
			}
			conn = c
			repo = store.NewSurveys(kv, key)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeStore()
		},
	}

	root.PersistentFlags().StringVar(&dbType, "db-type", defaults.DatabaseType, "database type (sqlite or postgres)")
	root.PersistentFlags().StringVar(&dbURL, "db-url", defaults.DatabaseURL, "database URL")
	root.PersistentFlags().StringVar(&key, "key", defaults.SurveysKey, "storage key holding the survey list")

	root.AddCommand(surveysCmd(), templatesCmd())
	return root
}
