// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/app"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
)

type globalOptions struct {
	configPath string
	json       bool
	logLevel   string
}

// commandContext loads configuration and builds the pipeline at most once
// per invocation.
type commandContext struct {
	opts *globalOptions

	configOnce sync.Once
	config     *config.Config
	configErr  error

	appOnce sync.Once
	app     *app.App
	appErr  error
}

func newCommandContext(opts *globalOptions) *commandContext {
	return &commandContext{opts: opts}
}

func (c *commandContext) initLogging(w io.Writer) {
	logging.Init(logging.Config{
		Level:  c.opts.logLevel,
		Format: "console",
		Output: w,
	})
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.LoadFile(strings.TrimSpace(c.opts.configPath))
	})
	return c.config, c.configErr
}

// ensureApp loads the catalog and builds the index.
func (c *commandContext) ensureApp(cmd *cobra.Command) (*app.App, error) {
	c.appOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.appErr = err
			return
		}
		c.app, c.appErr = app.Build(cmd.Context(), cfg)
	})
	return c.app, c.appErr
}

func (c *commandContext) close() error {
	if c.app == nil {
		return nil
	}
	return c.app.Close()
}

func (c *commandContext) jsonOutput() bool {
	return c.opts.json
}
