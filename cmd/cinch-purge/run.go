// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yukondude/Cinch/config"
	"github.com/yukondude/Cinch/metrics"
	"github.com/yukondude/Cinch/service/purge"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Mail deletion reminders to users with downloads older than 20 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), opts.cfg, purge.CheckAction)
		},
	}
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Remove files older than 30 days and empty directories, mail failures to the admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), opts.cfg, purge.DeleteAction)
		},
	}
}

func runAction(ctx context.Context, cfg *config.Config, action string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := notifyContext(ctx)
	defer stop()

	if action == purge.CheckAction {
		err = a.purger.Check(ctx)
	} else {
		err = a.purger.Delete(ctx)
	}
	pushMetrics(cfg)
	return err
}

func pushMetrics(cfg *config.Config) {
	if cfg.Monitoring.PushGatewayUrl == "" {
		return
	}
	if err := metrics.Push(cfg.Monitoring.PushGatewayUrl, cfg.Technical.InstanceId, prometheus.DefaultGatherer); err != nil {
		log.Warnf("Metrics were not pushed: %v", err)
	}
}
