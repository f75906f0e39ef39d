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
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yukondude/Cinch/config"
	"github.com/yukondude/Cinch/controller"
	"github.com/yukondude/Cinch/middleware"
	"github.com/yukondude/Cinch/service/purge"
	"github.com/yukondude/Cinch/utils"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run check and delete on their schedules and serve health and metrics endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := notifyContext(cmd.Context())
			defer stop()
			return runServe(ctx, opts.cfg)
		},
	}
}

func notifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

func newRouter(healthController controller.HealthController) http.Handler {
	r := mux.NewRouter().UseEncodedPath()
	r.Use(middleware.PrometheusMiddleware)

	r.HandleFunc("/live", healthController.HandleLiveRequest).Methods(http.MethodGet)
	r.HandleFunc("/ready", healthController.HandleReadyRequest).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(log.StandardLogger()),
		handlers.PrintRecoveryStack(true),
	)(r)
}

func runServe(ctx context.Context, cfg *config.Config) error {
	utils.PrintConfig(*cfg)

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	readyChan := make(chan bool, 1)
	server := &http.Server{
		Addr:              cfg.Technical.ListenAddress,
		Handler:           newRouter(controller.NewHealthController(readyChan)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	scheduler := purge.NewScheduler(ctx, a.purger, cfg.Schedule)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Listening on %s", cfg.Technical.ListenAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server failed")
		}
		return nil
	})
	g.Go(func() error {
		if err := scheduler.Start(); err != nil {
			return err
		}
		readyChan <- true
		<-gctx.Done()
		log.Info("Waiting for running purge jobs to finish")
		<-scheduler.Stop().Done()
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
