package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	config "github.com/thirdweb-dev/chainscan/configs"
	"github.com/thirdweb-dev/chainscan/internal/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only HTTP API",
	Args:  cobra.NoArgs,
	RunE:  RunServe,
}

func init() {
	serveCmd.Flags().String("api-host", "", "Host to listen on")
	serveCmd.Flags().Int("api-port", 0, "Port to listen on")
	viper.BindPFlag("api.host", serveCmd.Flags().Lookup("api-host"))
	viper.BindPFlag("api.port", serveCmd.Flags().Lookup("api-port"))
}

func RunServe(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Cfg.API.Host, config.Cfg.API.Port),
		Handler: handlers.NewRouter(db, handlers.Limits{
			MaxStatsSamples: config.Cfg.API.MaxStatsSamples,
			MaxStateSlots:   config.Cfg.API.MaxStateSlots,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("API server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down API server: %w", err)
	}
	return nil
}
