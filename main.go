package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/StxvenDev/portfolio/internal/config"
	"github.com/StxvenDev/portfolio/internal/contact"
)

var (
	cfgFile   string
	servePort string
	exportDir string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Steven Bossio's portfolio website",
	Long: `Serves the portfolio pages (home, certifications, skills and projects)
or exports them as a directory of static HTML files.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}
		return serve(cmd.Context(), cfg)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every page to static HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		r, err := newRouter(cfg, contact.NewSimulatedSubmitter(cfg.ContactDelay))
		if err != nil {
			return err
		}
		n, err := exportSite(r, exportDir)
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pages to %s\n", n, exportDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yaml", "config file path")
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides PORT)")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "dist", "output directory")
	rootCmd.AddCommand(serveCmd, exportCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	gin.SetMode(cfg.GinMode)
	return cfg, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	r, err := newRouter(cfg, contact.NewSimulatedSubmitter(cfg.ContactDelay))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Portfolio listening on %s (mode=%s)", srv.Addr, gin.Mode())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
