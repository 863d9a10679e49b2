package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/simrs/simrs/internal/config"
	"github.com/simrs/simrs/internal/domain/aktivitas"
	"github.com/simrs/simrs/internal/domain/dashboard"
	"github.com/simrs/simrs/internal/domain/diagnostik"
	"github.com/simrs/simrs/internal/domain/farmasi"
	"github.com/simrs/simrs/internal/domain/identity"
	"github.com/simrs/simrs/internal/domain/jadwal"
	"github.com/simrs/simrs/internal/domain/pasien"
	"github.com/simrs/simrs/internal/domain/rawatinap"
	"github.com/simrs/simrs/internal/domain/rekammedis"
	"github.com/simrs/simrs/internal/platform/auth"
	"github.com/simrs/simrs/internal/platform/db"
	"github.com/simrs/simrs/internal/platform/middleware"
	"github.com/simrs/simrs/internal/platform/satusehat"
)

// pasienResolver lets the scheduling, medical record, inpatient, pharmacy and
// diagnostics services look up a patient name without importing the pasien
// package directly.
type pasienResolver struct {
	svc *pasien.Service
}

func (r pasienResolver) NamaPasien(ctx context.Context, id int64) (string, error) {
	p, err := r.svc.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return p.Nama, nil
}

// rekamMedisResolver maps a medical record id to its patient for the pharmacy
// activity trail.
type rekamMedisResolver struct {
	svc *rekammedis.Service
}

func (r rekamMedisResolver) PasienIDForRekamMedis(ctx context.Context, id int64) (int64, error) {
	rm, err := r.svc.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return rm.PasienID, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "simrs-server",
		Short: "SIMRS hospital information system API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the SIMRS API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required for migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required for migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

// repos bundles one repository per entity so the serve command can build the
// whole set from either backend in one place.
type repos struct {
	aktivitas    aktivitas.Repository
	users        identity.Repository
	pasien       pasien.Repository
	jadwal       jadwal.Repository
	rekamMedis   rekammedis.Repository
	rawatInap    rawatinap.Repository
	obat         farmasi.ObatRepository
	resep        farmasi.ResepRepository
	laboratorium diagnostik.Repository
	radiologi    diagnostik.Repository
}

func memoryRepos() repos {
	return repos{
		aktivitas:    aktivitas.NewMemRepo(),
		users:        identity.NewMemRepo(),
		pasien:       pasien.NewMemRepo(),
		jadwal:       jadwal.NewMemRepo(),
		rekamMedis:   rekammedis.NewMemRepo(),
		rawatInap:    rawatinap.NewMemRepo(),
		obat:         farmasi.NewObatMemRepo(),
		resep:        farmasi.NewResepMemRepo(),
		laboratorium: diagnostik.NewMemRepo(),
		radiologi:    diagnostik.NewMemRepo(),
	}
}

func postgresRepos(pool *pgxpool.Pool) repos {
	return repos{
		aktivitas:    aktivitas.NewPGRepo(pool),
		users:        identity.NewPGRepo(pool),
		pasien:       pasien.NewPGRepo(pool),
		jadwal:       jadwal.NewPGRepo(pool),
		rekamMedis:   rekammedis.NewPGRepo(pool),
		rawatInap:    rawatinap.NewPGRepo(pool),
		obat:         farmasi.NewObatPGRepo(pool),
		resep:        farmasi.NewResepPGRepo(pool),
		laboratorium: diagnostik.NewPGRepo(pool, diagnostik.Laboratorium),
		radiologi:    diagnostik.NewPGRepo(pool, diagnostik.Radiologi),
	}
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	var pool *pgxpool.Pool
	var r repos
	switch cfg.Storage {
	case "postgres":
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")
		r = postgresRepos(pool)
	default:
		logger.Info().Msg("using in-memory storage")
		r = memoryRepos()
	}

	// Services. The activity recorder fans into every domain service.
	aktivitasSvc := aktivitas.NewService(r.aktivitas, logger)
	identitySvc := identity.NewService(r.users, aktivitasSvc)
	pasienSvc := pasien.NewService(r.pasien, aktivitasSvc)
	namaPasien := pasienResolver{svc: pasienSvc}
	jadwalSvc := jadwal.NewService(r.jadwal, namaPasien, aktivitasSvc)
	rekamMedisSvc := rekammedis.NewService(r.rekamMedis, namaPasien, aktivitasSvc)
	rawatInapSvc := rawatinap.NewService(r.rawatInap, namaPasien, aktivitasSvc)
	farmasiSvc := farmasi.NewService(r.obat, r.resep, namaPasien,
		rekamMedisResolver{svc: rekamMedisSvc}, aktivitasSvc)
	labSvc := diagnostik.NewService(diagnostik.Laboratorium, r.laboratorium, namaPasien, aktivitasSvc)
	radSvc := diagnostik.NewService(diagnostik.Radiologi, r.radiologi, namaPasien, aktivitasSvc)
	dashboardSvc := dashboard.NewService(dashboard.RepoCounters{
		Pasien:    r.pasien,
		Jadwal:    r.jadwal,
		RawatInap: r.rawatInap,
		Users:     r.users,
	}, logger)

	if err := identitySvc.SeedDemoUsers(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to seed demo users")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	store := auth.NewStore(cfg.SessionSecret, cfg.IsProduction())
	e.Use(auth.Middleware(store))

	if pool != nil {
		e.GET("/health", db.HealthHandler(pool))
	} else {
		e.GET("/health", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
		})
	}

	// The auth flow stays open; everything else requires a session.
	open := e.Group("/api")
	api := e.Group("/api", auth.RequireLogin())

	identity.NewHandler(identitySvc).RegisterRoutes(open, api)
	pasien.NewHandler(pasienSvc).RegisterRoutes(api)
	jadwal.NewHandler(jadwalSvc).RegisterRoutes(api)
	rekammedis.NewHandler(rekamMedisSvc).RegisterRoutes(api)
	rawatinap.NewHandler(rawatInapSvc).RegisterRoutes(api)
	farmasi.NewHandler(farmasiSvc).RegisterRoutes(api)
	diagnostik.NewHandler(labSvc).RegisterRoutes(api)
	diagnostik.NewHandler(radSvc).RegisterRoutes(api)
	aktivitas.NewHandler(aktivitasSvc).RegisterRoutes(api)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api)
	satusehat.NewHandler().RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("storage", cfg.Storage).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
		return err
	}
	return nil
}
