package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SumanKr7/CosmoXclub/authn"
	"github.com/SumanKr7/CosmoXclub/config"
	"github.com/SumanKr7/CosmoXclub/identity"
	"github.com/SumanKr7/CosmoXclub/images"
	"github.com/SumanKr7/CosmoXclub/middleware"
	"github.com/SumanKr7/CosmoXclub/notify"
	"github.com/SumanKr7/CosmoXclub/routes"
	"github.com/SumanKr7/CosmoXclub/session"
	"github.com/SumanKr7/CosmoXclub/store"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	ctx := context.Background()
	clients, err := authn.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("firebase init failed")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cookieStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions(session.Name, cookieStore))
	r.Use(middleware.NoCache())

	r.Static("/static", cfg.StaticRoot)

	routes.SetupRoutes(r, routes.Deps{
		Cfg:      cfg,
		Store:    store.NewRTDB(clients.DB),
		Identity: identity.NewClient(cfg.FirebaseAPIKey),
		Verify:   clients,
		Images:   images.NewManager(cfg.StaticRoot),
		Hub:      notify.NewHub(),
	})

	// Back up uploads daily at 2 AM, keep 4 days of backups
	go startDailyBackupAtFixedTime(cfg.StaticRoot, cfg.BackupRoot, 4*24*time.Hour, 2, 0)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// startDailyBackupAtFixedTime copies the upload tree daily at a fixed hour
// and removes backups past the retention window.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Info().Time("next", next).Msg("next image backup scheduled")
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.Error().Err(err).Msg("image backup failed")
		} else {
			log.Info().Str("dest", destDir).Msg("images backed up")
		}

		cleanupOldBackups(backupDir, retention)
	}
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Error().Err(err).Msg("reading backup directory failed")
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Error().Err(err).Str("path", folderPath).Msg("removing old backup failed")
			} else {
				log.Info().Str("path", folderPath).Msg("removed old backup")
			}
		}
	}
}
