package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cloudpower/site-backend/internal/config"
	"github.com/cloudpower/site-backend/internal/database"
	"github.com/cloudpower/site-backend/internal/migration"
	pkglogger "github.com/cloudpower/site-backend/pkg/logger"
	"gorm.io/gorm"
)

func main() {
	// CLI flags
	configPath := flag.String("config", defaultConfigPath(), "config file path")
	seed := flag.Bool("seed", false, "insert the default admin and singleton rows when missing")
	verify := flag.Bool("verify", false, "print the row count of every table and exit")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	loaded := config.LoadDotEnv()
	pkglogger.InitStructured("local")
	log := pkglogger.GetLogger()
	log.Info().Strs("env_files", loaded).Str("config", *configPath).Msg("migrate")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.Open(cfg.Database, *verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get underlying DB")
	}
	defer sqlDB.Close()

	if *verify {
		if err := runVerify(db); err != nil {
			log.Fatal().Err(err).Msg("verify failed")
		}
		return
	}

	if err := migration.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Int("tables", len(migration.Models())).Msg("schema up to date")

	if *seed {
		if err := migration.Seed(db); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		log.Info().Msg("seed complete")
	}
}

func defaultConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

// runVerify prints one line per table; missing tables are reported, not fatal
func runVerify(db *gorm.DB) error {
	for _, model := range migration.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return err
		}
		table := stmt.Schema.Table

		if !db.Migrator().HasTable(model) {
			fmt.Printf("%-20s missing\n", table)
			continue
		}
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			return fmt.Errorf("count %s: %w", table, err)
		}
		fmt.Printf("%-20s %d\n", table, count)
	}
	return nil
}
