package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nutritrack/models"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is populated from environment variables; a local .env file is
// loaded first when present.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	JWTSecret string `env:"JWT_SECRET,required"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

var DB *gorm.DB

func InitDB(cfg *Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.FoodItem{},
		&models.FoodEntry{},
		&models.DailyProgress{},
	)
	if err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	return seedFoodCatalog(DB)
}

// seedFoodCatalog inserts the starter per-unit catalog. Existing slugs are
// left alone so manual corrections survive restarts (logged entries keep
// their write-time snapshot either way).
func seedFoodCatalog(db *gorm.DB) error {
	items := []models.FoodItem{
		{Slug: "egg", Name: "Egg", Unit: "1", Calories: 70, Protein: 6, Carbs: 1, Fats: 5},
		{Slug: "rice", Name: "Rice (1 cup)", Unit: "1 cup", Calories: 210, Protein: 4, Carbs: 45, Fats: 1},
		{Slug: "chapati", Name: "Chapati", Unit: "1", Calories: 120, Protein: 3, Carbs: 18, Fats: 3},
		{Slug: "paneer", Name: "Paneer (100g)", Unit: "100g", Calories: 296, Protein: 18, Carbs: 8, Fats: 22},
		{Slug: "banana", Name: "Banana", Unit: "1", Calories: 89, Protein: 1, Carbs: 23, Fats: 0},
	}

	for _, item := range items {
		var existing models.FoodItem
		err := db.Where("slug = ?", item.Slug).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&item).Error; err != nil {
				return fmt.Errorf("seed food catalog: %w", err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("seed food catalog: %w", err)
		}
	}
	return nil
}
