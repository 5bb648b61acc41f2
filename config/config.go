package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Auth      Auth
	Analytics Analytics
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	JWTSecret string
}

// Analytics holds the tuning constants of the derived-statistics layer.
// Windows, risk tier boundaries, streak horizon and the LGS target score are
// configuration, not magic numbers in the aggregators.
type Analytics struct {
	PracticeTrendWindow int
	ExamTrendWindow     int
	RiskHighAverage     float64
	RiskMidAverage      float64
	RiskMaxDecline      float64
	StreakHorizonDays   int
	TargetScore         float64
	ScoreScale          float64
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("TREND_WINDOW_PRACTICE", 5)
	viper.SetDefault("TREND_WINDOW_EXAM", 3)
	viper.SetDefault("RISK_HIGH_AVERAGE", 70.0)
	viper.SetDefault("RISK_MID_AVERAGE", 50.0)
	viper.SetDefault("RISK_MAX_DECLINE", 10.0)
	viper.SetDefault("STREAK_HORIZON_DAYS", 30)
	viper.SetDefault("TARGET_SCORE", 480.0)
	viper.SetDefault("SCORE_SCALE", 500.0)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Analytics.PracticeTrendWindow = viper.GetInt("TREND_WINDOW_PRACTICE")
	config.Analytics.ExamTrendWindow = viper.GetInt("TREND_WINDOW_EXAM")
	config.Analytics.RiskHighAverage = viper.GetFloat64("RISK_HIGH_AVERAGE")
	config.Analytics.RiskMidAverage = viper.GetFloat64("RISK_MID_AVERAGE")
	config.Analytics.RiskMaxDecline = viper.GetFloat64("RISK_MAX_DECLINE")
	config.Analytics.StreakHorizonDays = viper.GetInt("STREAK_HORIZON_DAYS")
	config.Analytics.TargetScore = viper.GetFloat64("TARGET_SCORE")
	config.Analytics.ScoreScale = viper.GetFloat64("SCORE_SCALE")

	log.Info().Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
