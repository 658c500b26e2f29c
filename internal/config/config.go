package config

import (
	"fmt"
	"os"
	"time"

	"github.com/SerikaYuzuki/WordApp/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Env        string           `mapstructure:"env" validate:"oneof=development production staging"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Data       DataConfig       `mapstructure:"data"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Quiz       QuizConfig       `mapstructure:"quiz"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token" validate:"required_if=Enabled true"`
}

type StorageConfig struct {
	Driver   string      `mapstructure:"driver" validate:"oneof=postgres sqlite redis memory"`
	Key      string      `mapstructure:"key" validate:"required"`
	SQLite   SQLiteCfg   `mapstructure:"sqlite"`
	Postgres DBConfig    `mapstructure:"postgres"`
	Redis    RedisConfig `mapstructure:"redis"`
}

type SQLiteCfg struct {
	Path string `mapstructure:"path" validate:"required"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
	Prefix   string `mapstructure:"prefix"`
}

type DataConfig struct {
	DefaultWords   string `mapstructure:"default_words" validate:"required"`
	IrregularVerbs string `mapstructure:"irregular_verbs" validate:"required"`
}

type DictionaryConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type QuizConfig struct {
	AutoAdvance time.Duration `mapstructure:"auto_advance" validate:"min=0"`
}

var envBindings = map[string]string{
	"telegram.bot_token":             "BOT_TOKEN",
	"http.addr":                      "HTTP_ADDR",
	"storage.driver":                 "STORAGE_DRIVER",
	"storage.postgres.conn.host":     "DB_HOST",
	"storage.postgres.conn.port":     "DB_PORT",
	"storage.postgres.conn.user":     "DB_USER",
	"storage.postgres.conn.password": "DB_PASSWORD",
	"storage.postgres.conn.name":     "DB_NAME",
	"storage.postgres.conn.ssl":      "DB_SSL",
	"storage.redis.addr":             "REDIS_ADDR",
	"storage.redis.password":         "REDIS_PASSWORD",
}

func Init() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	return Load("configs", configName)
}

func Load(path, name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(name)

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the top-level fields and only the storage backend selected
// by Storage.Driver.
func (c Config) Validate() error {
	if err := validator.ValidateStruct(struct {
		App        AppConfig
		Env        string `validate:"oneof=development production staging"`
		HTTP       HTTPConfig
		Telegram   TelegramConfig
		Driver     string `validate:"oneof=postgres sqlite redis memory"`
		Key        string `validate:"required"`
		Data       DataConfig
		Dictionary DictionaryConfig
		Quiz       QuizConfig
	}{c.App, c.Env, c.HTTP, c.Telegram, c.Storage.Driver, c.Storage.Key, c.Data, c.Dictionary, c.Quiz}); err != nil {
		return err
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		return validator.ValidateStruct(c.Storage.Postgres)
	case DriverSQLite:
		return validator.ValidateStruct(c.Storage.SQLite)
	case DriverRedis:
		return validator.ValidateStruct(c.Storage.Redis)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.key", "SavedWords")
	v.SetDefault("storage.sqlite.path", "wordapp.db")
	v.SetDefault("storage.redis.prefix", "wordapp:")
	v.SetDefault("data.default_words", "data/DefaultWordsData.json")
	v.SetDefault("data.irregular_verbs", "data/IrregularVerbs.json")
	v.SetDefault("dictionary.base_url", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("dictionary.timeout", 5*time.Second)
	v.SetDefault("quiz.auto_advance", 1500*time.Millisecond)
}
