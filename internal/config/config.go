// config предоставляет структуру конфигурации pokedex-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	DB        DBConfig        `yaml:"db"`
	PokeAPI   PokeAPIConfig   `yaml:"pokeapi"`
	Limits    LimitsConfig    `yaml:"limits"`
	Admin     AdminConfig     `yaml:"admin"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// PokeAPIConfig — параметры внешнего каталога PokeAPI.
type PokeAPIConfig struct {
	BaseURL string `yaml:"base_url" env:"POKEAPI_BASE_URL" env-default:"https://pokeapi.co/api/v2"`
	// Размер фиксированного ростера оригинальных покемонов.
	RosterLimit int           `yaml:"roster_limit" env:"POKEAPI_ROSTER_LIMIT" env-default:"151"`
	Timeout     time.Duration `yaml:"timeout" env:"POKEAPI_TIMEOUT" env-default:"15s"`
	// Размер пачки конкурентных запросов деталей при сидировании.
	FetchBatchSize int `yaml:"fetch_batch_size" env:"POKEAPI_FETCH_BATCH_SIZE" env-default:"25"`
	// Потолок одновременных запросов деталей внутри пачки.
	Concurrency int `yaml:"concurrency" env:"POKEAPI_CONCURRENCY" env-default:"10"`
	// Размер пачки upsert-вставки в БД.
	InsertBatchSize int `yaml:"insert_batch_size" env:"POKEAPI_INSERT_BATCH_SIZE" env-default:"50"`
}

// LimitsConfig — серверные лимиты на выдачу.
type LimitsConfig struct {
	// Применяется при запросе без pageSize.
	DefaultPageSize int `yaml:"default_page_size" env:"DEFAULT_PAGE_SIZE" env-default:"18"`
	// Верхняя граница для pageSize.
	MaxPageSize int `yaml:"max_page_size" env:"MAX_PAGE_SIZE" env-default:"100"`
	// Максимальная длина поисковой строки.
	SearchMaxLen int `yaml:"search_max_len" env:"SEARCH_MAX_LEN" env-default:"60"`
}

// AdminConfig — секрет для админ-операций (POST/DELETE/refresh).
// Пустой ключ означает, что все админ-запросы отклоняются.
type AdminConfig struct {
	APIKey string `yaml:"api_key" env:"ADMIN_API_KEY"`
}

// RateLimitConfig — лимит на принудительный refresh.
// RedisURL пустой — используется process-local лимитер (только для single-instance).
type RateLimitConfig struct {
	MaxRequests int           `yaml:"max_requests" env:"RATE_LIMIT_MAX" env-default:"3"`
	Window      time.Duration `yaml:"window" env:"RATE_LIMIT_WINDOW" env-default:"10m"`
	RedisURL    string        `yaml:"redis_url" env:"REDIS_URL"`
}

// TimeoutConfig — таймауты сервиса.
// Request должен вмещать синхронное сидирование на холодном старте.
type TimeoutConfig struct {
	Request time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"120s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.PokeAPI.BaseURL == "" {
		return fmt.Errorf("pokeapi.base_url is required")
	}
	if c.PokeAPI.RosterLimit <= 0 {
		return fmt.Errorf("pokeapi.roster_limit must be > 0")
	}
	if c.PokeAPI.FetchBatchSize <= 0 || c.PokeAPI.InsertBatchSize <= 0 {
		return fmt.Errorf("pokeapi batch sizes must be > 0")
	}
	if c.PokeAPI.Concurrency <= 0 {
		return fmt.Errorf("pokeapi.concurrency must be > 0")
	}
	if c.Limits.DefaultPageSize <= 0 {
		return fmt.Errorf("limits.default_page_size must be > 0")
	}
	if c.Limits.MaxPageSize <= 0 {
		return fmt.Errorf("limits.max_page_size must be > 0")
	}
	if c.Limits.DefaultPageSize > c.Limits.MaxPageSize {
		return fmt.Errorf("limits.default_page_size must be <= limits.max_page_size")
	}
	if c.Limits.SearchMaxLen <= 0 {
		return fmt.Errorf("limits.search_max_len must be > 0")
	}
	if c.RateLimit.MaxRequests <= 0 {
		return fmt.Errorf("rate_limit.max_requests must be > 0")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be > 0")
	}
	return nil
}
