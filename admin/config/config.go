package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookstore-admin/pkg/kafka"
	"github.com/Astemirdum/bookstore-admin/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"ADMIN_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"ADMIN_HTTP_PORT" default:"3000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

type RecordStoreHTTPServer struct {
	Host string `envconfig:"RECORD_STORE_HOST" default:"localhost"`
	Port string `envconfig:"RECORD_STORE_PORT" default:"9999"`
}

type View struct {
	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"300ms"`
	Timezone       string        `envconfig:"TIMEZONE" default:"Asia/Ho_Chi_Minh"`
}

type Config struct {
	Server      HTTPServer `yaml:"server"`
	RecordStore RecordStoreHTTPServer
	View        View
	Kafka       kafka.Config
	Log         logger.Log `yaml:"log"`
}

// Location resolves the view timezone, falling back to the process local zone.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.View.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
