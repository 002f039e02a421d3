package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookstore-admin/pkg/logger"
	"github.com/Astemirdum/bookstore-admin/pkg/postgres"
	"github.com/Astemirdum/bookstore-admin/pkg/server"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `envconfig:"RECORD_STORE_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"RECORD_STORE_HTTP_PORT" default:"9999"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

func (s HTTPServer) ServerConfig() server.Config {
	return server.Config{
		Host:         s.Host,
		Port:         s.Port,
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
	}
}

type Config struct {
	Server   HTTPServer
	Database postgres.DB
	Log      logger.Log
}

var (
	once sync.Once
	cfg  Config
)

func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
		fmt.Println(string(jscfg))
	})

	return cfg
}
