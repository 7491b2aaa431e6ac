package config

import (
	"github.com/Artexxx/HR-Employees/library/pg"
	"github.com/Artexxx/HR-Employees/library/yamlenv"
)

type Config struct {
	Storage  StorageConfig     `yaml:"storage"`
	Postgres pg.PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig       `yaml:"kafka"`
	UserAPI  ApiConfig         `yaml:"userAPI"`
}

// StorageConfig selects where the employee slot is kept.
type StorageConfig struct {
	Driver *yamlenv.Env[string] `yaml:"driver"` // file | sqlite | postgres | memory
	Slot   *yamlenv.Env[string] `yaml:"slot"`
	Path   *yamlenv.Env[string] `yaml:"path"` // directory for file, database file for sqlite
}

type KafkaConfig struct {
	Enabled          *yamlenv.Env[bool]   `yaml:"enabled"`
	Bootstrap        *yamlenv.Env[string] `yaml:"bootstrap"`
	ProducerClientID *yamlenv.Env[string] `yaml:"producer_client_id"`
	Topic            *yamlenv.Env[string] `yaml:"topic"`
}

type ApiConfig struct {
	Port *yamlenv.Env[int] `yaml:"port"`
}
