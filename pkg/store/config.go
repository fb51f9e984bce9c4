package store

import (
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names accepted by the "backend" config key.
const (
	BackendDiskv  = "diskv"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config interface {
	Backend() string
	BasePath() string
	Prefix() string
	RedisAddr() string
	RedisDB() int
}

// LoadConfig reads .todos.yaml from $TODOS_CONFIG_PATH or the working
// directory, with TODOS_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("path", "~/.todos.db")
	v.SetDefault("prefix", "")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetConfigName(".todos") // .yaml is implicit
	v.SetEnvPrefix("TODOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TODOS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Kind:      v.GetString("backend"),
		Path:      path,
		KeyPrefix: v.GetString("prefix"),
		Redis: redisConfig{
			Addr: v.GetString("redis.addr"),
			DB:   v.GetInt("redis.db"),
		},
	}, nil
}

type redisConfig struct {
	Addr string `json:"addr"`
	DB   int    `json:"db"`
}

type fileConfig struct {
	Kind      string      `json:"backend"`
	Path      string      `json:"path"`
	KeyPrefix string      `json:"prefix"`
	Redis     redisConfig `json:"redis"`
}

func (f *fileConfig) Backend() string {
	return f.Kind
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Prefix() string {
	return f.KeyPrefix
}

func (f *fileConfig) RedisAddr() string {
	return f.Redis.Addr
}

func (f *fileConfig) RedisDB() int {
	return f.Redis.DB
}
