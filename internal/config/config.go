package config

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"pkg.aki.moe/rolebind/internal/config/hook"
	"pkg.aki.moe/rolebind/internal/rolespec"
	"pkg.aki.moe/rolebind/internal/storage/entity"
)

type Config struct {
	Discord struct {
		Auth  string
		Guild entity.Snowflake
	}

	Embed struct {
		DefaultColor rolespec.Color
	}

	Storage struct {
		PostgresDSN string
	}

	Logging struct {
		Level zapcore.Level
	}

	Api struct {
		Port uint16
	}
}

func Read() (*Config, error) {
	v := viper.New()
	configureEnv(v)
	configureLocation(v)
	return readUnmarshalConfig(v)
}

func configureEnv(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvPrefix("conf")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func configureLocation(v *viper.Viper) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
}

func readUnmarshalConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	c := &Config{}
	if err := v.Unmarshal(c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		hook.Color(), hook.Level(),
	))); err != nil {
		return nil, err
	}
	return c, nil
}
