package pkgconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type viperConfig struct {
	v *viper.Viper
}

// NewViper loads a YAML configuration file and overlays environment
// variables, so `app.server.address.http` can be overridden by
// `APP_SERVER_ADDRESS_HTTP`.
func NewViper(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &viperConfig{v: v}, nil
}

func (c *viperConfig) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *viperConfig) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *viperConfig) Close() error {
	return nil
}
