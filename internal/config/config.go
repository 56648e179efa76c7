package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	Telegram struct {
		Token string
		// Главный администратор: всегда одобрен и является админом,
		// вне зависимости от флагов в БД
		AdminID int64 `mapstructure:"admin_id"`
	} `mapstructure:"telegram"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Warehouse struct {
		LowStockThreshold int `mapstructure:"low_stock_threshold"`
	} `mapstructure:"warehouse"`

	Reports struct {
		StartingCash float64 `mapstructure:"starting_cash"`
	} `mapstructure:"reports"`
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// секреты обычно приходят из окружения, а не из файла
	_ = v.BindEnv("telegram.token")
	_ = v.BindEnv("telegram.admin_id")

	v.SetDefault("app.env", "prod")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("warehouse.low_stock_threshold", 10)
	v.SetDefault("reports.starting_cash", 4000)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	if c.Telegram.Token == "" {
		return c, errors.New("telegram token is required (telegram.token or APP_TELEGRAM_TOKEN)")
	}
	if c.Telegram.AdminID == 0 {
		return c, errors.New("telegram.admin_id is required")
	}
	return c, nil
}
