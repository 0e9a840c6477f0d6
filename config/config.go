package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type consumers struct {
	ActivityGroup string `mapstructure:"activity_group"`
}

type topics struct {
	ClientEvents string `mapstructure:"client_events"`
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topics             topics    `mapstructure:"topics"`
	Consumers          consumers `mapstructure:"consumers"`
}

type catalog struct {
	Path         string `mapstructure:"path"`
	PageSize     int    `mapstructure:"page_size"`
	MaxPrice     int64  `mapstructure:"max_price"`
	SuggestLimit int    `mapstructure:"suggest_limit"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	ShippingFee    int64      `mapstructure:"shipping_fee"`
	Catalog        catalog    `mapstructure:"catalog"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%q
	ShippingFee=%d

	Catalog:
	Path=%q
	PageSize=%d
	MaxPrice=%d
	SuggestLimit=%d

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		ClientEvents=%q
	Consumers:
		ActivityGroup=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SQLDB,
		c.ShippingFee,
		c.Catalog.Path,
		c.Catalog.PageSize,
		c.Catalog.MaxPrice,
		c.Catalog.SuggestLimit,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.ClientEvents,
		c.Broker.Consumers.ActivityGroup,
	)
}
