package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
把init config跟read config分開
init : 需要設置viper watch 與 onConfigChange
read : 一般讀寫 需要使用讀寫鎖
*/
var config_singleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	ModulerName string `mapstructure:"MODULER_NAME"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	DbName string `mapstructure:"POSTGRES_DB"`
	DbHost string `mapstructure:"POSTGRES_HOST"`
	DbPort string `mapstructure:"POSTGRES_PORT"`
	DbUser string `mapstructure:"POSTGRES_USER"`
	DbPas  string `mapstructure:"POSTGRES_PASSWORD"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`
	RedisPas  string `mapstructure:"REDIS_PASSWORD"`

	KafkaBrokers    string `mapstructure:"KAFKA_BROKERS"`
	EmailTopic      string `mapstructure:"EMAIL_TOPIC"`
	EmailGroup      string `mapstructure:"EMAIL_CONSUMER_GROUP"`
	AuthTokenKey    string `mapstructure:"AUTH_TOKEN_KEY"`
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	StripePublicKey string `mapstructure:"STRIPE_PUBLIC_KEY"`
	StripeWebhookSc string `mapstructure:"STRIPE_WEBHOOK_SECRET"`

	SmtpSenderName string `mapstructure:"SMTP_SENDER_NAME"`
	SmtpAuthKey    string `mapstructure:"SMTP_AUTH_KEY"`
	SmtpHost       string `mapstructure:"SMTP_HOST"`
	SmtpPort       string `mapstructure:"SMTP_PORT"`
	EmailAccount   string `mapstructure:"EMAIL_ACCOUNT"`

	MediaRoot string `mapstructure:"MEDIA_ROOT"`
}

// GetKafkaBrokers 逗號分隔 => slice
func (c *Config) GetKafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func GetConfig() *Config {
	initConfig()
	config_singleton.mu.RLock()
	defer config_singleton.mu.RUnlock()
	return config_singleton.Config
}

func initConfig() {
	if config_singleton == nil {
		muonce.Do(func() {
			config_singleton = &ConfigSingleTon{}
			if cf, err := loadConfig(); err == nil {
				config_singleton.Config = cf
			} else {
				log.Fatal("error read shopcenter config")
			}
			viper.WatchConfig()
			viper.OnConfigChange(func(e fsnotify.Event) {
				if cf, err := loadConfig(); err == nil {
					config_singleton.Config = cf
				} else {
					log.Panic("failed to reload config file")
				}
			})
		})
	}
}

/*
單純回傳錯誤 由外部決定要不要Fatal, 畢竟有可能有替代方案
*/
func loadConfig() (cf *Config, err error) {
	config_singleton.mu.Lock()
	defer config_singleton.mu.Unlock()

	cf = &Config{}
	root := os.Getenv("SHOPCENTER_ROOT")
	if root == "" {
		root = "."
	}
	viper.SetConfigFile(fmt.Sprintf("%s/.env", root))
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(cf)
	if err != nil {
		return
	}
	return
}
