package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	CEP struct {
		BaseURL string
	}
	MQ struct {
		User          string
		Password      string
		Vhost         string
		Host          string
		AmqpPort      string
		Exchange      string
		ExchangeType  string
		QueueName     string
		InterestQueue string
	}

	Config struct {
		App   APP
		DB    DB
		Redis Redis
		CEP   CEP
		MQ    MQ
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func Load() Config {
	app := APP{
		Name:      getEnv("SERVICE_NAME", "materialshare"),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", ""),
		Env:       getEnv("SERVICE_ENV", ""),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	rd := Redis{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}
	cep := CEP{
		BaseURL: getEnv("CEP_BASE_URL", "https://viacep.com.br/ws"),
	}
	mq := MQ{
		User:          getEnv("RABBITMQ_USER", ""),
		Password:      getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:         getEnv("RABBITMQ_VHOST", ""),
		Host:          getEnv("RABBITMQ_HOST", ""),
		AmqpPort:      getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:      getEnv("RABBITMQ_EXCHANGE", "materialshare.donations"),
		ExchangeType:  getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:     getEnv("RABBITMQ_QUEUE_NAME", "donation-events"),
		InterestQueue: getEnv("RABBITMQ_INTEREST_QUEUE", "donation-interests"),
	}

	return Config{
		App:   app,
		DB:    db,
		Redis: rd,
		CEP:   cep,
		MQ:    mq,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
