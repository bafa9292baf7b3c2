package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Conf is the process-wide configuration, set up by InitConf.
var Conf *Config

type Config struct {
	AppName  string
	Env      string // DEV (local; default), TEST, QA, PROD
	Debug    bool
	TestMode bool
	Build    string

	FrontendBaseURL string
	AdminEmail      string
	DefaultFrom     string
	SendgridApiKey  string
	RollbarToken    string

	// ActivityLogSize caps the in-memory recent-activity ring.
	ActivityLogSize int
}

func (c *Config) DefaultFromEmail() mail.Address {
	if addr, err := mail.ParseAddress(c.DefaultFrom); err == nil {
		return *addr
	}
	return mail.Address{Name: c.AppName, Address: c.DefaultFrom}
}

func (c *Config) AdminEmailAddress() mail.Address {
	if addr, err := mail.ParseAddress(c.AdminEmail); err == nil {
		return *addr
	}
	return mail.Address{Name: c.AppName + " Admin", Address: c.AdminEmail}
}

// InitConf loads configuration from defaults, an optional config/.env.<env>
// file and environment variables (prefixed with the current env name).
func InitConf() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Darasa")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("adminEmail", "admin@localhost")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("activityLogSize", 10)

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		AppName:         v.GetString("appName"),
		Env:             env,
		Debug:           v.GetBool("debug"),
		TestMode:        v.GetBool("testMode"),
		Build:           v.GetString("build"),
		FrontendBaseURL: v.GetString("frontendBaseURL"),
		AdminEmail:      v.GetString("adminEmail"),
		DefaultFrom:     v.GetString("defaultFromEmail"),
		SendgridApiKey:  v.GetString("sendgridApiKey"),
		RollbarToken:    v.GetString("rollbarToken"),
		ActivityLogSize: v.GetInt("activityLogSize"),
	}
	return Conf
}
