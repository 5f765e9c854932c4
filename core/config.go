package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// environments: DEV (local; default), TEST, QA, PROD
const defaultEnv = "DEV"

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "ExamMath")
	Conf.SetDefault("logLevel", "info")
	Conf.SetDefault("rollbarToken", "")
	Conf.SetDefault("codeVersion", "dev")
	Conf.SetDefault("previewTitle", "Предпросмотр заданий")

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = defaultEnv
	}
	Conf.SetDefault("env", env)
	Conf.SetDefault("testMode", env == "TEST")
	Conf.SetEnvPrefix(env)

	root := Getwd()
	if err := loadDotEnv(filepath.Join(root, "config", ".env."+strings.ToLower(env))); err != nil {
		log.Fatalf("config: %v", err)
	}

	// optional config/exammath.yaml, overridden by the environment
	Conf.SetConfigName("exammath")
	Conf.SetConfigType("yaml")
	Conf.AddConfigPath(filepath.Join(root, "config"))
	if err := Conf.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("config: %v", err)
		}
	}
	Conf.AutomaticEnv()
}

// loadDotEnv loads `path` into the process environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	return godotenv.Load(path)
}

// Env returns the upper-cased name of the running environment.
func Env() string {
	return Conf.GetString("env")
}

// Debug reports whether templates and logs should run in their strict, verbose mode.
func Debug() bool {
	return Conf.GetBool("debug") || Conf.GetBool("testMode")
}
