package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		CompanyName string `default:"QuickPay Pvt. Ltd." env:"APP_COMPANY_NAME"`
		SwaggerFile string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
		LogLevel    string `default:"info" env:"APP_LOG_LEVEL"`
		BodyLimitKb int64  `default:"1024" env:"APP_BODY_LIMIT_KB"`
	}
	Auth struct {
		JWTSecret             string `default:"quickpay-secret" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"quickpay" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"no-reply@quickpay.com" env:"SMTP_FROM"`
	}
	Users struct {
		OfficeMailDomain string `default:"quickpay.com" env:"USERS_OFFICE_MAIL_DOMAIN"`
	}
	Admin struct {
		Username string `default:"admin" env:"ADMIN_USERNAME"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
		Email    string `default:"admin@quickpay.com" env:"ADMIN_EMAIL"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"payslips" env:"S3_BUCKET_NAME"`
	}
	Redis struct {
		Addr              string `default:"" env:"REDIS_ADDR"`
		Password          string `default:"" env:"REDIS_PASSWORD"`
		DB                int    `default:"0" env:"REDIS_DB"`
		PolicyCacheTTLSec int    `default:"600" env:"REDIS_POLICY_CACHE_TTL_SEC"`
	}
	Leave struct {
		YearlyPaidLimit int `default:"15" env:"LEAVE_YEARLY_PAID_LIMIT"`
	}
	Pdf struct {
		Compress *bool `default:"true" env:"PDF_COMPRESS"`
	}
	Notification struct {
		DispatchIntervalSec int `default:"5" env:"NOTIFICATION_DISPATCH_INTERVAL_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not loaded, using environment only")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
