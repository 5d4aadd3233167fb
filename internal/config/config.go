package config

import (
	"github.com/spf13/viper"

	"github.com/stabilitydao/host/internal/logger"
	"github.com/stabilitydao/host/internal/model"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Host      HostConfig      `mapstructure:"host"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// HostConfig Host 引擎实例配置
type HostConfig struct {
	ChainID           string             `mapstructure:"chain_id"`            // 实例部署链 ID
	InitialTimestamp  int64              `mapstructure:"initial_timestamp"`   // 初始模拟区块时间，0 表示启动时的系统时间
	MessengerPoolSize int                `mapstructure:"messenger_pool_size"` // 跨链消息协程池大小
	LoadFixtures      bool               `mapstructure:"load_fixtures"`       // 启动时加载内置 DAO 数据集
	Settings          model.HostSettings `mapstructure:"settings"`            // 平台设置
}

type SchedulerConfig struct {
	Interval int `mapstructure:"interval"` // 秒
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

// GetLevel 实现 logger.LogConfig 接口
func (l LogConfig) GetLevel() string {
	return l.Level
}

// GetOutput 实现 logger.LogConfig 接口
func (l LogConfig) GetOutput() string {
	return l.Output
}

// GetFile 实现 logger.LogConfig 接口
func (l LogConfig) GetFile() string {
	return l.File
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/host")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.dbname", "host")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("host.chain_id", "146")
	viper.SetDefault("host.initial_timestamp", 0)
	viper.SetDefault("host.messenger_pool_size", 8)
	viper.SetDefault("host.load_fixtures", true)
	viper.SetDefault("scheduler.interval", 60)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 平台设置默认值
	defaults := model.DefaultHostSettings()
	viper.SetDefault("host.settings.price_dao", defaults.PriceDAO)
	viper.SetDefault("host.settings.price_unit", defaults.PriceUnit)
	viper.SetDefault("host.settings.price_oracle", defaults.PriceOracle)
	viper.SetDefault("host.settings.price_bridge", defaults.PriceBridge)
	viper.SetDefault("host.settings.min_name_length", defaults.MinNameLength)
	viper.SetDefault("host.settings.max_name_length", defaults.MaxNameLength)
	viper.SetDefault("host.settings.min_symbol_length", defaults.MinSymbolLength)
	viper.SetDefault("host.settings.max_symbol_length", defaults.MaxSymbolLength)
	viper.SetDefault("host.settings.min_ve_period", defaults.MinVePeriod)
	viper.SetDefault("host.settings.max_ve_period", defaults.MaxVePeriod)
	viper.SetDefault("host.settings.min_pvp_fee", defaults.MinPvPFee)
	viper.SetDefault("host.settings.max_pvp_fee", defaults.MaxPvPFee)
	viper.SetDefault("host.settings.min_funding_duration", defaults.MinFundingDuration)
	viper.SetDefault("host.settings.max_funding_duration", defaults.MaxFundingDuration)
	viper.SetDefault("host.settings.min_funding_raise", defaults.MinFundingRaise)
	viper.SetDefault("host.settings.max_funding_raise", defaults.MaxFundingRaise)
	viper.SetDefault("host.settings.min_vesting_name_len", defaults.MinVestingNameLen)
	viper.SetDefault("host.settings.max_vesting_name_len", defaults.MaxVestingNameLen)
	viper.SetDefault("host.settings.min_vesting_duration", defaults.MinVestingDuration)
	viper.SetDefault("host.settings.max_vesting_duration", defaults.MaxVestingDuration)
	viper.SetDefault("host.settings.min_cliff", defaults.MinCliff)

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
