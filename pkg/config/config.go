package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration 支持 "10s"、"1h" 写法的yaml时长字段
type Duration time.Duration

// UnmarshalYAML 实现yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("无效的时长 %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std 转换为time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config 应用配置
type Config struct {
	App struct {
		Name string `yaml:"name"`
		Env  string `yaml:"env"`
	} `yaml:"app"`

	DataSources struct {
		AKShare struct {
			BaseURL string        `yaml:"base_url"`
			Timeout Duration      `yaml:"timeout"`
		} `yaml:"akshare"`
	} `yaml:"data_sources"`

	Cache struct {
		// Backend 缓存后端：memory 或 redis
		Backend string        `yaml:"backend"`
		TTL     Duration `yaml:"ttl"`
		Redis   struct {
			Address  string `yaml:"address"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	API struct {
		Port         string        `yaml:"port"`
		ReadTimeout  Duration `yaml:"read_timeout"`
		WriteTimeout Duration `yaml:"write_timeout"`
	} `yaml:"api"`

	Warm struct {
		// Enabled 是否启用后台列表预热任务
		Enabled bool `yaml:"enabled"`
		// Spec cron表达式，如 "@every 30m"
		Spec string `yaml:"spec"`
	} `yaml:"warm"`
}

// LoadConfig 从文件加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyDefaults(&config)
	overrideFromEnv(&config)

	return &config, nil
}

// applyDefaults 填充缺省值
func applyDefaults(config *Config) {
	if config.App.Name == "" {
		config.App.Name = "基金数据服务"
	}
	if config.DataSources.AKShare.Timeout <= 0 {
		config.DataSources.AKShare.Timeout = Duration(10 * time.Second)
	}
	if config.Cache.Backend == "" {
		config.Cache.Backend = "memory"
	}
	if config.Cache.TTL <= 0 {
		config.Cache.TTL = Duration(3600 * time.Second)
	}
	if config.API.Port == "" {
		config.API.Port = "8000"
	}
	if config.Warm.Spec == "" {
		config.Warm.Spec = "@every 30m"
	}
}

// overrideFromEnv 使用环境变量覆盖配置
func overrideFromEnv(config *Config) {
	if env := os.Getenv("APP_NAME"); env != "" {
		config.App.Name = env
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		config.App.Env = env
	}

	// 数据源配置
	if env := os.Getenv("AKSHARE_BASE_URL"); env != "" {
		config.DataSources.AKShare.BaseURL = env
	}
	if env := os.Getenv("AKSHARE_TIMEOUT"); env != "" {
		if d, err := time.ParseDuration(env); err == nil {
			config.DataSources.AKShare.Timeout = Duration(d)
		}
	}

	// 缓存配置
	if env := os.Getenv("CACHE_BACKEND"); env != "" {
		config.Cache.Backend = env
	}
	if env := os.Getenv("CACHE_TTL"); env != "" {
		if d, err := time.ParseDuration(env); err == nil {
			config.Cache.TTL = Duration(d)
		}
	}
	if env := os.Getenv("REDIS_ADDR"); env != "" {
		config.Cache.Redis.Address = env
	}
	if env := os.Getenv("REDIS_PASSWORD"); env != "" {
		config.Cache.Redis.Password = env
	}
	if env := os.Getenv("REDIS_DB"); env != "" {
		if db, err := strconv.Atoi(env); err == nil {
			config.Cache.Redis.DB = db
		}
	}

	// API配置
	if env := os.Getenv("API_PORT"); env != "" {
		config.API.Port = env
	}
}

// GetDefaultConfigPath 获取默认配置文件路径
func GetDefaultConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	return fmt.Sprintf("configs/%s/app.yaml", env)
}
