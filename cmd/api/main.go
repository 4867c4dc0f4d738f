package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"FundRadar/pkg/api"
	"FundRadar/pkg/cache"
	"FundRadar/pkg/catalog"
	"FundRadar/pkg/collector"
	"FundRadar/pkg/config"
	"FundRadar/pkg/logger"
	"FundRadar/pkg/scheduler"
	"FundRadar/pkg/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	conf, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	zlog, err := logger.New(conf.App.Env)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Sync()

	// 列表缓存：默认进程内单槽，配置redis后端时共享缓存
	var listCache cache.ListCache
	switch conf.Cache.Backend {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     conf.Cache.Redis.Address,
			Password: conf.Cache.Redis.Password,
			DB:       conf.Cache.Redis.DB,
		}, conf.Cache.TTL.Std())
		if err != nil {
			zlog.Fatal("连接Redis失败", zap.Error(err))
		}
		defer redisCache.Close()
		listCache = redisCache
	default:
		listCache = cache.NewMemoryCache(conf.Cache.TTL.Std())
	}

	fetcher := collector.NewAKShareAdapter(
		conf.DataSources.AKShare.BaseURL,
		conf.DataSources.AKShare.Timeout.Std(),
		zlog.Named("collector"),
	)

	funds := service.NewFundService(fetcher, listCache, catalog.New(), zlog.Named("service"))

	// 后台预热列表缓存，慢速数据源调用不占用请求路径
	if conf.Warm.Enabled {
		warmer := scheduler.NewCacheWarmer(
			funds,
			conf.Warm.Spec,
			conf.DataSources.AKShare.Timeout.Std(),
			zlog.Named("warmer"),
		)
		if err := warmer.Start(); err != nil {
			zlog.Fatal("启动缓存预热任务失败", zap.Error(err))
		}
		defer warmer.Stop()
	}

	handlers := api.NewHandlers(funds, conf.App.Name)
	server := api.NewServer(
		conf.API.Port,
		conf.API.ReadTimeout.Std(),
		conf.API.WriteTimeout.Std(),
		zlog.Named("api"),
	)
	server.SetupRoutes(handlers)
	server.Start()
}
