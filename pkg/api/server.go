package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server API服务器
type Server struct {
	router *gin.Engine
	srv    *http.Server
	logger *zap.Logger
}

// NewServer 创建新的API服务器
func NewServer(port string, readTimeout, writeTimeout time.Duration, logger *zap.Logger) *Server {
	router := gin.New()

	// 中间件：请求ID → 结构化日志 → 异常恢复 → 跨域
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	return &Server{
		router: router,
		srv:    srv,
		logger: logger,
	}
}

// SetupRoutes 设置路由
func (s *Server) SetupRoutes(handlers *Handlers) {
	// 健康检查
	s.router.GET("/", handlers.Root)

	funds := s.router.Group("/api/funds")
	{
		funds.GET("/list", handlers.ListFunds)
		funds.GET("/search", handlers.SearchFunds)
		funds.GET("/:code/detail", handlers.FundDetail)
		funds.GET("/:code/quote", handlers.FundQuote)
	}
}

// Start 启动服务器并阻塞到收到退出信号
func (s *Server) Start() {
	go func() {
		s.logger.Info("API服务器启动", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Fatal("服务器关闭失败", zap.Error(err))
	}

	s.logger.Info("服务器已关闭")
}
