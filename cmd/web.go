package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/relato-cidadao/relato-cidadao-be/config"
	"github.com/relato-cidadao/relato-cidadao-be/controllers"
	"github.com/relato-cidadao/relato-cidadao-be/db/mysql"
	"github.com/relato-cidadao/relato-cidadao-be/middleware"
	"github.com/relato-cidadao/relato-cidadao-be/routes"
	"github.com/relato-cidadao/relato-cidadao-be/services"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("nenhum arquivo .env encontrado, usando apenas o ambiente")
	}
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	database, err := mysql.GetDatabase(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao conectar ao banco de dados")
	}
	defer database.Close()

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	geo := services.NewGeographyService(cfg.IBGEBaseURL, cfg.IBGETimeout, cfg.GeoCacheTTL, logrus.StandardLogger())
	metrics := middleware.InitMetrics()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(metrics.CountRequests())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	userController := controllers.NewUserController(database)
	postController := controllers.NewPostController(database, geo)
	commentController := controllers.NewCommentController(database, database)

	routes.AddHealthCheckRoutes(&r.RouterGroup)
	routes.AddUserRoutes(&r.RouterGroup, userController, tokens, metrics)
	routes.AddPostRoutes(&r.RouterGroup, postController, tokens, metrics)
	routes.AddCommentRoutes(&r.RouterGroup, commentController, tokens, metrics)
	routes.AddGeographyRoutes(&r.RouterGroup, geo)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("erro ao iniciar o servidor web")
	}
}
