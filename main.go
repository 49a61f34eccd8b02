package main

import (
	"log"

	"cloudysky/Config"
	"cloudysky/Route"
	"cloudysky/database"
	serviceAuth "cloudysky/service/Auth"
	serviceContent "cloudysky/service/Content"
)

func main() {

	// 初始化配置
	if err := Config.InitConfig(); err != nil {
		log.Fatal("配置初始化失败: ", err)
	}

	// 初始化数据库
	database.InitDB(Config.Cfg.DatabasePath)

	// 初始化Redis（失败时自动降级）
	if err := database.InitRedis(Config.Cfg.RedisAddr, Config.Cfg.RedisPassword, Config.Cfg.RedisDB); err != nil {
		log.Fatal("Redis初始化失败: ", err)
	}

	// 初始化服务
	if _, err := serviceAuth.NewUserService(database.DB); err != nil {
		log.Fatal("用户服务初始化失败: ", err)
	}

	storage, err := serviceContent.NewLocalFileStorage(Config.Cfg.UploadDir)
	if err != nil {
		log.Fatal("文件存储初始化失败: ", err)
	}

	serviceContent.NewPostService(database.DB)
	serviceContent.NewCommentService(database.DB)
	serviceContent.NewLikeService(database.DB)
	serviceContent.NewModerationService(database.DB)
	serviceContent.NewStatsService(database.DB, database.GetRedis())
	if _, err := serviceContent.NewMediaService(database.DB, storage); err != nil {
		log.Fatal("媒体服务初始化失败: ", err)
	}

	// 启动路由
	log.Println("服务器启动中...")
	Route.ApiRoute()
}
