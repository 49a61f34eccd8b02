package Route

import (
	"log"
	"net/http"
	"strings"
	"time"

	"cloudysky/Config"
	routeAuth "cloudysky/Route/Auth"
	routeContent "cloudysky/Route/Content"
	routeDemo "cloudysky/Route/Demo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter 组装路由
func SetupRouter() *gin.Engine {
	r := gin.Default()

	// 配置CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           120 * time.Hour,
		AllowOriginFunc: func(origin string) bool {
			return true
		},
	}))

	// 上传的文件
	r.Static("/static", Config.Cfg.UploadDir)

	// 演示接口
	r.GET("/dummypage", routeDemo.Dummypage)
	r.GET("/time", routeDemo.CurrentTime)
	r.GET("/sum", routeDemo.SumNumbers)

	// API 路由
	api := r.Group("/api")

	// 公开路由
	api.POST("/register", routeAuth.Register)
	api.POST("/login", routeAuth.Login)

	// 需要认证的路由
	auth := api.Group("/")
	auth.Use(routeAuth.AuthMiddleware())
	{
		auth.GET("/me", routeAuth.GetMe)
		auth.PUT("/me/avatar", routeAuth.UpdateAvatar)

		auth.GET("/posts", routeContent.GetPosts)
		auth.POST("/posts", routeContent.CreatePost)
		auth.GET("/posts/:id", routeContent.GetPostByID)
		auth.DELETE("/posts/:id", routeContent.DeletePost)
		auth.GET("/posts/:id/comments", routeContent.GetCommentsByPost)

		auth.POST("/comments", routeContent.CreateComment)
		auth.DELETE("/comments/:id", routeContent.DeleteComment)

		auth.POST("/likes", routeContent.LikeTarget)
		auth.DELETE("/likes", routeContent.UnlikeTarget)
		auth.GET("/likes/:type/:id", routeContent.CountLikes)

		auth.POST("/media", routeContent.UploadMedia)
		auth.GET("/media/:type/:id", routeContent.GetMediaByTarget)

		auth.GET("/users/:id/posts", routeContent.GetPostsByAuthor)
		auth.GET("/users/:id/stats", routeContent.GetUserStats)
	}

	// 管理员路由
	admin := auth.Group("/admin")
	admin.Use(routeAuth.AdminMiddleware())
	{
		admin.POST("/posts/:id/hide", routeContent.HidePost)
		admin.POST("/posts/:id/unhide", routeContent.UnhidePost)
		admin.POST("/comments/:id/hide", routeContent.HideComment)
		admin.POST("/comments/:id/unhide", routeContent.UnhideComment)

		admin.POST("/block-reasons", routeContent.CreateBlockReason)
		admin.GET("/block-reasons", routeContent.GetBlockReasons)
		admin.DELETE("/block-reasons/:id", routeContent.DeleteBlockReason)

		admin.POST("/users", routeAuth.AdminCreateUser)
		admin.DELETE("/users/:id", routeAuth.AdminDeleteUser)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
			return
		}
		c.String(http.StatusNotFound, "not found")
	})

	return r
}

// ApiRoute 启动HTTP服务
func ApiRoute() {
	r := SetupRouter()
	if err := r.Run(":" + Config.Cfg.ServerPort); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
