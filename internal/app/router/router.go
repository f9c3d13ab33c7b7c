package router

import (
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	movieshandler "movie_backend/internal/feature/movies/transport/handler"
	platformhandler "movie_backend/internal/platform/http/handler"
	jwtmw "movie_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine and wires every route. Protected routes sit
// behind the JWT auth middleware; rejected requests never reach their handler.
func NewRouter(secret string, users jwtmw.UserResolver,
	authHandler *authhandler.AuthHandler, movies *movieshandler.MovieHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録（JWT 発行）
	r.POST("/register", authHandler.Register)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)
	// セッションクッキーの失効
	r.POST("/logout", authHandler.Logout)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → Authorizationヘッダーまたはjwtクッキーに有効なトークンが必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(secret, users))
	{
		auth.GET("/me", authHandler.Me)
		auth.GET("/movies", movies.List)
		auth.GET("/movies/:id", movies.Get)
		auth.POST("/movies", movies.Create)
		auth.PUT("/movies/:id", movies.Update)
		auth.DELETE("/movies/:id", movies.Delete)
	}

	return r
}
