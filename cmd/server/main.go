package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"movie_backend/internal/app/router"
	authadapters "movie_backend/internal/feature/auth/adapters"
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	authusecase "movie_backend/internal/feature/auth/usecase"
	moviesadapters "movie_backend/internal/feature/movies/adapters"
	movieshandler "movie_backend/internal/feature/movies/transport/handler"
	moviesusecase "movie_backend/internal/feature/movies/usecase"
	"movie_backend/internal/platform/cache"
	"movie_backend/internal/platform/config"
	platformdb "movie_backend/internal/platform/db"
	jwtmw "movie_backend/internal/platform/jwt"
	platformredis "movie_backend/internal/platform/redis"
)

func main() {
	// 設定を起動時に検証する（JWT_SECRET欠落時はリッスン前に停止）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	movieRepo := moviesadapters.NewMoviePostgres(db)

	// Redisキャッシュでラップ（読み取りパスのみ、未接続時は素通し）
	cachedMovieRepo := cache.NewCachingMovieRepository(rdb, 0, movieRepo, "movies")

	// Token issuer
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	moviesUC := moviesusecase.NewMoviesUsecase(cachedMovieRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	moviesH := movieshandler.NewMovieHandler(moviesUC)

	// ルータ生成
	router := router.NewRouter(cfg.JWTSecret, userRepo, authH, moviesH)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
