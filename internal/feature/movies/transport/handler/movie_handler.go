// Package handler はmoviesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/usecase"
	jwtmw "movie_backend/internal/platform/jwt"
)

// MoviesUsecase は映画カタログ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MoviesUsecase interface {
	List(ctx context.Context, limit int) ([]entity.Movie, error)
	Get(ctx context.Context, id string) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie, createdBy string) (*entity.Movie, error)
	Update(ctx context.Context, id string, updated *entity.Movie) (*entity.Movie, error)
	Delete(ctx context.Context, id string) error
}

// MovieHandler は映画カタログのHTTPリクエストを処理します。
type MovieHandler struct {
	uc MoviesUsecase
}

// NewMovieHandler は指定されたusecaseでMovieHandlerの新しいインスタンスを生成します。
func NewMovieHandler(uc MoviesUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// List は映画の一覧をJSONで返します。
//
// エンドポイント例:
// GET /movies?limit=50
func (h *MovieHandler) List(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	// 文字列を整数に変換（不正値はusecase側でデフォルトに補正される）
	limit, _ := strconv.Atoi(limitStr)

	movies, err := h.uc.List(c.Request.Context(), limit)
	if err != nil {
		slog.Error("movie list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}

	out := make([]api.MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(&m))
	}
	c.JSON(http.StatusOK, out)
}

// Get はIDで指定された映画をJSONで返します。
func (h *MovieHandler) Get(c *gin.Context) {
	movie, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Movie not found"})
			return
		}
		slog.Error("movie lookup failed", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Create は認証済みユーザーを作成者として新しい映画を登録します。
func (h *MovieHandler) Create(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No token provided"})
		return
	}

	var req api.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("movie create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Title and release year are required"})
		return
	}

	movie, err := h.uc.Create(c.Request.Context(), fromMovieRequest(&req), user.ID)
	if err != nil {
		slog.Error("movie create failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, toMovieResponse(movie))
}

// Update は既存の映画のカタログ情報を差し替えます。
func (h *MovieHandler) Update(c *gin.Context) {
	var req api.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("movie update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Title and release year are required"})
		return
	}

	movie, err := h.uc.Update(c.Request.Context(), c.Param("id"), fromMovieRequest(&req))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Movie not found"})
			return
		}
		slog.Error("movie update failed", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Delete はIDで指定された映画を削除します。
func (h *MovieHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Movie not found"})
			return
		}
		slog.Error("movie delete failed", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Status: "success", Message: "Movie deleted"})
}

// fromMovieRequest はリクエストDTOをエンティティに変換します。
func fromMovieRequest(req *api.MovieRequest) *entity.Movie {
	return &entity.Movie{
		Title:       req.Title,
		Overview:    req.Overview,
		ReleaseYear: req.ReleaseYear,
		Genres:      req.Genres,
		Runtime:     req.Runtime,
		PosterURL:   req.PosterURL,
	}
}

// toMovieResponse はエンティティをレスポンスDTOに変換します。
func toMovieResponse(m *entity.Movie) api.MovieResponse {
	return api.MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		ReleaseYear: m.ReleaseYear,
		Genres:      m.Genres,
		Runtime:     m.Runtime,
		PosterURL:   m.PosterURL,
		CreatedBy:   m.CreatedBy,
	}
}
