// Package usecase は映画カタログ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"movie_backend/internal/feature/movies/domain/entity"
)

const (
	// DefaultLimit はカタログ一覧のデフォルト返却件数です。
	DefaultLimit = 50
	// MaxLimit はカタログ一覧の最大返却件数です。
	MaxLimit = 200
)

// MovieRepository は映画データの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MovieRepository interface {
	// List は作成日時の降順で映画を検索します。
	List(ctx context.Context, limit int) ([]entity.Movie, error)

	// FindByID はIDで映画を取得します。
	// 映画が存在しない場合、ErrMovieNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.Movie, error)

	// Create は新しい映画をストレージに永続化します。
	Create(ctx context.Context, movie *entity.Movie) error

	// Update は既存の映画を上書きします。
	// 映画が存在しない場合、ErrMovieNotFoundを返します。
	Update(ctx context.Context, movie *entity.Movie) error

	// Delete はIDで映画を削除します。
	// 映画が存在しない場合、ErrMovieNotFoundを返します。
	Delete(ctx context.Context, id string) error
}

// moviesUsecase は映画カタログ操作のユースケースを定義します。
type moviesUsecase struct {
	movies MovieRepository
}

// NewMoviesUsecase はmoviesUsecaseの新しいインスタンスを生成します。
func NewMoviesUsecase(movies MovieRepository) *moviesUsecase {
	return &moviesUsecase{movies: movies}
}

// List は映画の一覧を取得します。limitが範囲外の場合はデフォルト値を使用します。
func (mu *moviesUsecase) List(ctx context.Context, limit int) ([]entity.Movie, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return mu.movies.List(ctx, limit)
}

// Get はIDで映画を取得します。
func (mu *moviesUsecase) Get(ctx context.Context, id string) (*entity.Movie, error) {
	return mu.movies.FindByID(ctx, id)
}

// Create は認証済みユーザーを作成者として新しい映画を登録します。
func (mu *moviesUsecase) Create(ctx context.Context, movie *entity.Movie, createdBy string) (*entity.Movie, error) {
	movie.CreatedBy = createdBy
	if err := mu.movies.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// Update は既存の映画のカタログ情報を差し替えます。
// ID・作成者・作成日時は変更しません。
func (mu *moviesUsecase) Update(ctx context.Context, id string, updated *entity.Movie) (*entity.Movie, error) {
	current, err := mu.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Title = updated.Title
	current.Overview = updated.Overview
	current.ReleaseYear = updated.ReleaseYear
	current.Genres = updated.Genres
	current.Runtime = updated.Runtime
	current.PosterURL = updated.PosterURL

	if err := mu.movies.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete はIDで映画を削除します。
func (mu *moviesUsecase) Delete(ctx context.Context, id string) error {
	return mu.movies.Delete(ctx, id)
}
