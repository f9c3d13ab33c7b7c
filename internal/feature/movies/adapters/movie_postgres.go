// Package adapters はmoviesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/usecase"
)

// moviePostgres はMovieRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type moviePostgres struct {
	db *gorm.DB
}

// moviePostgresがMovieRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MovieRepository = (*moviePostgres)(nil)

// NewMoviePostgres は指定されたgorm.DB接続でmoviePostgresの新しいインスタンスを生成します。
func NewMoviePostgres(db *gorm.DB) *moviePostgres {
	return &moviePostgres{db: db}
}

// List は作成日時の降順で映画を検索します。
func (r *moviePostgres) List(ctx context.Context, limit int) ([]entity.Movie, error) {
	var movies []entity.Movie
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// FindByID はIDで映画を取得します。
// 映画が存在しない場合、usecase.ErrMovieNotFoundを返します。
func (r *moviePostgres) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	var m entity.Movie
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create は映画をデータベースに追加します。
func (r *moviePostgres) Create(ctx context.Context, m *entity.Movie) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Update は既存の映画レコードを保存します。
// 映画が存在しない場合、usecase.ErrMovieNotFoundを返します。
func (r *moviePostgres) Update(ctx context.Context, m *entity.Movie) error {
	// Selectで対象カラムを固定し、ゼロ値も含めて更新する
	res := r.db.WithContext(ctx).Model(&entity.Movie{}).Where("id = ?", m.ID).
		Select("Title", "Overview", "ReleaseYear", "Genres", "Runtime", "PosterURL").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMovieNotFound
	}
	return nil
}

// Delete はIDで映画を削除します。
// 映画が存在しない場合、usecase.ErrMovieNotFoundを返します。
func (r *moviePostgres) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Movie{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrMovieNotFound
	}
	return nil
}
