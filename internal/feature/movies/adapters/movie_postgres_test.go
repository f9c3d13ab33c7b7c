package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Create Movie table
	err = db.AutoMigrate(&entity.Movie{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func createMovie(t *testing.T, repo *moviePostgres, title string) *entity.Movie {
	t.Helper()

	m := &entity.Movie{
		Title:       title,
		Overview:    "overview",
		ReleaseYear: 2010,
		Genres:      []string{"Action", "Sci-Fi"},
		Runtime:     148,
		PosterURL:   "https://example.com/poster.jpg",
		CreatedBy:   "user-1",
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestMoviePostgres_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMoviePostgres(db)

	m := createMovie(t, repo, "Inception")

	assert.NotEmpty(t, m.ID, "ID is not set")
	assert.False(t, m.CreatedAt.IsZero(), "CreatedAt is not set")

	// Genres round-trip through the JSON column
	found, err := repo.FindByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, found.Genres)
}

func TestMoviePostgres_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMoviePostgres(db)

	first := createMovie(t, repo, "Inception")
	// 作成日時の降順を確認できるよう時刻をずらす
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)
	second := createMovie(t, repo, "The Matrix")

	t.Run("ordered by created_at desc", func(t *testing.T) {
		movies, err := repo.List(context.Background(), 10)

		require.NoError(t, err)
		require.Len(t, movies, 2)
		assert.Equal(t, second.ID, movies[0].ID)
		assert.Equal(t, first.ID, movies[1].ID)
	})

	t.Run("limit applied", func(t *testing.T) {
		movies, err := repo.List(context.Background(), 1)

		require.NoError(t, err)
		assert.Len(t, movies, 1)
	})
}

func TestMoviePostgres_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMoviePostgres(db)

	m := createMovie(t, repo, "Inception")

	t.Run("existing movie", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), m.ID)

		require.NoError(t, err)
		assert.Equal(t, "Inception", found.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrMovieNotFound)
		assert.Nil(t, found)
	})
}

func TestMoviePostgres_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMoviePostgres(db)

	m := createMovie(t, repo, "Inception")

	t.Run("existing movie", func(t *testing.T) {
		m.Title = "Inception (Director's Cut)"
		m.Runtime = 150
		m.Genres = []string{"Sci-Fi"}

		err := repo.Update(context.Background(), m)

		require.NoError(t, err)
		found, err := repo.FindByID(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Equal(t, "Inception (Director's Cut)", found.Title)
		assert.Equal(t, 150, found.Runtime)
		assert.Equal(t, []string{"Sci-Fi"}, found.Genres)
		assert.Equal(t, "user-1", found.CreatedBy, "creator must not change")
	})

	t.Run("unknown id", func(t *testing.T) {
		err := repo.Update(context.Background(), &entity.Movie{ID: "missing", Title: "X"})

		assert.ErrorIs(t, err, usecase.ErrMovieNotFound)
	})
}

func TestMoviePostgres_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMoviePostgres(db)

	m := createMovie(t, repo, "Inception")

	t.Run("existing movie", func(t *testing.T) {
		err := repo.Delete(context.Background(), m.ID)

		require.NoError(t, err)
		_, err = repo.FindByID(context.Background(), m.ID)
		assert.ErrorIs(t, err, usecase.ErrMovieNotFound)
	})

	t.Run("already deleted", func(t *testing.T) {
		err := repo.Delete(context.Background(), m.ID)

		assert.ErrorIs(t, err, usecase.ErrMovieNotFound)
	})
}
