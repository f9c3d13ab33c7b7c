package db

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	authentity "movie_backend/internal/feature/auth/domain/entity"
	moviesentity "movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/platform/password"
)

// seedCreatorID is the fixed id of the user that owns the seeded catalog.
const seedCreatorID = "c6cfc79c-22f4-482d-9b25-f5a02e9a5b83"

// seedMovies is the initial catalog inserted on first startup.
var seedMovies = []moviesentity.Movie{
	{
		Title:       "Inception",
		Overview:    "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		ReleaseYear: 2010,
		Genres:      []string{"Action", "Adventure", "Sci-Fi"},
		Runtime:     148,
		PosterURL:   "https://image.tmdb.org/t/p/original/qmDpIHrmpJINaRKAfWQfftjCdyi.jpg",
		CreatedBy:   seedCreatorID,
	},
	{
		Title:       "The Matrix",
		Overview:    "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
		ReleaseYear: 1999,
		Genres:      []string{"Action", "Sci-Fi"},
		Runtime:     136,
		PosterURL:   "https://image.tmdb.org/t/p/original/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg",
		CreatedBy:   seedCreatorID,
	},
	{
		Title:       "Interstellar",
		Overview:    "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		ReleaseYear: 2014,
		Genres:      []string{"Adventure", "Drama", "Sci-Fi"},
		Runtime:     169,
		PosterURL:   "https://image.tmdb.org/t/p/original/rAiYTfKGqDCRIIqo664sY9XZIvQ.jpg",
		CreatedBy:   seedCreatorID,
	},
}

// Seed inserts the seed admin user and the initial movie catalog.
// It is idempotent: nothing happens when the movies table already has rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&moviesentity.Movie{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count movies: %w", err)
	}
	if count > 0 {
		slog.Info("seed skipped: catalog already populated", "movies", count)
		return nil
	}

	digest, err := password.Hash("securepassword")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	creator := authentity.User{
		ID:       seedCreatorID,
		Name:     "Seed Admin",
		Email:    "seedadmin@example.com",
		Password: digest,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// 再実行時に備えて作成者ユーザーの重複は無視する
		if err := tx.Where("id = ?", seedCreatorID).FirstOrCreate(&creator).Error; err != nil {
			return fmt.Errorf("failed to seed creator user: %w", err)
		}
		for _, m := range seedMovies {
			movie := m
			if err := tx.Create(&movie).Error; err != nil {
				return fmt.Errorf("failed to seed movie %q: %w", movie.Title, err)
			}
		}
		slog.Info("seed completed", "movies", len(seedMovies))
		return nil
	})
}
