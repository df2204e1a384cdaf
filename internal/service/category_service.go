package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/rick2303/Olanchito/internal/dto"
	"github.com/rick2303/Olanchito/internal/repository"
)

const (
	categoryCacheKey = "directorio:categorias"
	categoryCacheTTL = 5 * time.Minute
)

// CategoryService serves the category tiles. The taxonomy changes rarely, so
// reads go through a short-lived Redis cache; a nil client disables caching
// and every call hits the repository.
type CategoryService interface {
	Listar(ctx context.Context) ([]dto.CategoryResponse, error)
}

type categoryService struct {
	repo repository.CategoryRepository
	rdb  *redis.Client
}

func NewCategoryService(repo repository.CategoryRepository, rdb *redis.Client) CategoryService {
	return &categoryService{repo: repo, rdb: rdb}
}

func (s *categoryService) Listar(ctx context.Context) ([]dto.CategoryResponse, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, categoryCacheKey).Bytes(); err == nil {
			var cached []dto.CategoryResponse
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("categories: list query failed")
		return nil, ErrLoadFailure
	}

	result := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		result = append(result, dto.CategoryResponse{
			ID:   c.ID,
			Name: c.Name,
			Slug: c.Slug,
			Icon: c.Icon,
		})
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(result); err == nil {
			// Best-effort: a cache write failure never fails the request.
			if err := s.rdb.Set(ctx, categoryCacheKey, raw, categoryCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("categories: cache write failed")
			}
		}
	}

	return result, nil
}
