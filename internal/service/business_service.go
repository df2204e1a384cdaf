package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/rick2303/Olanchito/internal/dto"
	"github.com/rick2303/Olanchito/internal/repository"
)

// PageSize is the fixed listing page size; not user-controllable.
const PageSize = 12

// ImageResolver turns a stored image path into a public URL, falling back to
// the default image. Implemented by infra.StorageClient.
type ImageResolver interface {
	ResolveImage(path *string) string
}

// BusinessService covers the two read pipelines: the paginated, filtered
// listing and the per-business detail view model.
type BusinessService interface {
	Listar(ctx context.Context, filter dto.BusinessFilter) (*dto.BusinessListResponse, error)
	ObtenerPorSlug(ctx context.Context, slug string) (*dto.BusinessDetailResponse, error)
}

type businessService struct {
	repo       repository.BusinessRepository
	categorias repository.CategoryRepository
	images     ImageResolver
}

func NewBusinessService(repo repository.BusinessRepository, categorias repository.CategoryRepository, images ImageResolver) BusinessService {
	return &businessService{repo: repo, categorias: categorias, images: images}
}

// Listar resolves the raw filters into a bounded query, runs it once (no
// retries), and maps the page into render-ready summaries.
func (s *businessService) Listar(ctx context.Context, filter dto.BusinessFilter) (*dto.BusinessListResponse, error) {
	// Anything that is not a positive integer ("abc", "", "0", "-3") is
	// page 1.
	page, err := strconv.Atoi(strings.TrimSpace(filter.Page))
	if err != nil || page < 1 {
		page = 1
	}

	params := repository.BusinessListParams{
		Name:   strings.TrimSpace(filter.Q),
		Offset: (page - 1) * PageSize,
		Limit:  PageSize,
	}

	categorySlug := strings.ToLower(strings.TrimSpace(filter.Category))
	if categorySlug != "" {
		cat, err := s.categorias.FindBySlug(ctx, categorySlug)
		switch {
		case err == nil:
			params.CategoryID = &cat.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Unknown slug: the filter still applies and matches nothing.
			none := uuid.Nil
			params.CategoryID = &none
		default:
			log.Error().Err(err).Str("category", categorySlug).Msg("listing: category lookup failed")
			return nil, ErrLoadFailure
		}
	}

	businesses, total, err := s.repo.List(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("listing: business query failed")
		return nil, ErrLoadFailure
	}

	items := make([]dto.BusinessSummary, 0, len(businesses))
	for _, b := range businesses {
		items = append(items, dto.BusinessSummary{
			ID:          b.ID,
			Name:        b.Name,
			Slug:        b.Slug,
			Address:     deref(b.Address),
			Description: deref(b.Description),
			ImageURL:    s.images.ResolveImage(b.Image),
		})
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	return &dto.BusinessListResponse{
		Data:       items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Category:   categorySlug,
		Q:          params.Name,
	}, nil
}

// ObtenerPorSlug builds the detail view model for one business. A missing
// category degrades to "no category"; a missing business is ErrNotFound,
// distinct from a backend failure.
func (s *businessService) ObtenerPorSlug(ctx context.Context, slug string) (*dto.BusinessDetailResponse, error) {
	b, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("slug", slug).Msg("detail: business lookup failed")
		return nil, ErrLoadFailure
	}

	resp := &dto.BusinessDetailResponse{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: deref(b.Description),
		Address:     deref(b.Address),
		Hours:       deref(b.Hours),
		Phone:       NormalizePhone(deref(b.Phone)),
		WhatsAppURL: WhatsAppLink(deref(b.Whatsapp)),
		ImageURL:    s.images.ResolveImage(b.Image),
		Services:    b.ServiceList(),
	}

	if socials := b.SocialMap(); socials != nil {
		resp.Socials = dto.SocialLinks{
			Website:   NormalizeURL(socials["website"]),
			Instagram: NormalizeURL(socials["instagram"]),
			Facebook:  NormalizeURL(socials["facebook"]),
		}
	}

	if loc := b.GeoLocation(); loc != nil && loc.Visible() {
		resp.Map = &dto.MapInfo{
			Lat:      loc.Lat,
			Lng:      loc.Lng,
			EmbedURL: fmt.Sprintf("https://www.google.com/maps?q=%v,%v&z=15&output=embed", loc.Lat, loc.Lng),
			MapsURL:  fmt.Sprintf("https://www.google.com/maps?q=%v,%v", loc.Lat, loc.Lng),
		}
	}

	if b.CategoryID != nil {
		cat, err := s.categorias.FindByID(ctx, *b.CategoryID)
		if err != nil {
			// Dangling or unreachable category reference: the detail page
			// still renders, just without the category pill.
			log.Warn().Err(err).Str("slug", slug).Msg("detail: category lookup failed")
		} else {
			resp.Category = &dto.CategoryRef{Name: cat.Name, Slug: cat.Slug}
		}
	}

	return resp, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
