package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/encoder"
	"linkpulse/internal/model"
	"linkpulse/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// ShortLinkService handles short link operations
type ShortLinkService struct {
	encoder          *encoder.Base62Encoder
	links            repository.LinkRepositoryInterface
	cache            repository.CacheInterface
	bloomSvc         BloomServiceInterface
	baseURL          string
	codeLength       int
	maxRetries       int
	maxLinksPerOwner int
	cacheTTL         time.Duration
	now              func() time.Time
}

// NewShortLinkService creates a new ShortLink Service
func NewShortLinkService(
	links repository.LinkRepositoryInterface,
	cache repository.CacheInterface,
	bloomSvc BloomServiceInterface,
	cfg *config.LinksConfig,
	cacheTTL time.Duration,
	baseURL string,
) *ShortLinkService {
	s := &ShortLinkService{
		encoder:          encoder.NewBase62Encoder(),
		links:            links,
		cache:            cache,
		bloomSvc:         bloomSvc,
		baseURL:          strings.TrimRight(baseURL, "/"),
		codeLength:       cfg.CodeLength,
		maxRetries:       cfg.MaxRetries,
		maxLinksPerOwner: cfg.MaxLinksPerOwner,
		cacheTTL:         cacheTTL,
		now:              time.Now,
	}
	if s.codeLength == 0 {
		s.codeLength = encoder.DefaultLength
	}
	if s.maxRetries < 1 {
		s.maxRetries = 3
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = time.Hour
	}
	return s
}

// Create validates the request, allocates a unique short code and stores the link
func (s *ShortLinkService) Create(ctx context.Context, req *model.CreateLinkRequest) (*model.CreateLinkResponse, error) {
	if err := validateURL(req.URL); err != nil {
		return nil, err
	}

	linkType := req.Type
	if linkType == "" {
		linkType = model.LinkTypeRedirect
	}
	if linkType != model.LinkTypeRedirect && linkType != model.LinkTypeBio {
		return nil, ErrInvalidLinkType
	}

	settings := model.LinkSettings{AllowBots: true}
	if req.AllowBots != nil {
		settings.AllowBots = *req.AllowBots
	}

	if req.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidExpiry, err)
		}
		if !t.After(s.now()) {
			return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidExpiry, req.ExpiresAt)
		}
		t = t.UTC()
		settings.ExpiresAt = &t
	}

	if req.MaxClicks != nil {
		if *req.MaxClicks < 1 {
			return nil, fmt.Errorf("%w: max_clicks must be positive", ErrInvalidSettings)
		}
		settings.MaxClicks = req.MaxClicks
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		settings.PasswordHash = string(hash)
	}

	if err := s.checkOwnerLimit(ctx, req.OwnerID); err != nil {
		return nil, err
	}

	link := &model.Link{
		OwnerID:        req.OwnerID,
		Type:           linkType,
		DestinationURL: req.URL,
		Settings:       settings,
	}
	if err := s.saveWithUniqueCode(ctx, link); err != nil {
		return nil, err
	}

	if err := s.bloomSvc.Add(ctx, link.ShortCode); err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to add to Bloom Filter")
	}
	s.warmCache(ctx, link)

	log.Info().
		Str("short_code", link.ShortCode).
		Str("owner_id", link.OwnerID).
		Str("type", link.Type).
		Msg("Short link created")

	return s.buildResponse(link), nil
}

// Delete removes the link of shortCode if ownerID owns it. Its clicks and
// rollups stay for reporting.
func (s *ShortLinkService) Delete(ctx context.Context, shortCode, ownerID string) error {
	link, err := s.links.FindByShortCode(ctx, shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if link.OwnerID != "" && link.OwnerID != ownerID {
		return ErrForbidden
	}

	if err := s.links.DeleteLink(ctx, shortCode); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if err := s.cache.Delete(ctx, repository.LinkCacheKey(shortCode)); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to evict deleted link from cache")
	}

	log.Info().Str("short_code", shortCode).Str("owner_id", ownerID).Msg("Short link deleted")
	return nil
}

func (s *ShortLinkService) checkOwnerLimit(ctx context.Context, ownerID string) error {
	if ownerID == "" || s.maxLinksPerOwner <= 0 {
		return nil
	}

	count, err := s.links.CountByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to count links: %w", err)
	}
	if count >= int64(s.maxLinksPerOwner) {
		return ErrLinkLimitReached
	}
	return nil
}

// saveWithUniqueCode tries up to maxRetries random codes. The Bloom Filter
// and the existence check only skip likely collisions; the unique index
// decides.
func (s *ShortLinkService) saveWithUniqueCode(ctx context.Context, link *model.Link) error {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		code, err := s.encoder.Random(s.codeLength)
		if err != nil {
			return err
		}

		if s.isTaken(ctx, code) {
			continue
		}

		link.ShortCode = code
		err = s.links.SaveLink(ctx, link)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateCode) {
			log.Error().Err(err).Str("short_code", code).Msg("Failed to save short link")
			return fmt.Errorf("failed to save short link: %w", err)
		}
		log.Debug().Str("short_code", code).Msg("Short code collision, retrying")
	}

	return ErrMaxCapacityReached
}

func (s *ShortLinkService) isTaken(ctx context.Context, code string) bool {
	maybe, err := s.bloomSvc.Exists(ctx, code)
	if err == nil && !maybe {
		return false
	}

	exists, err := s.links.CheckExistsByCode(ctx, code)
	if err != nil {
		// let the unique index arbitrate
		return false
	}
	return exists
}

func (s *ShortLinkService) warmCache(ctx context.Context, link *model.Link) {
	data, err := json.Marshal(link.Snapshot())
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, repository.LinkCacheKey(link.ShortCode), string(data), s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to warm cache")
	}
}

// buildResponse builds a create response from a link entity
func (s *ShortLinkService) buildResponse(link *model.Link) *model.CreateLinkResponse {
	return &model.CreateLinkResponse{
		ShortLink:      fmt.Sprintf("%s/%s", s.baseURL, link.ShortCode),
		ShortCode:      link.ShortCode,
		DestinationURL: link.DestinationURL,
		Type:           link.Type,
		ExpiresAt:      link.Settings.ExpiresAt,
	}
}

func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrInvalidURL
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}
	return nil
}
