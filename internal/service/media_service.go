package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	AvatarFolder         = "images/avatars"
	ProfilePictureFolder = "images/profile_pic"

	signedURLKeyPrefix = "signed_url:"
)

// ObjectStore is the subset of the object storage client used for user media.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type MediaService interface {
	// SignedURL returns a time limited GET URL for a stored media URL, or nil when
	// nothing is stored.
	SignedURL(ctx context.Context, storedURL *string, expiry time.Duration) (*string, error)
	Upload(ctx context.Context, folder string, userID uuid.UUID, filename string, body io.Reader, contentType string) (string, error)
}

type mediaService struct {
	store       ObjectStore
	redisClient *redis.Client
	cacheTTL    time.Duration
	log         *logrus.Logger
}

func NewMediaService(store ObjectStore, redisClient *redis.Client, cacheTTL time.Duration, log *logrus.Logger) MediaService {
	return &mediaService{
		store:       store,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
		log:         log,
	}
}

// safeFilename replaces every character outside [A-Za-z0-9._-] with '_' so the
// object key survives the round trip through its URL unchanged.
func safeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return '_'
	}, name)
}

// ObjectKey extracts the storage key from a stored media URL: its decoded path
// without the leading slash.
func ObjectKey(storedURL string) (string, error) {
	parsed, err := url.Parse(storedURL)
	if err != nil {
		return "", fmt.Errorf("invalid media url %q: %w", storedURL, err)
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", fmt.Errorf("media url %q has no object key", storedURL)
	}
	return key, nil
}

func (s *mediaService) SignedURL(ctx context.Context, storedURL *string, expiry time.Duration) (*string, error) {
	if storedURL == nil || *storedURL == "" {
		return nil, nil
	}

	key, err := ObjectKey(*storedURL)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%s%d:%s", signedURLKeyPrefix, int64(expiry.Seconds()), key)
	if s.redisClient != nil && s.cacheTTL > 0 && s.cacheTTL < expiry {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			return &cached, nil
		}
		if err != redis.Nil {
			s.log.Warnf("Failed to read signed url cache: %+v", err)
		}
	}

	signed, err := s.store.PresignGet(ctx, key, expiry)
	if err != nil {
		s.log.Warnf("Failed to sign media url: %+v", err)
		return nil, err
	}

	if s.redisClient != nil && s.cacheTTL > 0 && s.cacheTTL < expiry {
		if err := s.redisClient.Set(ctx, cacheKey, signed, s.cacheTTL).Err(); err != nil {
			s.log.Warnf("Failed to cache signed url: %+v", err)
		}
	}

	return &signed, nil
}

func (s *mediaService) Upload(ctx context.Context, folder string, userID uuid.UUID, filename string, body io.Reader, contentType string) (string, error) {
	name := safeFilename(path.Base(strings.ReplaceAll(filename, "\\", "/")))
	if strings.Trim(name, "._") == "" {
		name = uuid.NewString()
	}
	key := path.Join(folder, userID.String(), fmt.Sprintf("%d_%s", time.Now().Unix(), name))

	objectURL, err := s.store.Upload(ctx, key, body, contentType)
	if err != nil {
		s.log.Warnf("Failed to upload media: %+v", err)
		return "", err
	}
	return objectURL, nil
}
