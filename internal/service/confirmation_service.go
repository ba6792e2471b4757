package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"healthcare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const emailConfirmationKeyPrefix = "email_confirmation:"

var ErrInvalidConfirmationKey = errors.New("invalid or expired confirmation key")

var confirmationTemplate = template.Must(template.New("confirmation").Parse(
	`<p>Hi {{.Name}},</p>
<p>Please confirm your e-mail address by opening the link below.</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>The link expires in {{.Hours}} hours.</p>`))

// Mailer sends a single HTML message.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type ConfirmationService interface {
	SendConfirmation(ctx context.Context, user *entity.User) error
	// Lookup returns the user key was issued for without consuming it.
	Lookup(ctx context.Context, key string) (uuid.UUID, error)
	// Discard invalidates key. Call it once the confirmation is committed.
	Discard(ctx context.Context, key string) error
}

type confirmationService struct {
	redisClient *redis.Client
	mailer      Mailer
	siteURL     string
	expiry      time.Duration
	log         *logrus.Logger
}

func NewConfirmationService(redisClient *redis.Client, mailer Mailer, siteURL string, expiry time.Duration, log *logrus.Logger) ConfirmationService {
	return &confirmationService{
		redisClient: redisClient,
		mailer:      mailer,
		siteURL:     strings.TrimRight(siteURL, "/"),
		expiry:      expiry,
		log:         log,
	}
}

func (s *confirmationService) SendConfirmation(ctx context.Context, user *entity.User) error {
	key := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := s.redisClient.Set(ctx, emailConfirmationKeyPrefix+key, user.ID.String(), s.expiry).Err(); err != nil {
		s.log.Warnf("Failed to store confirmation key: %+v", err)
		return err
	}

	var body bytes.Buffer
	err := confirmationTemplate.Execute(&body, map[string]interface{}{
		"Name":  user.DisplayName(),
		"Link":  fmt.Sprintf("%s/api/v1/auth/confirm-email/%s", s.siteURL, key),
		"Hours": int(s.expiry.Hours()),
	})
	if err != nil {
		return err
	}

	if err := s.mailer.Send(user.Email, "Please confirm your e-mail address", body.String()); err != nil {
		s.log.Warnf("Failed to send confirmation email: %+v", err)
		return err
	}
	return nil
}

func (s *confirmationService) Lookup(ctx context.Context, key string) (uuid.UUID, error) {
	value, err := s.redisClient.Get(ctx, emailConfirmationKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrInvalidConfirmationKey
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, ErrInvalidConfirmationKey
	}
	return userID, nil
}

func (s *confirmationService) Discard(ctx context.Context, key string) error {
	return s.redisClient.Del(ctx, emailConfirmationKeyPrefix+key).Err()
}
