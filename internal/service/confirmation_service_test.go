package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.sent = append(f.sent, sentMail{to, subject, htmlBody})
	return nil
}

var confirmLinkPattern = regexp.MustCompile(`/api/v1/auth/confirm-email/([0-9a-f]{32})`)

func TestConfirmation_SendAndConfirm(t *testing.T) {
	mr, client := testutil.NewRedis(t)
	mailer := &fakeMailer{}
	svc := NewConfirmationService(client, mailer, "https://care.example.com/", 48*time.Hour, testutil.NewLogger())

	user := &entity.User{ID: uuid.New(), Email: "jane@example.com"}
	require.NoError(t, svc.SendConfirmation(context.Background(), user))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "https://care.example.com/api/v1/auth/confirm-email/")
	assert.Contains(t, mailer.sent[0].body, "48 hours")

	match := confirmLinkPattern.FindStringSubmatch(mailer.sent[0].body)
	require.Len(t, match, 2)
	key := match[1]
	assert.Equal(t, 48*time.Hour, mr.TTL(emailConfirmationKeyPrefix+key))

	userID, err := svc.Lookup(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	// lookups leave the key in place until it is discarded
	userID, err = svc.Lookup(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	require.NoError(t, svc.Discard(context.Background(), key))
	assert.False(t, mr.Exists(emailConfirmationKeyPrefix+key))
	_, err = svc.Lookup(context.Background(), key)
	assert.ErrorIs(t, err, ErrInvalidConfirmationKey)
}

func TestConfirmation_Expired(t *testing.T) {
	mr, client := testutil.NewRedis(t)
	mailer := &fakeMailer{}
	svc := NewConfirmationService(client, mailer, "http://localhost:8080", time.Hour, testutil.NewLogger())

	user := &entity.User{ID: uuid.New(), Email: "jane@example.com"}
	require.NoError(t, svc.SendConfirmation(context.Background(), user))
	key := confirmLinkPattern.FindStringSubmatch(mailer.sent[0].body)[1]

	mr.FastForward(2 * time.Hour)

	_, err := svc.Lookup(context.Background(), key)
	assert.ErrorIs(t, err, ErrInvalidConfirmationKey)
}

func TestConfirmation_GarbageValue(t *testing.T) {
	mr, client := testutil.NewRedis(t)
	svc := NewConfirmationService(client, &fakeMailer{}, "http://localhost:8080", time.Hour, testutil.NewLogger())

	require.NoError(t, mr.Set(emailConfirmationKeyPrefix+"abc", "not-a-uuid"))

	_, err := svc.Lookup(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrInvalidConfirmationKey)
}
