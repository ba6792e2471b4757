package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"healthcare-backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	uploads  map[string]string
	presigns int
	signed   []string
}

func (f *fakeStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if f.uploads == nil {
		f.uploads = map[string]string{}
	}
	f.uploads[key] = string(data)
	return "https://bucket.s3.amazonaws.com/" + key, nil
}

func (f *fakeStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	f.presigns++
	f.signed = append(f.signed, key)
	return fmt.Sprintf("https://signed.example.com/%s?n=%d", key, f.presigns), nil
}

func TestObjectKey(t *testing.T) {
	key, err := ObjectKey("https://bucket.s3.amazonaws.com/images/avatars/u1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "images/avatars/u1/a.png", key)

	key, err = ObjectKey("https://bucket.s3.amazonaws.com/images/avatars/u1/scan%231%20copy.png")
	require.NoError(t, err)
	assert.Equal(t, "images/avatars/u1/scan#1 copy.png", key)

	_, err = ObjectKey("https://bucket.s3.amazonaws.com/")
	assert.Error(t, err)
}

func TestSafeFilename(t *testing.T) {
	tests := map[string]string{
		"me.png":         "me.png",
		"scan#1.png":     "scan_1.png",
		"a?b.png":        "a_b.png",
		"50%off.png":     "50_off.png",
		"my photo-2.JPG": "my_photo-2.JPG",
		"café.png":       "caf_.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeFilename(in), "input %q", in)
	}
}

func TestUpload_SignsTheUploadedKey(t *testing.T) {
	for _, filename := range []string{"scan#1.png", "a?b.png", "50%off.png", "../../etc/passwd", "%%%"} {
		t.Run(filename, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewMediaService(store, nil, 0, testutil.NewLogger())

			stored, err := svc.Upload(context.Background(), AvatarFolder, uuid.New(), filename, strings.NewReader("img"), "image/png")
			require.NoError(t, err)

			_, err = svc.SignedURL(context.Background(), &stored, time.Hour)
			require.NoError(t, err)

			require.Len(t, store.uploads, 1)
			require.Len(t, store.signed, 1)
			_, uploaded := store.uploads[store.signed[0]]
			assert.True(t, uploaded, "signed %q, uploaded %v", store.signed[0], store.uploads)
		})
	}
}

func TestSignedURL_NothingStored(t *testing.T) {
	svc := NewMediaService(&fakeStore{}, nil, 0, testutil.NewLogger())

	signed, err := svc.SignedURL(context.Background(), nil, time.Hour)
	require.NoError(t, err)
	assert.Nil(t, signed)

	empty := ""
	signed, err = svc.SignedURL(context.Background(), &empty, time.Hour)
	require.NoError(t, err)
	assert.Nil(t, signed)
}

func TestSignedURL_CachedInRedis(t *testing.T) {
	mr, client := testutil.NewRedis(t)
	store := &fakeStore{}
	svc := NewMediaService(store, client, 10*time.Minute, testutil.NewLogger())
	stored := "https://bucket.s3.amazonaws.com/images/avatars/u1/a.png"

	first, err := svc.SignedURL(context.Background(), &stored, time.Hour)
	require.NoError(t, err)
	second, err := svc.SignedURL(context.Background(), &stored, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
	assert.Equal(t, 1, store.presigns)
	assert.True(t, mr.Exists("signed_url:3600:images/avatars/u1/a.png"))

	mr.FastForward(11 * time.Minute)
	third, err := svc.SignedURL(context.Background(), &stored, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, *first, *third)
	assert.Equal(t, 2, store.presigns)
}

func TestSignedURL_NotCachedWhenTTLExceedsExpiry(t *testing.T) {
	_, client := testutil.NewRedis(t)
	store := &fakeStore{}
	svc := NewMediaService(store, client, 2*time.Hour, testutil.NewLogger())
	stored := "https://bucket.s3.amazonaws.com/images/avatars/u1/a.png"

	_, err := svc.SignedURL(context.Background(), &stored, time.Hour)
	require.NoError(t, err)
	_, err = svc.SignedURL(context.Background(), &stored, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 2, store.presigns)
}

func TestUpload_KeyLayout(t *testing.T) {
	store := &fakeStore{}
	svc := NewMediaService(store, nil, 0, testutil.NewLogger())
	userID := uuid.New()

	objectURL, err := svc.Upload(context.Background(), AvatarFolder, userID, `C:\photos\me.png`, strings.NewReader("img"), "image/png")
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	for key, body := range store.uploads {
		assert.True(t, strings.HasPrefix(key, AvatarFolder+"/"+userID.String()+"/"))
		assert.True(t, strings.HasSuffix(key, "_me.png"))
		assert.Equal(t, "img", body)
		assert.Equal(t, "https://bucket.s3.amazonaws.com/"+key, objectURL)
	}
}
