package usecase

import (
	"testing"

	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	user := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Name:     testutil.Ptr(username),
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createDoctor(t *testing.T, db *gorm.DB, username, specialized string) (*entity.User, *entity.Doctor) {
	t.Helper()
	user := createUser(t, db, username)
	require.NoError(t, db.Create(&entity.UserProfile{UserID: user.ID, UserType: entity.UserTypeDoctor}).Error)
	doctor := &entity.Doctor{UserID: user.ID, Specialized: testutil.Ptr(specialized)}
	require.NoError(t, db.Create(doctor).Error)
	return user, doctor
}
