package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"healthcare-backend/config"
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/repository"
	"healthcare-backend/internal/service"
	"healthcare-backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubMedia struct {
	uploaded []string
}

func (s *stubMedia) SignedURL(ctx context.Context, storedURL *string, expiry time.Duration) (*string, error) {
	if storedURL == nil {
		return nil, nil
	}
	signed := *storedURL + "?signed"
	return &signed, nil
}

func (s *stubMedia) Upload(ctx context.Context, folder string, userID uuid.UUID, filename string, body io.Reader, contentType string) (string, error) {
	url := "https://bucket.s3.us-east-1.amazonaws.com/" + folder + "/" + userID.String() + "/" + filename
	s.uploaded = append(s.uploaded, url)
	return url, nil
}

type stubConfirmation struct {
	sent      []uuid.UUID
	userID    uuid.UUID
	discarded []string
}

func (s *stubConfirmation) SendConfirmation(ctx context.Context, user *entity.User) error {
	s.sent = append(s.sent, user.ID)
	return nil
}

func (s *stubConfirmation) Lookup(ctx context.Context, key string) (uuid.UUID, error) {
	if s.userID == uuid.Nil {
		return uuid.Nil, service.ErrInvalidConfirmationKey
	}
	return s.userID, nil
}

func (s *stubConfirmation) Discard(ctx context.Context, key string) error {
	s.discarded = append(s.discarded, key)
	return nil
}

var errInjected = errors.New("injected failure")

// failCreate makes every insert into table fail while the callback is registered.
func failCreate(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_create_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(errInjected)
		}
	}))
}

// failUpdate makes every update of table fail while the callback is registered.
func failUpdate(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:fail_update_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(errInjected)
		}
	}))
}

func newAccountUsecase(t *testing.T, db *gorm.DB) (AccountUsecase, *stubConfirmation, *stubMedia) {
	t.Helper()

	log := testutil.NewLogger()
	confirmation := &stubConfirmation{}
	media := &stubMedia{}
	uc := NewAccountUsecase(db, log,
		config.AccountConfig{UniqueEmail: true, ConfirmationExpiry: time.Hour},
		config.StorageConfig{AvatarURLExpiry: time.Hour, ProfilePictureURLExpiry: time.Hour},
		repository.NewUserRepository(),
		repository.NewUserProfileRepository(),
		repository.NewPatientInfoRepository(),
		repository.NewDoctorRepository(),
		repository.NewInstructorRepository(),
		repository.NewTwoFactorAuthRepository(),
		service.NewAuditService(log, repository.NewAuditLogRepository()),
		media,
		confirmation,
	)
	return uc, confirmation, media
}

func signup(email string) *dto.SignupRequest {
	return &dto.SignupRequest{
		UserFields: dto.UserFields{
			Name:      testutil.Ptr("Jane Doe"),
			FirstName: testutil.Ptr("Jane"),
			Gender:    testutil.Ptr(entity.GenderFemale),
			DOB:       testutil.Ptr("1990-01-02"),
		},
		Email:           email,
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	}
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestRegister_CreatesUserAndExtension(t *testing.T) {
	db := testutil.NewDB(t)
	uc, confirmation, _ := newAccountUsecase(t, db)

	req := signup("  Jane@Example.com ")
	req.Profile = &dto.ProfilePayload{UserType: testutil.Ptr(string(entity.UserTypePatient))}
	req.PatientInfo = &dto.PatientInfoPayload{
		Age:           testutil.Ptr(34),
		SupportNeeded: []string{"sleep_better", "reduce_stress"},
	}

	user, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "janedoe", user.Username)
	assert.Equal(t, "1990-01-02", *user.DOB)
	require.NotNil(t, user.Profile)
	assert.Equal(t, "patient", user.Profile.UserType)
	require.NotNil(t, user.PatientInfo)
	assert.Equal(t, []string{"sleep_better", "reduce_stress"}, user.PatientInfo.SupportNeeded)
	assert.False(t, *user.PatientInfo.Allergies)
	assert.Nil(t, user.DoctorInfo)

	assert.EqualValues(t, 1, count(t, db, &entity.User{}))
	assert.EqualValues(t, 1, count(t, db, &entity.PatientInfo{}))
	assert.EqualValues(t, 1, count(t, db, &entity.AuditLog{}))
	assert.Equal(t, []uuid.UUID{user.ID}, confirmation.sent)

	twoFactor, err := repository.NewTwoFactorAuthRepository().FindByUserID(context.Background(), db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, twoFactor)
	assert.Equal(t, "jane@example.com", *twoFactor.Email)
	assert.Equal(t, entity.TwoFactorMethodEmail, *twoFactor.Method)
	assert.Len(t, *twoFactor.Secret, 16)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	db := testutil.NewDB(t)
	uc, confirmation, _ := newAccountUsecase(t, db)

	req := signup("jane@example.com")
	req.ConfirmPassword = "different"

	_, err := uc.Register(context.Background(), req)
	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields, "password")
	assert.Contains(t, vErr.Fields, "confirm_password")

	assert.Zero(t, count(t, db, &entity.User{}))
	assert.Empty(t, confirmation.sent)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, _ := newAccountUsecase(t, db)

	_, err := uc.Register(context.Background(), signup("jane@example.com"))
	require.NoError(t, err)

	req := signup("JANE@example.com")
	req.PatientInfo = &dto.PatientInfoPayload{Age: testutil.Ptr(20)}
	_, err = uc.Register(context.Background(), req)

	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, emailTakenMessage, vErr.Fields["email"])

	assert.EqualValues(t, 1, count(t, db, &entity.User{}))
	assert.Zero(t, count(t, db, &entity.PatientInfo{}))
}

func TestRegister_RejectsMultipleExtensions(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, _ := newAccountUsecase(t, db)

	req := signup("jane@example.com")
	req.PatientInfo = &dto.PatientInfoPayload{}
	req.DoctorInfo = &dto.DoctorPayload{}

	_, err := uc.Register(context.Background(), req)
	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, vErr.Fields, 2)
	assert.Contains(t, vErr.Fields, "patient_info")
	assert.Contains(t, vErr.Fields, "doctor_info")
	assert.Zero(t, count(t, db, &entity.User{}))
}

func TestRegister_UsernameCollision(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, _ := newAccountUsecase(t, db)

	first, err := uc.Register(context.Background(), signup("jane@example.com"))
	require.NoError(t, err)
	second, err := uc.Register(context.Background(), signup("jane.doe@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "janedoe", first.Username)
	assert.Equal(t, "janedoe1", second.Username)
}

func TestEditUser_OnlyEmailLeavesEverythingElse(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, _ := newAccountUsecase(t, db)

	req := signup("jane@example.com")
	req.PatientInfo = &dto.PatientInfoPayload{Age: testutil.Ptr(34), Occupation: testutil.Ptr("engineer")}
	created, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	edited, err := uc.EditUser(context.Background(), created.ID, &dto.EditUserRequest{
		Email: testutil.Ptr("Jane.New@Example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, "jane.new@example.com", edited.Email)
	assert.Equal(t, created.Username, edited.Username)
	assert.Equal(t, created.Name, edited.Name)
	assert.Equal(t, created.FirstName, edited.FirstName)
	assert.Equal(t, created.Gender, edited.Gender)
	assert.Equal(t, created.DOB, edited.DOB)
	require.NotNil(t, edited.PatientInfo)
	assert.Equal(t, 34, *edited.PatientInfo.Age)
	assert.Equal(t, "engineer", *edited.PatientInfo.Occupation)
	assert.Nil(t, edited.DoctorInfo)
	assert.Nil(t, edited.InstructorInfo)
}

func TestEditUser_CreatesMissingExtension(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, _ := newAccountUsecase(t, db)

	created, err := uc.Register(context.Background(), signup("doc@example.com"))
	require.NoError(t, err)

	edited, err := uc.EditUser(context.Background(), created.ID, &dto.EditUserRequest{
		Extensions: dto.Extensions{
			Profile:    &dto.ProfilePayload{UserType: testutil.Ptr(string(entity.UserTypeDoctor))},
			DoctorInfo: &dto.DoctorPayload{Specialized: testutil.Ptr(entity.SpecializedPT)},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, edited.Profile)
	assert.Equal(t, "doctor", edited.Profile.UserType)
	require.NotNil(t, edited.DoctorInfo)
	assert.Equal(t, entity.SpecializedPT, *edited.DoctorInfo.Specialized)

	var doctor entity.Doctor
	require.NoError(t, db.Where("user_id = ?", created.ID).First(&doctor).Error)
	require.NotNil(t, doctor.LastUpdatedByID)
	assert.Equal(t, created.ID, *doctor.LastUpdatedByID)
}

func TestEditUser_EmailTakenByAnotherUser(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, _ := newAccountUsecase(t, db)

	_, err := uc.Register(context.Background(), signup("taken@example.com"))
	require.NoError(t, err)
	other, err := uc.Register(context.Background(), signup("other@example.com"))
	require.NoError(t, err)

	_, err = uc.EditUser(context.Background(), other.ID, &dto.EditUserRequest{Email: testutil.Ptr("Taken@example.com")})
	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.Fields, "email")

	// keeping one's own address is not a conflict
	_, err = uc.EditUser(context.Background(), other.ID, &dto.EditUserRequest{Email: testutil.Ptr("OTHER@example.com")})
	require.NoError(t, err)
}

func TestGetDetails_SignsStoredMedia(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, media := newAccountUsecase(t, db)

	created, err := uc.Register(context.Background(), signup("jane@example.com"))
	require.NoError(t, err)

	details, err := uc.GetDetails(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, details.AvatarSignedURL)

	details, err = uc.UpdateAvatar(context.Background(), created.ID, "me.png", nil, "image/png")
	require.NoError(t, err)
	require.Len(t, media.uploaded, 1)
	assert.Equal(t, media.uploaded[0], *details.Avatar)
	assert.Equal(t, media.uploaded[0]+"?signed", *details.AvatarSignedURL)
	assert.Nil(t, details.ProfilePictureSignedURL)
}

func TestConfirmEmail_InvalidKey(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, _ := newAccountUsecase(t, db)

	err := uc.ConfirmEmail(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrInvalidConfirmation)
}

func TestRegister_RollsBackWhenExtensionFails(t *testing.T) {
	db := testutil.NewDB(t)
	uc, confirmation, _ := newAccountUsecase(t, db)
	failCreate(t, db, "doctors")

	req := signup("doc@example.com")
	req.Profile = &dto.ProfilePayload{UserType: testutil.Ptr(string(entity.UserTypeDoctor))}
	req.DoctorInfo = &dto.DoctorPayload{Specialized: testutil.Ptr(entity.SpecializedPT)}

	_, err := uc.Register(context.Background(), req)
	assert.ErrorIs(t, err, errInjected)

	assert.Zero(t, count(t, db, &entity.User{}))
	assert.Zero(t, count(t, db, &entity.UserProfile{}))
	assert.Zero(t, count(t, db, &entity.Doctor{}))
	assert.Zero(t, count(t, db, &entity.TwoFactorAuth{}))
	assert.Zero(t, count(t, db, &entity.AuditLog{}))
	assert.Empty(t, confirmation.sent)
}

func TestRegister_RetriesUsernameTakenConcurrently(t *testing.T) {
	db := testutil.NewDB(t)
	uc, confirmation, _ := newAccountUsecase(t, db)

	failures := 1
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:username_race", func(tx *gorm.DB) {
		if tx.Statement.Table == "users" && failures > 0 {
			failures--
			tx.AddError(gorm.ErrDuplicatedKey)
		}
	}))

	user, err := uc.Register(context.Background(), signup("jane@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "janedoe", user.Username)
	assert.EqualValues(t, 1, count(t, db, &entity.User{}))
	assert.Equal(t, []uuid.UUID{user.ID}, confirmation.sent)
}

func TestRegister_UsernameRaceExhausted(t *testing.T) {
	db := testutil.NewDB(t)
	uc, confirmation, _ := newAccountUsecase(t, db)

	attempts := 0
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:username_race", func(tx *gorm.DB) {
		if tx.Statement.Table == "users" {
			attempts++
			tx.AddError(gorm.ErrDuplicatedKey)
		}
	}))

	_, err := uc.Register(context.Background(), signup("jane@example.com"))
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, usernameAttempts, attempts)
	assert.Zero(t, count(t, db, &entity.User{}))
	assert.Empty(t, confirmation.sent)
}

func TestIsDuplicateKeyError_TranslatedErrorHasNoConstraint(t *testing.T) {
	assert.True(t, isDuplicateKeyError(gorm.ErrDuplicatedKey, ""))
	assert.False(t, isDuplicateKeyError(gorm.ErrDuplicatedKey, "email"))
	assert.False(t, isDuplicateKeyError(errInjected, ""))
}

func TestEditUser_RollsBackWhenExtensionFails(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, _ := newAccountUsecase(t, db)

	created, err := uc.Register(context.Background(), signup("jane@example.com"))
	require.NoError(t, err)
	failUpdate(t, db, "patient_infos")

	_, err = uc.EditUser(context.Background(), created.ID, &dto.EditUserRequest{
		Email:      testutil.Ptr("jane.new@example.com"),
		Extensions: dto.Extensions{PatientInfo: &dto.PatientInfoPayload{Age: testutil.Ptr(34)}},
	})
	assert.ErrorIs(t, err, errInjected)

	var stored entity.User
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Zero(t, count(t, db, &entity.PatientInfo{}))
	assert.EqualValues(t, 1, count(t, db, &entity.AuditLog{}))
}

func TestEditUser_AuditKeepsPreviousExtensions(t *testing.T) {
	db := testutil.NewDB(t)
	uc, _, _ := newAccountUsecase(t, db)

	req := signup("jane@example.com")
	req.PatientInfo = &dto.PatientInfoPayload{Occupation: testutil.Ptr("engineer")}
	created, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.EditUser(context.Background(), created.ID, &dto.EditUserRequest{Email: testutil.Ptr("jane.new@example.com")})
	require.NoError(t, err)

	var entry entity.AuditLog
	require.NoError(t, db.Where("action = ?", entity.AuditActionProfileUpdate).First(&entry).Error)

	oldValue, ok := entry.Metadata["old_value"].(map[string]interface{})
	require.True(t, ok, "old_value is %T", entry.Metadata["old_value"])
	assert.Equal(t, "jane@example.com", oldValue["email"])
	require.Contains(t, oldValue, "patient_info")
	oldInfo, ok := oldValue["patient_info"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "engineer", oldInfo["occupation"])
}

func TestConfirmEmail_VerifiesAndDiscardsKey(t *testing.T) {
	db := testutil.NewDB(t)
	uc, confirmation, _ := newAccountUsecase(t, db)

	created, err := uc.Register(context.Background(), signup("jane@example.com"))
	require.NoError(t, err)
	confirmation.userID = created.ID

	require.NoError(t, uc.ConfirmEmail(context.Background(), "abc"))

	var stored entity.User
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.True(t, stored.EmailVerified)
	assert.Equal(t, []string{"abc"}, confirmation.discarded)
}

func TestConfirmEmail_KeepsKeyWhenWriteFails(t *testing.T) {
	db := testutil.NewDB(t)
	uc, confirmation, _ := newAccountUsecase(t, db)

	created, err := uc.Register(context.Background(), signup("jane@example.com"))
	require.NoError(t, err)
	confirmation.userID = created.ID
	failUpdate(t, db, "users")

	err = uc.ConfirmEmail(context.Background(), "abc")
	assert.ErrorIs(t, err, errInjected)
	assert.Empty(t, confirmation.discarded)

	var stored entity.User
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.False(t, stored.EmailVerified)
}
