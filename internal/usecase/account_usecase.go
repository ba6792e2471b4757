package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"io"
	"strings"

	"healthcare-backend/config"
	"healthcare-backend/internal/converter"
	"healthcare-backend/internal/delivery/dto"
	"healthcare-backend/internal/domain/entity"
	"healthcare-backend/internal/domain/repository"
	"healthcare-backend/internal/service"
	"healthcare-backend/pkg/username"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken       = errors.New("username already taken, please retry")
	ErrInvalidConfirmation = errors.New("invalid or expired confirmation link")
)

// usernameAttempts bounds how often Register regenerates a username that a
// concurrent signup claimed between the lookup and the insert.
const usernameAttempts = 3

const (
	passwordMismatchMessage = "Password and Confirm Password don't match"
	emailTakenMessage       = "A user is already registered with this e-mail address."
)

// AccountUsecase owns the composite writes of a user and its extension records.
type AccountUsecase interface {
	Register(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	EditUser(ctx context.Context, userID uuid.UUID, req *dto.EditUserRequest) (*dto.UserResponse, error)
	ConfirmEmail(ctx context.Context, key string) error
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	GetDetails(ctx context.Context, userID uuid.UUID) (*dto.UserDetailResponse, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, filename string, body io.Reader, contentType string) (*dto.UserDetailResponse, error)
	UpdateProfilePicture(ctx context.Context, userID uuid.UUID, filename string, body io.Reader, contentType string) (*dto.UserDetailResponse, error)
}

type accountUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	accountCfg          config.AccountConfig
	storageCfg          config.StorageConfig
	userRepo            repository.UserRepository
	profileRepo         repository.UserProfileRepository
	patientInfoRepo     repository.PatientInfoRepository
	doctorRepo          repository.DoctorRepository
	instructorRepo      repository.InstructorRepository
	twoFactorRepo       repository.TwoFactorAuthRepository
	auditService        service.AuditService
	mediaService        service.MediaService
	confirmationService service.ConfirmationService
}

func NewAccountUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	accountCfg config.AccountConfig,
	storageCfg config.StorageConfig,
	userRepo repository.UserRepository,
	profileRepo repository.UserProfileRepository,
	patientInfoRepo repository.PatientInfoRepository,
	doctorRepo repository.DoctorRepository,
	instructorRepo repository.InstructorRepository,
	twoFactorRepo repository.TwoFactorAuthRepository,
	auditService service.AuditService,
	mediaService service.MediaService,
	confirmationService service.ConfirmationService,
) AccountUsecase {
	return &accountUsecase{
		db:                  db,
		log:                 log,
		accountCfg:          accountCfg,
		storageCfg:          storageCfg,
		userRepo:            userRepo,
		profileRepo:         profileRepo,
		patientInfoRepo:     patientInfoRepo,
		doctorRepo:          doctorRepo,
		instructorRepo:      instructorRepo,
		twoFactorRepo:       twoFactorRepo,
		auditService:        auditService,
		mediaService:        mediaService,
		confirmationService: confirmationService,
	}
}

// Register creates the user, its optional profile and at most one extension record
// in a single transaction. The confirmation mail goes out only after commit.
func (u *accountUsecase) Register(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	kind, err := resolveExtension(&req.Extensions)
	if err != nil {
		return nil, err
	}

	if req.Password != req.ConfirmPassword {
		return nil, NewValidationError(map[string]string{
			"password":         passwordMismatchMessage,
			"confirm_password": passwordMismatchMessage,
		})
	}

	dob, err := parseDate("dob", req.DOB)
	if err != nil {
		return nil, err
	}

	email := cleanEmail(req.Email)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if u.accountCfg.UniqueEmail {
		exists, err := u.userRepo.EmailExists(ctx, tx, email, nil)
		if err != nil {
			u.log.Warnf("Failed to check email uniqueness: %+v", err)
			return nil, err
		}
		if exists {
			return nil, NewValidationError(map[string]string{"email": emailTakenMessage})
		}
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
		IsActive: true,
	}
	applyUserFields(user, &req.UserFields, dob)

	if err := u.createWithUsername(ctx, tx, user, name); err != nil {
		return nil, err
	}

	if req.Profile != nil && req.Profile.UserType != nil {
		profile := &entity.UserProfile{UserID: user.ID}
		applyProfile(profile, req.Profile)
		if err := u.profileRepo.Create(ctx, tx, profile); err != nil {
			u.log.Warnf("Failed to create user profile: %+v", err)
			return nil, err
		}
		user.Profile = profile
	}

	switch kind {
	case extensionPatient:
		info := entity.NewPatientInfo(user.ID)
		applyPatientInfo(info, req.PatientInfo)
		if err := u.patientInfoRepo.Create(ctx, tx, info); err != nil {
			u.log.Warnf("Failed to create patient info: %+v", err)
			return nil, err
		}
		user.PatientInfo = info
	case extensionDoctor:
		doctor := &entity.Doctor{UserID: user.ID}
		applyDoctor(doctor, req.DoctorInfo, user.ID)
		if err := u.doctorRepo.Create(ctx, tx, doctor); err != nil {
			u.log.Warnf("Failed to create doctor: %+v", err)
			return nil, err
		}
		user.Doctor = doctor
	case extensionInstructor:
		instructor := &entity.Instructor{UserID: user.ID}
		applyInstructor(instructor, req.InstructorInfo, user.ID)
		if err := u.instructorRepo.Create(ctx, tx, instructor); err != nil {
			u.log.Warnf("Failed to create instructor: %+v", err)
			return nil, err
		}
		user.Instructor = instructor
	}

	secret, err := newTwoFactorSecret()
	if err != nil {
		u.log.Warnf("Failed to generate two factor secret: %+v", err)
		return nil, err
	}
	method := entity.TwoFactorMethodEmail
	twoFactor := &entity.TwoFactorAuth{
		UserID: &user.ID,
		Email:  &user.Email,
		Secret: &secret,
		Method: &method,
	}
	if err := u.twoFactorRepo.Create(ctx, tx, twoFactor); err != nil {
		u.log.Warnf("Failed to create two factor record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), map[string]interface{}{
		"username":  user.Username,
		"email":     user.Email,
		"extension": kind.String(),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if u.confirmationService != nil {
		if err := u.confirmationService.SendConfirmation(ctx, user); err != nil {
			u.log.Warnf("Failed to send confirmation for user %s: %+v", user.ID, err)
		}
	}

	return converter.UserToResponse(user), nil
}

// createWithUsername inserts user under a freshly generated username. A unique
// violation means another signup took the name after the lookup; the insert is
// rolled back to a savepoint and retried with a new candidate.
func (u *accountUsecase) createWithUsername(ctx context.Context, tx *gorm.DB, user *entity.User, name string) error {
	for attempt := 1; attempt <= usernameAttempts; attempt++ {
		generated, err := username.Generate(ctx, name, user.Email, func(ctx context.Context, candidate string) (bool, error) {
			return u.userRepo.UsernameExists(ctx, tx, candidate)
		})
		if err != nil {
			u.log.Warnf("Failed to generate username: %+v", err)
			return err
		}
		user.Username = generated

		if err := tx.SavePoint("create_user").Error; err != nil {
			u.log.Warnf("Failed to create savepoint: %+v", err)
			return err
		}

		err = u.userRepo.Create(ctx, tx, user)
		if err == nil {
			return nil
		}
		// users.username is the only unique column besides the primary key.
		if !isDuplicateKeyError(err, "") {
			u.log.Warnf("Failed to create user: %+v", err)
			return err
		}

		u.log.Warnf("Username %q taken concurrently (attempt %d/%d)", generated, attempt, usernameAttempts)
		if err := tx.RollbackTo("create_user").Error; err != nil {
			u.log.Warnf("Failed to roll back to savepoint: %+v", err)
			return err
		}
	}
	return ErrUsernameTaken
}

// EditUser applies a partial update: only fields present in req change. Nested
// payloads get-or-create their record first, in the order profile, patient,
// doctor, instructor. The whole edit commits or rolls back as one.
func (u *accountUsecase) EditUser(ctx context.Context, userID uuid.UUID, req *dto.EditUserRequest) (*dto.UserResponse, error) {
	kind, err := resolveExtension(&req.Extensions)
	if err != nil {
		return nil, err
	}

	dob, err := parseDate("dob", req.DOB)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByIDWithExtensions(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	oldValue := converter.UserToResponse(user)

	if req.Email != nil {
		email := cleanEmail(*req.Email)
		if u.accountCfg.UniqueEmail && !strings.EqualFold(email, user.Email) {
			exists, err := u.userRepo.EmailExists(ctx, tx, email, &user.ID)
			if err != nil {
				u.log.Warnf("Failed to check email uniqueness: %+v", err)
				return nil, err
			}
			if exists {
				return nil, NewValidationError(map[string]string{"email": emailTakenMessage})
			}
		}
		user.Email = email
	}
	applyUserFields(user, &req.UserFields, dob)

	if err := u.userRepo.Update(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if req.Profile != nil {
		profile, err := u.profileRepo.FirstOrCreate(ctx, tx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to get or create user profile: %+v", err)
			return nil, err
		}
		applyProfile(profile, req.Profile)
		if err := u.profileRepo.Update(ctx, tx, profile); err != nil {
			u.log.Warnf("Failed to update user profile: %+v", err)
			return nil, err
		}
	}

	switch kind {
	case extensionPatient:
		info, err := u.patientInfoRepo.FirstOrCreate(ctx, tx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to get or create patient info: %+v", err)
			return nil, err
		}
		applyPatientInfo(info, req.PatientInfo)
		if err := u.patientInfoRepo.Update(ctx, tx, info); err != nil {
			u.log.Warnf("Failed to update patient info: %+v", err)
			return nil, err
		}
	case extensionDoctor:
		doctor, err := u.doctorRepo.FirstOrCreate(ctx, tx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to get or create doctor: %+v", err)
			return nil, err
		}
		applyDoctor(doctor, req.DoctorInfo, userID)
		if err := u.doctorRepo.Update(ctx, tx, doctor); err != nil {
			u.log.Warnf("Failed to update doctor: %+v", err)
			return nil, err
		}
	case extensionInstructor:
		instructor, err := u.instructorRepo.FirstOrCreate(ctx, tx, user.ID)
		if err != nil {
			u.log.Warnf("Failed to get or create instructor: %+v", err)
			return nil, err
		}
		applyInstructor(instructor, req.InstructorInfo, userID)
		if err := u.instructorRepo.Update(ctx, tx, instructor); err != nil {
			u.log.Warnf("Failed to update instructor: %+v", err)
			return nil, err
		}
	}

	updated, err := u.userRepo.FindByIDWithExtensions(ctx, tx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to reload user: %+v", err)
		return nil, err
	}
	newValue := converter.UserToResponse(updated)

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionProfileUpdate, "user", user.ID.String(), oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// ConfirmEmail marks the user behind key as verified. The key is discarded only
// after the transaction commits so a failed write leaves the link usable.
func (u *accountUsecase) ConfirmEmail(ctx context.Context, key string) error {
	userID, err := u.confirmationService.Lookup(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrInvalidConfirmationKey) {
			return ErrInvalidConfirmation
		}
		u.log.Warnf("Failed to read confirmation key: %+v", err)
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := u.userRepo.UpdateColumns(ctx, tx, userID, map[string]interface{}{"email_verified": true}); err != nil {
		u.log.Warnf("Failed to mark email verified: %+v", err)
		return err
	}

	if err := u.auditService.Log(ctx, tx, &userID, entity.AuditActionEmailConfirm, entity.JSON{"email": user.Email}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.confirmationService.Discard(ctx, key); err != nil {
		u.log.Warnf("Failed to discard confirmation key: %+v", err)
	}
	return nil
}

func (u *accountUsecase) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByIDWithExtensions(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *accountUsecase) GetDetails(ctx context.Context, userID uuid.UUID) (*dto.UserDetailResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	avatarURL, err := u.mediaService.SignedURL(ctx, user.Avatar, u.storageCfg.AvatarURLExpiry)
	if err != nil {
		return nil, err
	}
	pictureURL, err := u.mediaService.SignedURL(ctx, user.ProfilePicture, u.storageCfg.ProfilePictureURLExpiry)
	if err != nil {
		return nil, err
	}

	return converter.UserToDetailResponse(user, avatarURL, pictureURL), nil
}

func (u *accountUsecase) UpdateAvatar(ctx context.Context, userID uuid.UUID, filename string, body io.Reader, contentType string) (*dto.UserDetailResponse, error) {
	return u.updateMedia(ctx, userID, service.AvatarFolder, "avatar", filename, body, contentType)
}

func (u *accountUsecase) UpdateProfilePicture(ctx context.Context, userID uuid.UUID, filename string, body io.Reader, contentType string) (*dto.UserDetailResponse, error) {
	return u.updateMedia(ctx, userID, service.ProfilePictureFolder, "profile_picture", filename, body, contentType)
}

func (u *accountUsecase) updateMedia(ctx context.Context, userID uuid.UUID, folder, column, filename string, body io.Reader, contentType string) (*dto.UserDetailResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	objectURL, err := u.mediaService.Upload(ctx, folder, userID, filename, body, contentType)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.userRepo.UpdateColumns(ctx, tx, userID, map[string]interface{}{column: objectURL}); err != nil {
		u.log.Warnf("Failed to update %s: %+v", column, err)
		return nil, err
	}

	if err := u.auditService.Log(ctx, tx, &userID, entity.AuditActionMediaUpdate, entity.JSON{
		"field": column,
		"url":   objectURL,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.GetDetails(ctx, userID)
}

// newTwoFactorSecret returns a 16 character base32 secret.
func newTwoFactorSecret() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base32.StdEncoding.EncodeToString(buf), nil
}
