package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tassili/internal/models/db_models"
	"tassili/internal/models/request_models"
	mem "tassili/pkg/memcache"
	"tassili/pkg/utils"
)

type fakeAccountRepo struct {
	byId    map[string]db_models.Account
	byEmail map[string]string // email -> id
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byId:    make(map[string]db_models.Account),
		byEmail: make(map[string]string),
	}
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.byId[account.ID.String()] = *account
	f.byEmail[account.Email] = account.ID.String()
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	account, ok := f.byId[id]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	return f.FindById(ctx, id)
}

func (f *fakeAccountRepo) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}) error {
	account, ok := f.byId[id]
	if !ok {
		return errors.New("account not found")
	}
	if v, ok := fields["name"]; ok {
		account.Name = v.(string)
	}
	if v, ok := fields["budget_range"]; ok {
		account.BudgetRange = db_models.BudgetRange(v.(string))
	}
	if v, ok := fields["photo_ref"]; ok {
		account.PhotoRef = v.(string)
	}
	if v, ok := fields["photo_is_local"]; ok {
		account.PhotoIsLocal = v.(bool)
	}
	f.byId[id] = account
	return nil
}

func (f *fakeAccountRepo) UpdatePasswordByEmail(ctx context.Context, email string, passwordHash string) error {
	id, ok := f.byEmail[email]
	if !ok {
		return errors.New("account not found")
	}
	account := f.byId[id]
	account.PasswordHash = passwordHash
	f.byId[id] = account
	return nil
}

type fakeMailService struct {
	lastOtp        string
	lastRecipient  string
	lastBookingRef string
}

func (f *fakeMailService) SendPasswordResetOtp(to string, otp string) error {
	f.lastRecipient = to
	f.lastOtp = otp
	return nil
}

func (f *fakeMailService) SendBookingConfirmation(to string, reference string, tripTitle string, totalDisplay string) error {
	f.lastRecipient = to
	f.lastBookingRef = reference
	return nil
}

type fakeStorage struct {
	saveErr error
}

func (f *fakeStorage) Save(filename string, r io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	return "/uploads/" + filename, nil
}

func newTestAccountService() (AccountServiceInterface, *fakeAccountRepo, *fakeMailService, *fakeStorage) {
	repo := newFakeAccountRepo()
	mail := &fakeMailService{}
	storage := &fakeStorage{}
	svc := NewAccountService(repo, mem.NewResetTokens(), mail, storage)
	return svc, repo, mail, storage
}

func signUp(t *testing.T, svc AccountServiceInterface, repo *fakeAccountRepo, email string) string {
	t.Helper()
	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Amina Bensalem",
		Email:       email,
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)
	return repo.byEmail[email]
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	svc, repo, _, _ := newTestAccountService()
	signUp(t, svc, repo, "amina@example.dz")

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Someone Else",
		Email:       "amina@example.dz",
		Password:    "other-pass",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, repo, _, _ := newTestAccountService()
	signUp(t, svc, repo, "amina@example.dz")
	ctx := context.Background()

	resp, err := svc.Login(ctx, request_models.LoginRequest{Email: "amina@example.dz", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "amina@example.dz", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.dz", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestPasswordResetOtpFlow(t *testing.T) {
	svc, repo, mail, _ := newTestAccountService()
	signUp(t, svc, repo, "amina@example.dz")
	ctx := context.Background()

	require.NoError(t, svc.ForgotPassword(ctx, "amina@example.dz"))
	require.Len(t, mail.lastOtp, 6)
	assert.Equal(t, "amina@example.dz", mail.lastRecipient)

	// verify leaves the OTP usable
	require.NoError(t, svc.VerifyOtpToken(request_models.RequestVerifyOtpToken{
		Email: "amina@example.dz", Token: mail.lastOtp,
	}))

	require.NoError(t, svc.ResetPasswordWithOtp(ctx, request_models.ForgotPasswordRequest{
		Email: "amina@example.dz", Token: mail.lastOtp, NewPassword: "brand-new-pass",
	}))

	_, err := svc.Login(ctx, request_models.LoginRequest{Email: "amina@example.dz", Password: "brand-new-pass"})
	require.NoError(t, err)

	// the OTP is single-use
	err = svc.ResetPasswordWithOtp(ctx, request_models.ForgotPasswordRequest{
		Email: "amina@example.dz", Token: mail.lastOtp, NewPassword: "again",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidOtpToken)
}

func TestForgotPasswordUnknownEmailLooksLikeSuccess(t *testing.T) {
	svc, _, mail, _ := newTestAccountService()

	err := svc.ForgotPassword(context.Background(), "nobody@example.dz")
	assert.NoError(t, err)
	assert.Empty(t, mail.lastOtp)
}

func TestVerifyOtpRejectsWrongCode(t *testing.T) {
	svc, repo, mail, _ := newTestAccountService()
	signUp(t, svc, repo, "amina@example.dz")

	require.NoError(t, svc.ForgotPassword(context.Background(), "amina@example.dz"))

	wrong := "000000"
	if mail.lastOtp == wrong {
		wrong = "111111"
	}
	err := svc.VerifyOtpToken(request_models.RequestVerifyOtpToken{Email: "amina@example.dz", Token: wrong})
	assert.ErrorIs(t, err, utils.ErrInvalidOtpToken)
}

func TestUpdateProfile(t *testing.T) {
	svc, repo, _, _ := newTestAccountService()
	id := signUp(t, svc, repo, "amina@example.dz")
	ctx := context.Background()

	profile, err := svc.UpdateProfile(ctx, id, request_models.UpdateProfileRequest{
		DisplayName: "Amina B.",
		BudgetRange: "high",
	})
	require.NoError(t, err)
	assert.Equal(t, "Amina B.", profile.Name)
	assert.Equal(t, "high", profile.BudgetRange)
}

func TestUpdateProfileRejectsTooManyInterests(t *testing.T) {
	svc, repo, _, _ := newTestAccountService()
	id := signUp(t, svc, repo, "amina@example.dz")

	_, err := svc.UpdateProfile(context.Background(), id, request_models.UpdateProfileRequest{
		Interests: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
	})
	assert.ErrorIs(t, err, utils.ErrTooManyInterests)
}

func TestUpdatePhoto(t *testing.T) {
	svc, repo, _, storage := newTestAccountService()
	id := signUp(t, svc, repo, "amina@example.dz")
	ctx := context.Background()

	resp, err := svc.UpdatePhoto(ctx, id, "selfie.jpg", strings.NewReader("img"), "")
	require.NoError(t, err)
	assert.False(t, resp.Degraded)
	assert.True(t, strings.HasSuffix(resp.PhotoRef, "selfie.jpg"))

	storage.saveErr = errors.New("disk full")

	// a failing backend degrades to the caller's local reference
	resp, err = svc.UpdatePhoto(ctx, id, "selfie.jpg", strings.NewReader("img"), "file:///local/selfie.jpg")
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "file:///local/selfie.jpg", resp.PhotoRef)

	// without a local reference there is nothing to fall back to
	_, err = svc.UpdatePhoto(ctx, id, "selfie.jpg", strings.NewReader("img"), "")
	assert.ErrorIs(t, err, utils.ErrStorageUnavailable)
}
