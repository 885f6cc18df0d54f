package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lib/pq"
	"tassili/internal/models/db_models"
	"tassili/internal/models/request_models"
	"tassili/internal/models/response_models"
	"tassili/internal/repositories"
	mem "tassili/pkg/memcache"
	"tassili/pkg/utils"
)

const (
	otpLength = 6
	otpTTL    = 15 * time.Minute
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOtpToken(request request_models.RequestVerifyOtpToken) error
	ResetPasswordWithOtp(ctx context.Context, request request_models.ForgotPasswordRequest) error

	GetProfile(ctx context.Context, accountId string) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountId string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
	UpdatePhoto(ctx context.Context, accountId string, filename string, r io.Reader, localRef string) (*response_models.PhotoUploadResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resetTokens mem.ResetTokenStore
	mailService IMailService
	storage     StorageService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens mem.ResetTokenStore,
	mailService IMailService,
	storage StorageService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		resetTokens: resetTokens,
		mailService: mailService,
		storage:     storage,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
		BudgetRange:  db_models.BudgetMedium,
		TravelStyle:  db_models.StyleCultural,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{Token: token}, nil
}

// ForgotPassword mails an OTP when the email exists. Lookup failures for an
// unknown email are deliberately indistinguishable from success.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	otp, err := utils.GenerateOtpCode(otpLength)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(otpKey(email, otp), email, otpTTL)

	if err := a.mailService.SendPasswordResetOtp(email, otp); err != nil {
		log.Printf("Failed to send reset OTP to %s: %v", email, err)
	}
	return nil
}

func (a *AccountService) VerifyOtpToken(request request_models.RequestVerifyOtpToken) error {
	if _, ok := a.resetTokens.Peek(otpKey(request.Email, request.Token)); !ok {
		return utils.ErrInvalidOtpToken
	}
	return nil
}

func (a *AccountService) ResetPasswordWithOtp(ctx context.Context, request request_models.ForgotPasswordRequest) error {

	email := a.resetTokens.Consume(otpKey(request.Email, request.Token))
	if email == "" {
		return utils.ErrInvalidOtpToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordByEmail(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountId string) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return buildProfileResponse(account), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountId string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {

	account, err := a.accountRepo.FindById(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if len(request.Interests) > 8 {
		return nil, utils.ErrTooManyInterests
	}

	fields := map[string]interface{}{}
	if request.DisplayName != "" {
		fields["name"] = request.DisplayName
	}
	if request.BudgetRange != "" {
		fields["budget_range"] = request.BudgetRange
	}
	if request.TravelStyle != "" {
		fields["travel_style"] = request.TravelStyle
	}
	if request.Interests != nil {
		fields["interests"] = pq.StringArray(request.Interests)
	}

	if len(fields) > 0 {
		if err := a.accountRepo.UpdateProfile(ctx, accountId, fields); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	updated, err := a.accountRepo.FindById(ctx, accountId)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}
	return buildProfileResponse(updated), nil
}

// UpdatePhoto uploads one profile photo. On a storage failure the service
// falls back exactly once to recording the caller's local reference and
// reports the degradation instead of hiding it.
func (a *AccountService) UpdatePhoto(ctx context.Context, accountId string, filename string, r io.Reader, localRef string) (*response_models.PhotoUploadResponse, error) {

	account, err := a.accountRepo.FindById(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	photoRef, saveErr := a.storage.Save(fmt.Sprintf("%s_%d_%s", accountId, time.Now().Unix(), filename), r)
	degraded := false

	if saveErr != nil {
		log.Printf("Photo upload failed for account %s: %v", accountId, saveErr)
		if localRef == "" {
			return nil, utils.ErrStorageUnavailable
		}
		photoRef = localRef
		degraded = true
	}

	fields := map[string]interface{}{
		"photo_ref":      photoRef,
		"photo_is_local": degraded,
	}
	if err := a.accountRepo.UpdateProfile(ctx, accountId, fields); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PhotoUploadResponse{
		PhotoRef: photoRef,
		Degraded: degraded,
	}, nil
}

func otpKey(email string, otp string) string {
	return email + ":" + otp
}

func buildProfileResponse(account *db_models.Account) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		ID:           account.ID.String(),
		Name:         account.Name,
		Email:        account.Email,
		BudgetRange:  string(account.BudgetRange),
		TravelStyle:  string(account.TravelStyle),
		Interests:    account.Interests,
		PhotoRef:     account.PhotoRef,
		PhotoIsLocal: account.PhotoIsLocal,
	}
}
