package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tassili/internal/repositories"
	"tassili/internal/services"
	mem "tassili/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	resetTokens mem.ResetTokenStore,
	mailService services.IMailService,
	storage services.StorageService,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens, mailService, storage)
}
