package app

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/tirumala-planners/site-backend/config"
	"github.com/tirumala-planners/site-backend/internal/service/catalog"
	"github.com/tirumala-planners/site-backend/internal/service/inquiry"
	"github.com/tirumala-planners/site-backend/internal/service/notify"
	"github.com/tirumala-planners/site-backend/internal/service/quote"
	"github.com/tirumala-planners/site-backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideInquiryService,
		ProvideNotifyService,
		ProvideQuoteService,
		ProvideCatalogService,
	),
)

func ProvideInquiryService(db *gorm.DB) inquiry.Service {
	return inquiry.New(db)
}

func ProvideNotifyService(client *email.Client, cfg *config.Config) notify.Service {
	return notify.New(client, cfg.Email.Owner)
}

func ProvideQuoteService(store inquiry.Service, notifier notify.Service) quote.Service {
	return quote.New(store, notifier)
}

func ProvideCatalogService(cfg *config.Config) catalog.Service {
	return catalog.New(cfg.Assets.Dir)
}
