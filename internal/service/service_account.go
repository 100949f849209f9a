package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/station-farmer/internal/adapter"
	"github.com/MKhiriev/station-farmer/internal/app"
	"github.com/MKhiriev/station-farmer/internal/config"
	"github.com/MKhiriev/station-farmer/internal/logger"
	"github.com/MKhiriev/station-farmer/internal/utils"
	"github.com/MKhiriev/station-farmer/models"
)

type accountService struct {
	newAdapter adapter.Factory
	proxies    ProxyProvider
	useProxy   bool
	skipQuests models.SkipSet
	now        func() time.Time

	logger *logger.Logger
}

// NewAccountService returns an [AccountService] that builds a fresh platform
// adapter for every account with newAdapter. When cfg.Adapter.UseProxy is set
// every account is routed through proxies.ProxyFor(account.Index).
func NewAccountService(newAdapter adapter.Factory, proxies ProxyProvider, cfg config.FarmerConfig, logger *logger.Logger) AccountService {
	return &accountService{
		newAdapter: newAdapter,
		proxies:    proxies,
		useProxy:   cfg.Adapter.UseProxy && proxies != nil,
		skipQuests: cfg.App.SkipQuests,
		now:        time.Now,
		logger:     logger,
	}
}

// Process implements [AccountService]. A malformed credential is returned
// without being logged: the caller owning the unit of work reports it.
func (s *accountService) Process(ctx context.Context, account models.Account) error {
	base := logger.FromContextOr(ctx, s.logger)
	log := base.WithAccount(account.Number(), "")

	identity, err := utils.ParseInitDataUser(account.Credential.String())
	if err != nil {
		return fmt.Errorf("account %d: %w", account.Number(), err)
	}

	var proxyURL string
	if s.useProxy {
		proxyURL = s.proxies.ProxyFor(account.Index)
	}

	platform, err := s.newAdapter(proxyURL)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgAdapterCreateFailed)
		return nil
	}

	if s.useProxy {
		ip, ipErr := platform.ResolvePublicIP(ctx)
		if ipErr != nil {
			log.Warn().Err(ipErr).Msg(app.MsgProxyCheckFailed)
			return nil
		}
		log = base.WithAccount(account.Number(), ip)
	}
	ctx = log.WithContext(ctx)

	log.Info().Msgf(app.MsgAccountBanner, account.Number(), identity.FirstName)

	session, err := platform.Authenticate(ctx, account.Credential)
	if err != nil {
		log.Error().Err(err).Int64("user_id", identity.ID).Msg(app.MsgLoginFailed)
		return nil
	}

	event := log.Info()
	if !session.ExpiresAt.IsZero() {
		event = event.Time("session_expires_at", session.ExpiresAt)
	}
	event.Msg(app.MsgLoginSuccessful)

	s.handleFarming(ctx, platform, session, identity.ID)
	s.handleQuests(ctx, platform, session, identity.ID)

	return nil
}
