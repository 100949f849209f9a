package service

import (
	"github.com/MKhiriev/station-farmer/internal/adapter"
	"github.com/MKhiriev/station-farmer/internal/config"
	"github.com/MKhiriev/station-farmer/internal/logger"
)

type Services struct {
	AccountService AccountService
}

func NewServices(newAdapter adapter.Factory, proxies ProxyProvider, cfg config.FarmerConfig, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(newAdapter, proxies, cfg, logger),
	}
}
