package store

import (
	"github.com/MKhiriev/station-farmer/internal/config"
)

type Storages struct {
	CredentialStorage CredentialStorage
	// ProxyStorage is nil when proxying is disabled.
	ProxyStorage ProxyStorage
}

func NewStorages(cfg config.FarmerConfig) *Storages {
	s := &Storages{
		CredentialStorage: NewCredentialFileStorage(cfg.Storage.QueryFile),
	}
	if cfg.Adapter.UseProxy {
		s.ProxyStorage = NewProxyFileStorage(cfg.Storage.ProxyFile)
	}
	return s
}
