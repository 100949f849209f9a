package store

import (
	"context"

	"github.com/MKhiriev/station-farmer/models"
)

type credentialFileStorage struct {
	path string
}

// NewCredentialFileStorage returns a [CredentialStorage] reading one initData
// blob per line from path.
func NewCredentialFileStorage(path string) CredentialStorage {
	return &credentialFileStorage{path: path}
}

func (s *credentialFileStorage) LoadAccounts(ctx context.Context) ([]models.Account, error) {
	lines, err := readLines(ctx, s.path)
	if err != nil {
		return nil, err
	}

	credentials := make([]models.Credential, 0, len(lines))
	for _, l := range lines {
		credentials = append(credentials, models.Credential(l.text))
	}

	return models.NewAccounts(credentials), nil
}
