package urlbuilder

import (
	"imglab-urls/internal/imglab"
	"imglab-urls/internal/platform/config"
)

// SourceName identifies a registered CDN source.
type SourceName string

// SourceFromConfig builds an immutable imglab.Source from its catalog entry.
func SourceFromConfig(c config.SourceConfig) (imglab.Source, error) {
	opts := []imglab.SourceOption{
		imglab.WithPort(c.Port),
		imglab.WithSecureKey(c.SecureKey),
		imglab.WithSecureSalt(c.SecureSalt),
	}
	if c.Host != "" {
		opts = append(opts, imglab.WithHost(c.Host))
	}
	if c.HTTPS != nil {
		opts = append(opts, imglab.WithHTTPS(*c.HTTPS))
	}
	if c.Subdomains != nil {
		opts = append(opts, imglab.WithSubdomains(*c.Subdomains))
	}
	return imglab.NewSource(c.Name, opts...)
}

// RegisterAll builds and registers every catalog entry in order. It stops at
// the first entry that fails.
func RegisterAll(repo Repository, cfgs []config.SourceConfig) error {
	for _, c := range cfgs {
		src, err := SourceFromConfig(c)
		if err != nil {
			return err
		}
		if err := repo.Register(src); err != nil {
			return err
		}
	}
	return nil
}
