package imglab

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultHost       = "imglab-cdn.net"
	DefaultHTTPS      = true
	DefaultSubdomains = true
)

// Source is the immutable endpoint configuration for one asset bucket.
// A Source is safe to share between goroutines.
type Source struct {
	name       string
	host       string
	https      bool
	port       int
	subdomains bool
	secureKey  string
	secureSalt string
	signer     *Signer
}

// SourceOption customizes a Source at construction time.
type SourceOption func(*Source)

func WithHost(host string) SourceOption {
	return func(s *Source) { s.host = host }
}

func WithHTTPS(https bool) SourceOption {
	return func(s *Source) { s.https = https }
}

// WithPort sets an explicit port. Zero means the scheme default.
func WithPort(port int) SourceOption {
	return func(s *Source) { s.port = port }
}

// WithSubdomains selects "{name}.{host}" hosts (true) or a leading name path segment (false).
func WithSubdomains(subdomains bool) SourceOption {
	return func(s *Source) { s.subdomains = subdomains }
}

// WithSecureKey sets the base64 encoded signing key.
func WithSecureKey(key string) SourceOption {
	return func(s *Source) { s.secureKey = key }
}

// WithSecureSalt sets the base64 encoded signing salt.
func WithSecureSalt(salt string) SourceOption {
	return func(s *Source) { s.secureSalt = salt }
}

// NewSource builds a Source named name. URLs built from a source holding both
// a secure key and a secure salt are signed.
func NewSource(name string, opts ...SourceOption) (Source, error) {
	s := Source{
		name:       name,
		host:       DefaultHost,
		https:      DefaultHTTPS,
		subdomains: DefaultSubdomains,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if name == "" || strings.ContainsAny(name, "/ \t\r\n") {
		return Source{}, fmt.Errorf("%w: name %q", ErrInvalidSource, name)
	}
	if s.host == "" {
		return Source{}, fmt.Errorf("%w: empty host for %q", ErrInvalidSource, name)
	}
	if s.port < 0 || s.port > 65535 {
		return Source{}, fmt.Errorf("%w: port %d for %q", ErrInvalidSource, s.port, name)
	}
	if s.IsSecure() {
		signer, err := NewSigner(s.secureKey, s.secureSalt)
		if err != nil {
			return Source{}, fmt.Errorf("%w: %s: %v", ErrInvalidSource, name, err)
		}
		s.signer = signer
	}
	return s, nil
}

func (s Source) Name() string { return s.name }

// Host returns the effective host name URLs are built against.
func (s Source) Host() string {
	if s.subdomains {
		return s.name + "." + s.host
	}
	return s.host
}

// BaseHost returns the configured host template without the source name.
func (s Source) BaseHost() string { return s.host }

func (s Source) HTTPS() bool { return s.https }

func (s Source) Subdomains() bool { return s.subdomains }

// Port returns the explicit port, if one was set.
func (s Source) Port() (int, bool) { return s.port, s.port != 0 }

func (s Source) Scheme() string {
	if s.https {
		return "https"
	}
	return "http"
}

// IsSecure reports whether both signing secrets are present.
func (s Source) IsSecure() bool {
	return s.secureKey != "" && s.secureSalt != ""
}

// Path returns p as it appears after the host: prefixed with the source name
// when subdomains are disabled.
func (s Source) Path(p string) string {
	if s.subdomains {
		return p
	}
	return s.name + "/" + p
}

func (s Source) authority() string {
	if port, ok := s.Port(); ok {
		return s.Host() + ":" + strconv.Itoa(port)
	}
	return s.Host()
}
