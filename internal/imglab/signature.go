package imglab

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Signer computes URL signatures from a source's shared secrets.
type Signer struct {
	key  []byte
	salt []byte
}

// NewSigner decodes the standard base64 secure key and salt.
func NewSigner(secureKey, secureSalt string) (*Signer, error) {
	key, err := base64.StdEncoding.DecodeString(secureKey)
	if err != nil {
		return nil, fmt.Errorf("decode secure key: %w", err)
	}
	salt, err := base64.StdEncoding.DecodeString(secureSalt)
	if err != nil {
		return nil, fmt.Errorf("decode secure salt: %w", err)
	}
	return &Signer{key: key, salt: salt}, nil
}

// Sign returns the unpadded URL-safe base64 HMAC-SHA256 of salt + "/" + path,
// followed by "?" + query when query is not empty. path is the resource path
// before percent-encoding: the normalized relative path or the raw external
// URL, never prefixed with the source name. encodedQuery is the query as sent.
func (s *Signer) Sign(path, encodedQuery string) string {
	mac := hmac.New(sha256.New, s.key)
	_, _ = mac.Write(s.salt)
	_, _ = mac.Write([]byte("/" + path))
	if encodedQuery != "" {
		_, _ = mac.Write([]byte("?" + encodedQuery))
	}
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Signature signs path and encodedQuery with the secrets of src. It returns
// an empty string for sources that are not secure.
func Signature(src Source, path, encodedQuery string) string {
	if src.signer == nil {
		return ""
	}
	return src.signer.Sign(path, encodedQuery)
}
