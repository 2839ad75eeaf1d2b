package urlbuilder

import (
	"errors"
	"strings"
	"testing"

	"imglab-urls/internal/imglab"
	"imglab-urls/internal/platform/config"
)

const (
	testSecureKey  = "ixUd9is/LDGBw6NPfLCGLjO/WraJlHdytC1+xiIFj22mXAWs/6R6ws4gxSXbDcUHMHv0G+oiTgyfMVsRS2b3"
	testSecureSalt = "c9G9eYKCeWen7vkEyV1cnr4MZkfLI/yo6j72JItzKHjMGDNZKqPFzRtup//qiT51HKGJrAha6Gv2huSFLwJr"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := NewInMemoryRepository()
	if err := repo.Register(mustSource(t, "assets")); err != nil {
		t.Fatal(err)
	}
	secure := mustSource(t, "secure", imglab.WithSecureKey(testSecureKey), imglab.WithSecureSalt(testSecureSalt))
	if err := repo.Register(secure); err != nil {
		t.Fatal(err)
	}
	return NewService(repo)
}

func TestService_URL(t *testing.T) {
	svc := newTestService(t)
	params := imglab.NewParams().Set("width", imglab.Int(200)).Set("format", imglab.String("png"))

	u, err := svc.URL("assets", "/example.jpeg", params)
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if u != "https://assets.imglab-cdn.net/example.jpeg?width=200&format=png" {
		t.Errorf("unexpected url %s", u)
	}
}

func TestService_URL_secure(t *testing.T) {
	svc := newTestService(t)
	u, err := svc.URL("secure", "example.jpeg", nil)
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if !strings.HasPrefix(u, "https://secure.imglab-cdn.net/example.jpeg?signature=") {
		t.Errorf("expected signed url, got %s", u)
	}
}

func TestService_URL_unknown_source(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.URL("missing", "example.jpeg", nil)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("expected ErrSourceNotFound, got %v", err)
	}
	if !errors.Is(err, imglab.ErrInvalidSource) {
		t.Errorf("ErrSourceNotFound should match imglab.ErrInvalidSource, got %v", err)
	}
}

func TestService_Srcset(t *testing.T) {
	svc := newTestService(t)
	params := imglab.NewParams().Set("width", imglab.Int(100)).Set("dpr", imglab.Ints(1, 2))

	out, err := svc.Srcset("assets", "example.jpeg", params)
	if err != nil {
		t.Fatalf("Srcset: %v", err)
	}
	want := "https://assets.imglab-cdn.net/example.jpeg?width=100&dpr=1 1x,\n" +
		"https://assets.imglab-cdn.net/example.jpeg?width=100&dpr=2 2x"
	if out != want {
		t.Errorf("unexpected srcset:\n%s", out)
	}
}

func TestService_Srcset_unknown_source(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Srcset("missing", "example.jpeg", nil); !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestService_Sequence(t *testing.T) {
	svc := newTestService(t)

	seq, err := svc.Sequence(100, 8192, 4)
	if err != nil {
		t.Fatalf("Sequence: %v", err)
	}
	want := []int{100, 434, 1886, 8192}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("seq[%d] = %d, want %d", i, seq[i], want[i])
		}
	}

	def, err := svc.Sequence(100, 8192, 0)
	if err != nil || len(def) != imglab.SequenceDefaultSize {
		t.Errorf("default size: len=%d err=%v", len(def), err)
	}
}

func TestService_Sequence_invalid(t *testing.T) {
	svc := newTestService(t)
	cases := [][3]int{{0, 100, 4}, {100, -1, 4}, {100, 200, -1}, {100, 200, MaxSequenceSize + 1}}
	for _, c := range cases {
		if _, err := svc.Sequence(c[0], c[1], c[2]); !errors.Is(err, imglab.ErrMalformedRange) {
			t.Errorf("Sequence(%v): expected ErrMalformedRange, got %v", c, err)
		}
	}
}

func TestSourceFromConfig(t *testing.T) {
	https, subdomains := false, false
	src, err := SourceFromConfig(config.SourceConfig{
		Name:       "assets",
		Host:       "imglab.net",
		HTTPS:      &https,
		Port:       8080,
		Subdomains: &subdomains,
	})
	if err != nil {
		t.Fatalf("SourceFromConfig: %v", err)
	}
	u, err := imglab.URL(src, "example.jpeg", nil)
	if err != nil {
		t.Fatal(err)
	}
	if u != "http://imglab.net:8080/assets/example.jpeg" {
		t.Errorf("unexpected url %s", u)
	}

	def, err := SourceFromConfig(config.SourceConfig{Name: "assets"})
	if err != nil {
		t.Fatal(err)
	}
	if def.Host() != "assets.imglab-cdn.net" || def.Scheme() != "https" {
		t.Errorf("defaults not applied: %s %s", def.Scheme(), def.Host())
	}

	if _, err := SourceFromConfig(config.SourceConfig{}); !errors.Is(err, imglab.ErrInvalidSource) {
		t.Errorf("expected ErrInvalidSource, got %v", err)
	}
}

func TestRegisterAll(t *testing.T) {
	repo := NewInMemoryRepository()
	err := RegisterAll(repo, []config.SourceConfig{{Name: "assets"}, {Name: "media", Host: "imglab.net"}})
	if err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	if repo.Count() != 2 {
		t.Errorf("Count = %d, want 2", repo.Count())
	}

	err = RegisterAll(repo, []config.SourceConfig{{Name: "assets"}})
	if !errors.Is(err, ErrDuplicateSource) {
		t.Errorf("expected ErrDuplicateSource, got %v", err)
	}
	err = RegisterAll(NewInMemoryRepository(), []config.SourceConfig{{Name: "bad/name"}})
	if !errors.Is(err, imglab.ErrInvalidSource) {
		t.Errorf("expected ErrInvalidSource, got %v", err)
	}
}
