package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const defaultProxyScheme = "http"

var supportedProxySchemes = map[string]struct{}{
	"http":   {},
	"https":  {},
	"socks5": {},
}

type proxyFileStorage struct {
	path string
}

// NewProxyFileStorage returns a [ProxyStorage] reading one proxy URL per line
// from path. A line without a scheme is treated as an http proxy.
func NewProxyFileStorage(path string) ProxyStorage {
	return &proxyFileStorage{path: path}
}

func (s *proxyFileStorage) LoadProxies(ctx context.Context) (*ProxyPool, error) {
	lines, err := readLines(ctx, s.path)
	if err != nil {
		return nil, err
	}

	proxies := make([]string, 0, len(lines))
	for _, l := range lines {
		proxy, err := normalizeProxy(l.text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.path, l.number, err)
		}
		proxies = append(proxies, proxy)
	}

	return NewProxyPool(proxies)
}

// normalizeProxy turns "user:pass@host:port" or a full proxy URL into a URL
// with an explicit scheme.
func normalizeProxy(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = defaultProxyScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidProxy, err)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	if _, ok := supportedProxySchemes[u.Scheme]; !ok {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidProxy, u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidProxy)
	}

	return u.String(), nil
}

// ProxyPool is the read-only list of proxies. It is safe for concurrent use.
type ProxyPool struct {
	proxies []string
}

// NewProxyPool returns a pool over proxies. An empty list is an error.
func NewProxyPool(proxies []string) (*ProxyPool, error) {
	if len(proxies) == 0 {
		return nil, ErrNoProxies
	}
	return &ProxyPool{proxies: append([]string(nil), proxies...)}, nil
}

// ProxyFor returns the proxy assigned to the account with the given index.
// Accounts wrap around the list, so the assignment is stable for the whole
// process lifetime.
func (p *ProxyPool) ProxyFor(index int) string {
	n := len(p.proxies)
	return p.proxies[((index%n)+n)%n]
}

// Len returns the number of proxies in the pool.
func (p *ProxyPool) Len() int {
	return len(p.proxies)
}
