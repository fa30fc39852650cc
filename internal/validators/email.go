package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// DomainLookupTimeout bounds the whole MX + A lookup of one address.
const DomainLookupTimeout = 3 * time.Second

// Resolver is the subset of *net.Resolver the domain check needs.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// IsEmailDomainValid reports whether the e-mail's domain has an MX record,
// or at least an address, using the system resolver.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	return CheckEmailDomain(ctx, net.DefaultResolver, email)
}

// CheckEmailDomain is IsEmailDomainValid with an explicit resolver. A lookup
// that times out counts as invalid.
func CheckEmailDomain(ctx context.Context, r Resolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, DomainLookupTimeout)
	defer cancel()

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
