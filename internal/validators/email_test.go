package validators

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx    map[string][]*net.MX
	ips   map[string][]net.IPAddr
	block bool
}

func (f fakeResolver) LookupMX(ctx context.Context, name string) ([]*net.MX, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if mx, ok := f.mx[name]; ok {
		return mx, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if ips, ok := f.ips[host]; ok {
		return ips, nil
	}
	return nil, errors.New("no such host")
}

func TestCheckEmailDomain(t *testing.T) {
	r := fakeResolver{
		mx:  map[string][]*net.MX{"gmail.com": {{Host: "mx.gmail.com.", Pref: 10}}},
		ips: map[string][]net.IPAddr{"barbearia.com.br": {{IP: net.ParseIP("10.0.0.1")}}},
	}

	tests := []struct {
		email string
		want  bool
	}{
		{"ana@gmail.com", true},
		{"ana@barbearia.com.br", true},
		{"ana@nada.invalid", false},
		{"sem-arroba", false},
		{"ana@", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckEmailDomain(context.Background(), r, tt.email))
		})
	}
}

func TestCheckEmailDomain_HonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	ok := CheckEmailDomain(ctx, fakeResolver{block: true}, "ana@lento.com")

	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
}
