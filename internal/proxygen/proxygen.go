// Package proxygen provisions proxy endpoint credentials.
package proxygen

import (
	"context"
	"fmt"

	"github.com/proxmarket/proxmarket/internal/domain"
	"github.com/proxmarket/proxmarket/pkg/randompkg"
)

// baseIPs maps supported locations onto their network prefixes.
var baseIPs = map[string]string{
	"Russia":    "45.141.",
	"USA":       "192.168.",
	"Germany":   "195.201.",
	"France":    "51.158.",
	"Japan":     "103.75.",
	"Singapore": "128.199.",
}

const defaultBaseIP = "192.168."

// Locations lists all supported proxy locations.
func Locations() []string {
	locations := make([]string, 0, len(baseIPs))
	for l := range baseIPs {
		locations = append(locations, l)
	}

	return locations
}

// IsSupportedLocation returns true if credentials can be provisioned for
// the location.
func IsSupportedLocation(location string) bool {
	_, ok := baseIPs[location]
	return ok
}

// Generator provisions random proxy credentials in the location's network.
// It is stateless; each call yields an independent credential tuple.
type Generator struct{}

// New returns a credential Generator.
func New() *Generator {
	return &Generator{}
}

// Provision generates one host/port/user/pass tuple for the location.
func (g *Generator) Provision(ctx context.Context, location string) (domain.ProvisionParams, error) {
	baseIP, ok := baseIPs[location]
	if !ok {
		baseIP = defaultBaseIP
	}

	params := domain.ProvisionParams{
		Host:     fmt.Sprintf("%s%d.%d", baseIP, randompkg.IntBetween(1, 256), randompkg.IntBetween(1, 256)),
		Port:     randompkg.IntBetween(8000, 10000),
		Username: fmt.Sprintf("user_%d", randompkg.IntBetween(1000, 10000)),
		Password: fmt.Sprintf("pass_%d", randompkg.IntBetween(10000, 100000)),
	}

	return params, nil
}
