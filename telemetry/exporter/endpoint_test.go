package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		insecure     bool
		wantEndpoint string
		wantInsecure bool
	}{
		{"bare host port", "localhost:4317", false, "localhost:4317", false},
		{"bare host port insecure flag", "localhost:4317", true, "localhost:4317", true},
		{"http scheme forces insecure", "http://collector:4317", false, "collector:4317", true},
		{"https scheme stays secure", "https://collector:4317", false, "collector:4317", false},
		{"trailing slash stripped", "http://collector:4317/", false, "collector:4317", true},
		{"multiple trailing slashes", "http://collector:4317///", false, "collector:4317", true},
		{"surrounding whitespace", "  http://collector:4317/  ", false, "collector:4317", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, insecure := NormalizeEndpoint(tt.raw, tt.insecure)
			assert.Equal(t, tt.wantEndpoint, endpoint)
			assert.Equal(t, tt.wantInsecure, insecure)
		})
	}
}
