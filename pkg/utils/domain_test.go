package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://www.Example.com/page", "example.com"},
		{"example.com", "example.com"},
		{"http://example.com:8080/a?b=c", "example.com"},
		{"  WWW.example.com.br  ", "example.com.br"},
		{"blog.example.com/post#x", "blog.example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDomain(tt.input))
		})
	}
}

func TestDomainMatches(t *testing.T) {
	assert.True(t, DomainMatches("https://www.Example.com/page", "example.com"))
	assert.True(t, DomainMatches("example.com", "https://www.example.com"))
	assert.True(t, DomainMatches("shop.example.com", "example.com"), "subdomínio deve ser aceito")
	assert.False(t, DomainMatches("example.org", "example.com"))
	assert.False(t, DomainMatches("", "example.com"))
	assert.False(t, DomainMatches("example.com", ""))
}
