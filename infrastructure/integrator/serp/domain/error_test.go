package serpdomain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"deadline", fmt.Errorf("do: %w", context.DeadlineExceeded), ErrorKindTimeout},
		{"cancelado", fmt.Errorf("do: %w", context.Canceled), ErrorKindTimeout},
		{"connection reset", fmt.Errorf("read: %w", syscall.ECONNRESET), ErrorKindNetwork},
		{"unexpected eof", io.ErrUnexpectedEOF, ErrorKindNetwork},
		{"socket hang up", errors.New("Socket hang up"), ErrorKindNetwork},
		{"generic", errors.New("no such host"), ErrorKindTask},
		{"already classified", NewProviderError("bulk", ErrorKindAuth, 401, "invalid key"), ErrorKindAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyTransportError("bulk", tt.err).Kind)
		})
	}

	assert.Nil(t, ClassifyTransportError("bulk", nil))
}

func TestErrNotConfigured_Is(t *testing.T) {
	err := fmt.Errorf("provider: %w", ErrNotConfigured)

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.NotErrorIs(t, NewProviderError("bulk", ErrorKindAuth, 401, "x"), ErrNotConfigured)
}

func TestScanOrganic(t *testing.T) {
	results := []OrganicResult{
		{Position: 1, URL: "https://competitor.com/page", Domain: "competitor.com"},
		{Position: 2, URL: "https://blog.example.com/post"},
		{Position: 3, URL: "https://www.example.com/", Domain: "www.example.com"},
	}

	rank, url := ScanOrganic(results, "https://www.Example.com")
	if assert.NotNil(t, rank) {
		assert.Equal(t, 2, *rank)
		assert.Equal(t, "https://blog.example.com/post", *url)
	}

	rank, url = ScanOrganic(results, "missing.org")
	assert.Nil(t, rank)
	assert.Nil(t, url)
}
