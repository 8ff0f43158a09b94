package utils

import (
	"net/url"
	"strings"
)

// NormalizeDomain remove esquema, "www." inicial, caminho e porta e converte para minúsculas.
// Ex.: "https://www.Example.com/page" -> "example.com"
func NormalizeDomain(raw string) string {
	host := strings.ToLower(strings.TrimSpace(raw))
	if host == "" {
		return ""
	}

	if strings.Contains(host, "://") {
		if parsed, err := url.Parse(host); err == nil && parsed.Host != "" {
			host = parsed.Host
		} else {
			host = host[strings.Index(host, "://")+3:]
		}
	}

	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}

	host = strings.TrimPrefix(host, "www.")
	return strings.TrimSuffix(host, ".")
}

// DomainMatches indica se o host de um resultado corresponde ao domínio alvo.
// Aceita igualdade exata ou o alvo contido no host (subdomínios).
func DomainMatches(resultHost, target string) bool {
	candidate := NormalizeDomain(resultHost)
	normalizedTarget := NormalizeDomain(target)
	if candidate == "" || normalizedTarget == "" {
		return false
	}

	return candidate == normalizedTarget || strings.Contains(candidate, normalizedTarget)
}
