package geo

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 3 * time.Second

// CountryResolver resolves a client IP to a country name using an
// ipapi.co-compatible endpoint and logs the result. Lookups are informational
// only and never influence request handling.

type CountryResolver struct {
	client  *http.Client
	baseURL string
}

func NewCountryResolver(baseURL string, timeout time.Duration) *CountryResolver {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &CountryResolver{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *CountryResolver) ResolveAndLog(ip string) {
	if strings.TrimSpace(ip) == "" {
		return
	}

	url := fmt.Sprintf("%s/%s/country_name/", r.baseURL, ip)
	resp, err := r.client.Get(url)
	if err != nil {
		log.Printf("[geo][resolver] lookup failed ip=%s err=%v", ip, err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[geo][resolver] lookup read failed ip=%s err=%v", ip, err)
		return
	}

	country := strings.TrimSpace(string(body))
	if resp.StatusCode >= 200 && resp.StatusCode < 300 && country != "" && country != "Undefined" {
		log.Printf("[geo][resolver] client country=%s", country)
		return
	}
	log.Printf("[geo][resolver] could not resolve country ip=%s status=%d", ip, resp.StatusCode)
}
