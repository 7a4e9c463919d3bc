package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/9seconds/iplookup/lookuplib"
)

const (
	NameIPInfo = "ipinfo"

	// DefaultIPInfoEndpoint is a base URL of ipinfo.io API.
	DefaultIPInfoEndpoint = "https://ipinfo.io"
)

type ipinfoResponse struct {
	IP      *string `json:"ip"`
	City    *string `json:"city"`
	Region  *string `json:"region"`
	Country *string `json:"country"`
	Loc     *string `json:"loc"`
	Org     *string `json:"org"`
	Postal  *string `json:"postal"`
}

type ipinfoProvider struct {
	authToken string
	endpoint  string
	client    lookuplib.HTTPClient
}

func (i ipinfoProvider) Name() string {
	return NameIPInfo
}

func (i ipinfoProvider) Lookup(ctx context.Context, ip string) (lookuplib.ProviderLookupResult, error) {
	result := lookuplib.ProviderLookupResult{}
	query := url.Values{"token": []string{i.authToken}}
	target := i.endpoint + "/" + url.PathEscape(ip) + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return result, fmt.Errorf("cannot build a request for IP %s: %w", ip, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("cannot fetch data for IP %s: %w", ip, err)
	}

	defer flushResponse(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("Failed to fetch data for IP %s. Status code: %d", ip, resp.StatusCode)
	}

	jsonResponse := ipinfoResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return result, fmt.Errorf("cannot parse a response for IP %s: %w", ip, err)
	}

	result.IP = jsonResponse.IP
	result.City = jsonResponse.City
	result.Region = jsonResponse.Region
	result.Country = jsonResponse.Country
	result.Location = jsonResponse.Loc
	result.Organization = jsonResponse.Org
	result.Postal = jsonResponse.Postal

	return result, nil
}

// NewIPInfo creates a provider for https://ipinfo.io. Token is passed
// as a query parameter. Empty endpoint means DefaultIPInfoEndpoint.
func NewIPInfo(client lookuplib.HTTPClient, authToken, endpoint string) (lookuplib.Provider, error) {
	if authToken == "" {
		return nil, ErrAuthTokenIsRequired
	}

	if endpoint == "" {
		endpoint = DefaultIPInfoEndpoint
	}

	return ipinfoProvider{
		authToken: authToken,
		endpoint:  strings.TrimRight(endpoint, "/"),
		client:    client,
	}, nil
}
