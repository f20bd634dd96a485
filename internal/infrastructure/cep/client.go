// Package cep resolves Brazilian postal codes through the ViaCEP API.
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/config"
)

var (
	// ErrNotFound: the CEP is well-formed but resolves to no address.
	ErrNotFound = errors.New("cep not found")
	// ErrUnavailable: the lookup service could not be reached, which is
	// a connectivity problem rather than bad input.
	ErrUnavailable = errors.New("cep lookup unavailable")
)

// Address is the subset of ViaCEP fields the application consumes.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

type viaCEPResponse struct {
	Address
	Erro bool `json:"erro"`
}

type Client struct {
	logger  *zap.Logger
	baseURL string
	http    *http.Client
}

func New(logger *zap.Logger, cfg config.CEP) *Client {
	return &Client{
		logger:  logger,
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Resolve looks up a stripped 8-digit CEP. Callers distinguish bad input
// (ErrNotFound) from infrastructure failure (ErrUnavailable) via
// errors.Is.
func (c *Client) Resolve(ctx context.Context, cep string) (*Address, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("cep lookup request failed", zap.String("cep", cep), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// ViaCEP answers 400 for malformed codes; anything non-200 is
	// treated as unresolvable input rather than an outage.
	if resp.StatusCode == http.StatusBadRequest {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("cep lookup unexpected status", zap.String("cep", cep), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body viaCEPResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if body.Erro {
		return nil, ErrNotFound
	}

	return &body.Address, nil
}
