package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"vehicle-lookup-service/internal/config"
	"vehicle-lookup-service/internal/model"
)

var (
	// ErrVehicleNotFound means the registry answered and knows no such
	// registration number.
	ErrVehicleNotFound = errors.New("vehicle not found in registry")
	// ErrRegistryUnavailable covers timeouts, transport failures,
	// unexpected status codes and unparseable bodies.
	ErrRegistryUnavailable = errors.New("vehicle registry unavailable")
)

type vehicleResponse struct {
	VehicleNumber string `json:"vehicle_number"`
	Owner         string `json:"owner"`
	Model         string `json:"model"`
	FuelType      string `json:"fuel_type"`
	RegDate       string `json:"registration_date"`
	VehicleClass  string `json:"vehicle_class"`
	Color         string `json:"color"`
}

type RegistryClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRegistryClient(cfg config.RegistryConfig) *RegistryClient {
	return &RegistryClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchVehicle queries the registry for one registration number.
// On success the record is returned verbatim with the registry's canonical
// number. Not-found and transport-level failures are distinguished so the
// caller can decide how to degrade.
func (c *RegistryClient) FetchVehicle(ctx context.Context, regNumber string) (*model.Vehicle, error) {
	if regNumber == "" {
		return nil, fmt.Errorf("%w: empty registration number", ErrVehicleNotFound)
	}

	u, err := url.Parse(c.baseURL + "/v1/vehicles")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid registry URL: %v", ErrRegistryUnavailable, err)
	}
	q := u.Query()
	q.Set("vehicle_number", regNumber)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	// одна повторная попытка при сетевой ошибке
	var resp *http.Response
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		resp, lastErr = c.httpClient.Do(req)
		if lastErr == nil {
			break
		}
		time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
		req, _ = http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if c.apiKey != "" {
			req.Header.Set("X-Api-Key", c.apiKey)
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegistryUnavailable, lastErr)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrRegistryUnavailable, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrVehicleNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: registry returned status %d", ErrRegistryUnavailable, resp.StatusCode)
	}

	var payload vehicleResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", ErrRegistryUnavailable, err)
	}
	if payload.VehicleNumber == "" {
		return nil, ErrVehicleNotFound
	}

	return &model.Vehicle{
		RegNumber:    payload.VehicleNumber,
		Owner:        payload.Owner,
		Model:        payload.Model,
		Fuel:         payload.FuelType,
		RegDate:      payload.RegDate,
		VehicleClass: payload.VehicleClass,
		Color:        payload.Color,
	}, nil
}
