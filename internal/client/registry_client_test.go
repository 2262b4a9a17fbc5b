package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vehicle-lookup-service/internal/config"
)

func newTestClient(baseURL string) *RegistryClient {
	return NewRegistryClient(config.RegistryConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestFetchVehicleSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("vehicle_number"); got != "MH12AB1234" {
			t.Errorf("unexpected vehicle_number %q", got)
		}
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("unexpected api key %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"vehicle_number": "MH12AB1234",
			"owner": "Vikram Singh",
			"model": "Honda City",
			"fuel_type": "Petrol",
			"registration_date": "30 Mar 2018",
			"vehicle_class": "Motor Car",
			"color": "Blue"
		}`))
	}))
	defer server.Close()

	vehicle, err := newTestClient(server.URL).FetchVehicle(context.Background(), "MH12AB1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vehicle.RegNumber != "MH12AB1234" || vehicle.Owner != "Vikram Singh" {
		t.Errorf("unexpected vehicle %+v", vehicle)
	}
	if vehicle.Fuel != "Petrol" || vehicle.VehicleClass != "Motor Car" {
		t.Errorf("unexpected vehicle fields %+v", vehicle)
	}
}

func TestFetchVehicleNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchVehicle(context.Background(), "ZZ00ZZ0000")
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestFetchVehicleBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchVehicle(context.Background(), "MH12AB1234")
	if !errors.Is(err, ErrRegistryUnavailable) {
		t.Errorf("expected ErrRegistryUnavailable, got %v", err)
	}
}

func TestFetchVehicleMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"vehicle_number": `))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchVehicle(context.Background(), "MH12AB1234")
	if !errors.Is(err, ErrRegistryUnavailable) {
		t.Errorf("expected ErrRegistryUnavailable, got %v", err)
	}
}

func TestFetchVehicleEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchVehicle(context.Background(), "MH12AB1234")
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("expected ErrVehicleNotFound for empty record, got %v", err)
	}
}

func TestFetchVehicleTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	_, err := newTestClient(server.URL).FetchVehicle(context.Background(), "MH12AB1234")
	if !errors.Is(err, ErrRegistryUnavailable) {
		t.Errorf("expected ErrRegistryUnavailable, got %v", err)
	}
}

func TestFetchVehicleEmptyNumber(t *testing.T) {
	_, err := newTestClient("http://registry.invalid").FetchVehicle(context.Background(), "")
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("expected ErrVehicleNotFound for empty number, got %v", err)
	}
}
