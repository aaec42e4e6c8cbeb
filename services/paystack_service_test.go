package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mega-automotives/mega_backend/models"
)

func testPaystackService(baseURL string) *PaystackService {
	return &PaystackService{
		baseURL:     baseURL,
		secretKey:   "sk_test_secret",
		callbackURL: "https://app.example.com/payments/verify",
		client:      &http.Client{Timeout: 5 * time.Second},
	}
}

func TestInitializeTransaction(t *testing.T) {
	reference := "T" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]

	var got models.PaystackInitializeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/transaction/initialize" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk_test_secret" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request body: %v", err)
		}

		fmt.Fprintf(w, `{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/%s",
				"access_code": "%s",
				"reference": "%s"
			}
		}`, reference, reference, reference)
	}))
	defer server.Close()

	service := testPaystackService(server.URL)
	metadata := models.PaystackMetadata{
		User:            "64f0c2a1b3d4e5f678901234",
		AssignedTo:      "64f0c2a1b3d4e5f678905678",
		AssignedToModel: models.KindInventory,
	}

	data, err := service.InitializeTransaction("customer@example.com", 50000, metadata)
	if err != nil {
		t.Fatalf("InitializeTransaction returned error: %v", err)
	}

	if data.Reference != reference {
		t.Errorf("Reference = %q, want %q", data.Reference, reference)
	}
	if data.AuthorizationURL == "" {
		t.Error("AuthorizationURL is empty")
	}
	if got.Email != "customer@example.com" {
		t.Errorf("submitted email = %q", got.Email)
	}
	if got.Amount != 50000 {
		t.Errorf("submitted amount = %d, want 50000", got.Amount)
	}
	if got.Metadata != metadata {
		t.Errorf("submitted metadata = %+v, want %+v", got.Metadata, metadata)
	}
	if got.CallbackURL != "https://app.example.com/payments/verify" {
		t.Errorf("submitted callback_url = %q", got.CallbackURL)
	}
}

func TestVerifyTransaction(t *testing.T) {
	reference := "T" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		want := "/transaction/verify/" + reference
		if r.Method != http.MethodGet || r.URL.Path != want {
			t.Errorf("unexpected request %s %s, want GET %s", r.Method, r.URL.Path, want)
		}

		fmt.Fprintf(w, `{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "success",
				"reference": "%s",
				"amount": 50000,
				"channel": "card",
				"metadata": {
					"user": "64f0c2a1b3d4e5f678901234",
					"assignedTo": "64f0c2a1b3d4e5f678905678",
					"assignedToModel": "Inventory"
				},
				"customer": {
					"email": "customer@example.com"
				}
			}
		}`, reference)
	}))
	defer server.Close()

	data, err := testPaystackService(server.URL).VerifyTransaction(reference)
	if err != nil {
		t.Fatalf("VerifyTransaction returned error: %v", err)
	}

	if data.Status != "success" {
		t.Errorf("Status = %q, want %q", data.Status, "success")
	}
	if data.Reference != reference {
		t.Errorf("Reference = %q, want %q", data.Reference, reference)
	}
	if data.Amount != 50000 {
		t.Errorf("Amount = %d, want 50000", data.Amount)
	}
	if data.Channel != "card" {
		t.Errorf("Channel = %q, want %q", data.Channel, "card")
	}
	if data.Metadata.User != "64f0c2a1b3d4e5f678901234" {
		t.Errorf("Metadata.User = %q", data.Metadata.User)
	}
	if data.Customer.Email != "customer@example.com" {
		t.Errorf("Customer.Email = %q", data.Customer.Email)
	}
}

func TestVerifyTransactionAbandoned(t *testing.T) {
	// A non-success transaction still comes back with status true at the
	// envelope level; the outcome lives in data.status.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "abandoned",
				"reference": "T000",
				"amount": 50000,
				"metadata": {"user": "64f0c2a1b3d4e5f678901234"}
			}
		}`)
	}))
	defer server.Close()

	data, err := testPaystackService(server.URL).VerifyTransaction("T000")
	if err != nil {
		t.Fatalf("VerifyTransaction returned error: %v", err)
	}
	if data.Status != "abandoned" {
		t.Errorf("Status = %q, want %q", data.Status, "abandoned")
	}
}

func TestVerifyTransactionGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status": false, "message": "Transaction reference not found"}`)
	}))
	defer server.Close()

	_, err := testPaystackService(server.URL).VerifyTransaction("does-not-exist")
	if err == nil {
		t.Fatal("expected error for status:false response, got nil")
	}
	if !strings.Contains(err.Error(), "Transaction reference not found") {
		t.Errorf("error = %v, want gateway message included", err)
	}
}

func TestMakeRequestMissingCredentials(t *testing.T) {
	service := &PaystackService{
		baseURL: "https://api.paystack.co",
		client:  &http.Client{},
	}
	if _, err := service.makeRequest("GET", "/transaction/verify/T000", nil); err == nil {
		t.Fatal("expected error when secret key is missing")
	}
}
