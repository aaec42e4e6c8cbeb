package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/mega-automotives/mega_backend/models"
)

// PaystackService handles interactions with the Paystack API
type PaystackService struct {
	baseURL     string
	secretKey   string
	callbackURL string
	client      *http.Client
}

// NewPaystackService creates a new Paystack service instance. The service is
// constructed once at startup and injected into controllers.
func NewPaystackService() *PaystackService {
	baseURL := os.Getenv("PAYSTACK_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.paystack.co"
	}

	secretKey := os.Getenv("PAYSTACK_SECRET_KEY")
	if secretKey == "" {
		log.Printf("WARNING: PAYSTACK_SECRET_KEY is missing")
		log.Printf("Please set this environment variable for the Paystack payment service to work")
	}

	// Redirect target the gateway sends the payer back to after collection
	callbackURL := ""
	if origin := os.Getenv("ORIGIN_URL"); origin != "" {
		callbackURL = origin + "/payments/verify"
	}

	return &PaystackService{
		baseURL:     baseURL,
		secretKey:   secretKey,
		callbackURL: callbackURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest performs an HTTP request to the Paystack API
func (s *PaystackService) makeRequest(method, endpoint string, payload interface{}) (*models.PaystackResponse, error) {
	if s.secretKey == "" {
		return nil, fmt.Errorf("missing Paystack credentials. Please set the PAYSTACK_SECRET_KEY environment variable")
	}

	url := s.baseURL + endpoint

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if os.Getenv("PAYSTACK_DEBUG") == "true" {
		log.Printf("Paystack API %s %s -> %s", method, endpoint, string(respBody))
	}

	var paystackResp models.PaystackResponse
	if err := json.Unmarshal(respBody, &paystackResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w\nResponse body: %s", err, string(respBody))
	}

	if !paystackResp.Status {
		return &paystackResp, fmt.Errorf("paystack API error: %s", paystackResp.Message)
	}

	return &paystackResp, nil
}

// InitializeTransaction submits a payment for collection and returns the
// gateway-assigned reference together with the redirect handle. Amount is in
// minor currency units; metadata is echoed back verbatim at verification.
func (s *PaystackService) InitializeTransaction(email string, amount int64, metadata models.PaystackMetadata) (*models.PaystackInitializeData, error) {
	payload := models.PaystackInitializeRequest{
		Email:       email,
		Amount:      amount,
		Metadata:    metadata,
		CallbackURL: s.callbackURL,
	}

	resp, err := s.makeRequest("POST", "/transaction/initialize", payload)
	if err != nil {
		return nil, err
	}

	var data models.PaystackInitializeData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse initialization data: %w", err)
	}

	return &data, nil
}

// VerifyTransaction fetches the authoritative outcome of a transaction. The
// gateway endpoint is idempotent: re-verifying an already-verified reference
// returns the same outcome without side effects.
func (s *PaystackService) VerifyTransaction(reference string) (*models.PaystackVerifyData, error) {
	resp, err := s.makeRequest("GET", "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	var data models.PaystackVerifyData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse verification data: %w", err)
	}

	return &data, nil
}
