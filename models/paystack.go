package models

import "encoding/json"

// PaystackResponse is the standard envelope returned by the Paystack API.
type PaystackResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// PaystackMetadata is the opaque metadata submitted at initialization and
// echoed back verbatim by verification. ObjectIDs travel as hex strings.
type PaystackMetadata struct {
	User            string `json:"user"`
	AssignedTo      string `json:"assignedTo"`
	AssignedToModel string `json:"assignedToModel"`
}

// PaystackInitializeRequest is the body of POST /transaction/initialize.
// Amount is in minor currency units (major x 100).
type PaystackInitializeRequest struct {
	Email       string           `json:"email"`
	Amount      int64            `json:"amount"`
	Metadata    PaystackMetadata `json:"metadata"`
	CallbackURL string           `json:"callback_url,omitempty"`
}

// PaystackInitializeData is the payload of a successful initialization: the
// redirect handle and the gateway-assigned unique reference.
type PaystackInitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// PaystackCustomer is the customer block of a verification payload.
type PaystackCustomer struct {
	Email string `json:"email"`
}

// PaystackVerifyData is the payload of GET /transaction/verify/:reference.
// Verification is idempotent and authoritative; Amount is in minor units.
type PaystackVerifyData struct {
	Status    string           `json:"status"`
	Reference string           `json:"reference"`
	Amount    int64            `json:"amount"`
	Channel   string           `json:"channel"`
	Metadata  PaystackMetadata `json:"metadata"`
	Customer  PaystackCustomer `json:"customer"`
}
