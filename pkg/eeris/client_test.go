package eeris

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// staticToken is a fixed TokenProvider for tests.
type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(url string) *Client {
	return NewClient(ClientConfig{BaseURL: url}, staticToken("test-token"))
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not send an Authorization header")
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode login body: %v", err)
		}
		if req.Email != "a@b.c" || req.Password != "secret" {
			t.Errorf("login body = %+v", req)
		}

		json.NewEncoder(w).Encode(LoginResponse{Message: "Login successful", Token: "tok-1", Role: "supervisor"})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Login() returned error: %v", err)
	}
	if resp.Token != "tok-1" || resp.Role != "supervisor" {
		t.Errorf("Login() = %+v", resp)
	}
}

func TestAuthenticatedRequestsCarryBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode(ReceiptsResponse{Role: "employee"})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).FetchReceipts(context.Background())
	if err != nil {
		t.Fatalf("FetchReceipts() returned error: %v", err)
	}
	if resp.Role != "employee" {
		t.Errorf("Role = %q", resp.Role)
	}
	if resp.UserTotals != nil {
		t.Error("UserTotals should be nil when the backend omits it")
	}
}

func TestExpenseHistoryEndpointSelection(t *testing.T) {
	tests := []struct {
		name     string
		allUsers bool
		path     string
	}{
		{"elevated role", true, "/all-expense-history"},
		{"employee", false, "/user-expense-history"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				json.NewEncoder(w).Encode(HistoryResponse{History: []HistoryEntry{{StoreName: "Walmart", Amount: "12.5"}}})
			}))
			defer server.Close()

			entries, err := newTestClient(server.URL).ExpenseHistory(context.Background(), tt.allUsers)
			if err != nil {
				t.Fatalf("ExpenseHistory() returned error: %v", err)
			}
			if gotPath != tt.path {
				t.Errorf("requested %q, expected %q", gotPath, tt.path)
			}
			if len(entries) != 1 || entries[0].StoreName != "Walmart" {
				t.Errorf("entries = %+v", entries)
			}
		})
	}
}

func TestUploadReceiptMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload-receipt" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}

		file, header, err := r.FormFile("receipt")
		if err != nil {
			t.Fatalf("multipart field 'receipt' missing: %v", err)
		}
		defer file.Close()
		if header.Filename != "receipt.jpg" {
			t.Errorf("filename = %q", header.Filename)
		}

		json.NewEncoder(w).Encode(ExtractionResponse{
			StoreName:   "Publix",
			Category:    "groceries",
			TotalAmount: "12.3",
			Items:       []ExtractionItem{{Name: "Milk", Amount: "2.5"}},
		})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).UploadReceipt(context.Background(), "receipt.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("UploadReceipt() returned error: %v", err)
	}
	if resp.StoreName != "Publix" || len(resp.Items) != 1 {
		t.Errorf("extraction = %+v", resp)
	}
}

func TestUnauthorizedMapsToErrUnauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Access denied"})
		}))

		_, err := newTestClient(server.URL).AllUsers(context.Background())
		server.Close()

		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("status %d: error %v should wrap ErrUnauthorized", status, err)
		}
		if err == nil || !strings.Contains(err.Error(), "Access denied") {
			t.Errorf("status %d: error %v should carry the backend message", status, err)
		}
	}
}

func TestBackendErrorMessageSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid status"})
	}))
	defer server.Close()

	err := newTestClient(server.URL).UpdateReceiptStatus(context.Background(), 7, "Maybe")
	if err == nil {
		t.Fatal("UpdateReceiptStatus() should fail")
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Error("a 400 must not map to ErrUnauthorized")
	}
	if !strings.Contains(err.Error(), "Invalid status") {
		t.Errorf("error %v should carry the backend message", err)
	}
}

func TestStatisticsOptionalFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"category_totals": map[string]float64{"Groceries": 40.5},
			"approvals":       2,
			"rejections":      1,
			"pending":         3,
		})
	}))
	defer server.Close()

	stats, err := newTestClient(server.URL).Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics() returned error: %v", err)
	}
	if stats.CategoryTotals["Groceries"] != 40.5 {
		t.Errorf("CategoryTotals = %v", stats.CategoryTotals)
	}
	if stats.StoreTotals != nil || stats.StoreMainCategories != nil || stats.UserTotals != nil {
		t.Error("supervisor-only fields should be nil when the backend omits them")
	}
	if stats.Approvals != 2 || stats.Rejections != 1 || stats.Pending != 3 {
		t.Errorf("status counts = %d/%d/%d", stats.Approvals, stats.Rejections, stats.Pending)
	}
}

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Amount
	}{
		{"number", `12.3`, "12.3"},
		{"integer", `7`, "7"},
		{"string", `"4.50"`, "4.50"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tt.json), &a); err != nil {
				t.Fatalf("Unmarshal(%s) returned error: %v", tt.json, err)
			}
			if a != tt.expected {
				t.Errorf("Unmarshal(%s) = %q, expected %q", tt.json, a, tt.expected)
			}
		})
	}

	var a Amount
	if err := json.Unmarshal([]byte(`{"x":1}`), &a); err == nil {
		t.Error("Unmarshal of an object should fail")
	}
}

func TestAmountFloat(t *testing.T) {
	if got := Amount("12.3").Float(); got != 12.3 {
		t.Errorf("Float() = %v", got)
	}
	if got := Amount("").Float(); got != 0 {
		t.Errorf("Float() of empty = %v", got)
	}
	if got := Amount("bogus").Float(); got != 0 {
		t.Errorf("Float() of malformed = %v", got)
	}
}
