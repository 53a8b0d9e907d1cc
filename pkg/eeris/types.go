// Package eeris provides the EERIS backend API client and response types.
package eeris

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Amount is a decimal value that the backend encodes inconsistently:
// some endpoints send JSON numbers, others send strings. It decodes both
// and preserves the textual form.
type Amount string

// UnmarshalJSON accepts a JSON string, number, or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}

	return fmt.Errorf("amount is neither a string nor a number: %s", data)
}

// String returns the textual form of the amount.
func (a Amount) String() string {
	return string(a)
}

// Float returns the amount parsed as a float, 0 if empty or malformed.
func (a Amount) Float() float64 {
	f, err := strconv.ParseFloat(string(a), 64)
	if err != nil {
		return 0
	}
	return f
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the response of POST /login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

// MessageResponse is a generic acknowledgment response.
type MessageResponse struct {
	Message string `json:"message"`
}

// User is one account as returned by GET /all-users.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UsersResponse is the response of GET /all-users.
type UsersResponse struct {
	Users []User `json:"users"`
}

// Receipt is one receipt summary as returned by GET /fetch-receipts.
type Receipt struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user"`
	UploadDate string `json:"uploadDate"`
	Amount     Amount `json:"amount"`
	Category   string `json:"category"`
	StoreName  string `json:"storeName"`
	Status     string `json:"status"`
}

// ReceiptsResponse is the response of GET /fetch-receipts.
// UserTotals is only present for elevated roles; it is nil when absent.
type ReceiptsResponse struct {
	Receipts   []Receipt          `json:"receipts"`
	Role       string             `json:"role"`
	UserTotals map[string]float64 `json:"user_totals"`
}

// StatisticsResponse is the response of GET /statistics.
// StoreTotals, StoreMainCategories and UserTotals are only present for
// elevated roles; they are nil when absent.
type StatisticsResponse struct {
	CategoryTotals      map[string]float64 `json:"category_totals"`
	StoreTotals         map[string]float64 `json:"store_totals"`
	StoreMainCategories map[string]string  `json:"store_main_categories"`
	Approvals           int                `json:"approvals"`
	Rejections          int                `json:"rejections"`
	Pending             int                `json:"pending"`
	UserTotals          map[string]float64 `json:"user_totals"`
}

// ReceiptItem is one line item as returned by GET /receipt-details/:id.
type ReceiptItem struct {
	Name   string `json:"item_name"`
	Amount Amount `json:"amount"`
}

// ReceiptDetailsResponse is the response of GET /receipt-details/:id.
type ReceiptDetailsResponse struct {
	Items    []ReceiptItem `json:"items"`
	UserName string        `json:"user_name"`
}

// ExtractionItem is one item recognized from an uploaded receipt image.
type ExtractionItem struct {
	Name   string `json:"name"`
	Amount Amount `json:"amount"`
}

// ExtractionResponse is the response of POST /upload-receipt.
type ExtractionResponse struct {
	Message     string           `json:"message"`
	Items       []ExtractionItem `json:"items"`
	StoreName   string           `json:"store_name"`
	Category    string           `json:"category"`
	TotalAmount Amount           `json:"total_amount"`
}

// HistoryEntry is one record of GET /all-expense-history or
// GET /user-expense-history. UserName is only present for elevated-role
// views.
type HistoryEntry struct {
	UserName   string           `json:"user_name"`
	ReceiptID  int64            `json:"receipt_id"`
	StoreName  string           `json:"store_name"`
	Category   string           `json:"category"`
	Amount     Amount           `json:"amount"`
	Status     string           `json:"status"`
	UploadedAt string           `json:"uploaded_at"`
	Items      []ExtractionItem `json:"items"`
}

// HistoryResponse is the response of the expense history endpoints.
type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}

// ManualReceiptItem is one line item of a manual receipt submission.
type ManualReceiptItem struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// ManualReceiptRequest is the body of POST /manual-receipt.
type ManualReceiptRequest struct {
	Category    string              `json:"category"`
	Subcategory string              `json:"subcategory"`
	Store       string              `json:"store"`
	Items       []ManualReceiptItem `json:"items"`
}

// StatusUpdateRequest is the body of POST /update-receipt-status/:id.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// RoleUpdateRequest is the body of POST /update-user-role/:id.
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// ChangePasswordRequest is the body of POST /change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ErrorResponse is an error response from the backend.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Receipt review statuses accepted by POST /update-receipt-status/:id.
const (
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
	StatusPending  = "Pending"
)
