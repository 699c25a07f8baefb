package handler

import (
	"strings"
	"testing"
)

func TestValidator_NamesWireFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&checkoutRequest{Address: "1 Soi 5", City: "Bangkok", Phone: "+66111111111"})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if got := err.Error(); got != "zip_code is required" {
		t.Fatalf("message must use the json field name, got %q", got)
	}
}

func TestValidator_SignupMessages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signupRequest{Username: "ab", Email: "not-an-email", Password: "abc", Name: "X"})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	msg := err.Error()
	for _, want := range []string{
		"username must be at least 3 characters",
		"email must be a valid email address",
		"password must be at least 6 characters",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidator_NumericMinAndOneOf(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&basketItemRequest{ProductID: "drill", Days: 1, Quantity: -1})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if got := err.Error(); got != "quantity must be at least 1" {
		t.Fatalf("unexpected message %q", got)
	}

	err = v.Validate(&advanceStatusRequest{Status: "shipped"})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if got := err.Error(); got != "status must be one of: confirmed, out_for_delivery, delivered, cancelled" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestValidator_Passes(t *testing.T) {
	v := NewValidator()
	req := &signupRequest{Username: "alice", Email: "alice@example.com", Password: "hunter22", Name: "Alice"}
	if err := v.Validate(req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}
