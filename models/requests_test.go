package models

import (
	"errors"
	"testing"
)

func TestNotifyMeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{"valid email", "jane@example.com", nil},
		{"valid email with name part", "jane.doe+signup@example.co.uk", nil},
		{"empty email", "", ErrEmailIsRequired},
		{"no at sign", "jane.example.com", ErrInvalidEmailAddress},
		{"no domain", "jane@", ErrInvalidEmailAddress},
		{"spaces in local part", "jane doe@example.com", ErrInvalidEmailAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotifyMeRequest{Email: tt.email}.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExamPaperRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		resourceURL string
		wantErr     error
	}{
		{"https url", "https://files.example.com/papers/math-2019.pdf", nil},
		{"http url", "http://example.com/paper.pdf", nil},
		{"empty url", "", ErrInvalidResourceURL},
		{"relative path", "papers/math.pdf", ErrInvalidResourceURL},
		{"ftp scheme", "ftp://example.com/paper.pdf", ErrInvalidResourceURL},
		{"missing host", "https:///paper.pdf", ErrInvalidResourceURL},
		{"bare words", "not a url", ErrInvalidResourceURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ExamPaperRequest{ResourceURL: tt.resourceURL}
			err := req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExamPaperRequest_Validate_MetadataNotRequired(t *testing.T) {
	req := ExamPaperRequest{
		Metadata:    nil,
		ResourceURL: "https://example.com/paper.pdf",
	}
	if err := req.Validate(); err != nil {
		t.Errorf("metadata must be optional, got %v", err)
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "securepassword",
	}

	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr error
	}{
		{"valid request", func(r *RegisterRequest) {}, nil},
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }, ErrFirstNameIsRequired},
		{"missing last name", func(r *RegisterRequest) { r.LastName = "" }, ErrLastNameIsRequired},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, ErrInvalidEmailAddress},
		{"malformed email", func(r *RegisterRequest) { r.Email = "not-an-email" }, ErrInvalidEmailAddress},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }, ErrPasswordIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr error
	}{
		{"valid request", LoginRequest{Email: "john@example.com", Password: "pass"}, nil},
		// Email syntax is not re-checked at login on purpose.
		{"legacy email shape", LoginRequest{Email: "john-at-example", Password: "pass"}, nil},
		{"missing email", LoginRequest{Password: "pass"}, ErrEmailIsRequired},
		{"missing password", LoginRequest{Email: "john@example.com"}, ErrPasswordIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
