// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"net/mail"
	"net/url"
)

// Validation errors returned by request Validate methods. Matched by the
// service layer with [errors.Is] and reported to clients verbatim.
var (
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
	ErrPasswordIsRequired  = errors.New("password is required")
	ErrEmailIsRequired     = errors.New("email is required")
	ErrInvalidEmailAddress = errors.New("invalid email address provided")
	ErrInvalidResourceURL  = errors.New("resource_url must be a valid absolute URL")
)

// NotifyMeRequest is the payload of POST /notifyme.
type NotifyMeRequest struct {
	Email string `json:"email"`
}

// Validate checks that Email is present and RFC-shaped.
func (r NotifyMeRequest) Validate() error {
	if r.Email == "" {
		return ErrEmailIsRequired
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return ErrInvalidEmailAddress
	}
	return nil
}

// ExamPaperRequest is the payload of POST /contrib/exam_paper.
type ExamPaperRequest struct {
	Metadata    map[string]string `json:"metadata"`
	ResourceURL string            `json:"resource_url"`
}

// Validate checks that ResourceURL is a syntactically valid absolute
// http/https URL. Metadata may be empty.
func (r ExamPaperRequest) Validate() error {
	u, err := url.Parse(r.ResourceURL)
	if err != nil {
		return ErrInvalidResourceURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidResourceURL
	}
	return nil
}

// RegisterRequest is the payload of POST /register.
type RegisterRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	MarketingOptin bool   `json:"marketing_optin"`
}

// Validate checks required fields and email syntax.
func (r RegisterRequest) Validate() error {
	if r.FirstName == "" {
		return ErrFirstNameIsRequired
	}
	if r.LastName == "" {
		return ErrLastNameIsRequired
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return ErrInvalidEmailAddress
	}
	if r.Password == "" {
		return ErrPasswordIsRequired
	}
	return nil
}

// LoginRequest is the payload of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks field presence only. Email syntax is deliberately not
// re-checked here: accounts registered before the email format check
// tightened must still be able to log in.
func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return ErrEmailIsRequired
	}
	if r.Password == "" {
		return ErrPasswordIsRequired
	}
	return nil
}
