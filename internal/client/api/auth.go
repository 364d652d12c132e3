// Package api contains the remote API clients of the Iron LMS terminal
// client: the REST auth client and the GraphQL domain client. Both go
// through the authenticated request pipeline; neither retries, a failure
// is surfaced immediately and policy belongs to the caller.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/iyasyr/iron-lms/internal/client/models"
	"github.com/iyasyr/iron-lms/internal/client/transport"
	"github.com/iyasyr/iron-lms/internal/common"
)

// Auth defines the credential-establishing operations consumed by the
// session manager.
type Auth interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error)
	ValidateToken(ctx context.Context) (*models.User, error)
}

// AuthAPI is the concrete Auth backed by the REST /auth namespace.
type AuthAPI struct {
	p        *transport.Pipeline
	validate *validator.Validate
}

func NewAuthAPI(p *transport.Pipeline) *AuthAPI {
	return &AuthAPI{p: p, validate: validator.New()}
}

// Login exchanges credentials for a token and user snapshot. An
// authentication rejection maps to ErrInvalidCredentials; transport
// failures map to ErrNetwork.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	var out models.AuthResponse
	resp, err := a.p.R(ctx).
		SetBody(req).
		SetResult(&out).
		Post(common.AuthLoginPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, common.ErrInvalidCredentials
	}
	if err := transport.Classify(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and logs it in atomically on the backend.
// Validation rejections (duplicate email etc.) map to ErrValidation.
func (a *AuthAPI) Register(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error) {
	req := models.RegisterRequest{Email: email, Password: password, FullName: fullName}
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	var out models.AuthResponse
	resp, err := a.p.R(ctx).
		SetBody(req).
		SetResult(&out).
		Post(common.AuthRegisterPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	if err := transport.Classify(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateToken probes the persisted token. ErrUnauthorized means the token
// is stale or invalid and should be discarded by the caller.
func (a *AuthAPI) ValidateToken(ctx context.Context) (*models.User, error) {
	var out models.User
	resp, err := a.p.R(ctx).
		SetResult(&out).
		Get(common.AuthMePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	if err := transport.Classify(resp); err != nil {
		return nil, err
	}
	return &out, nil
}
