package client

import (
	"context"
	"fmt"
	"net/http"

	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"
)

// IAuthClient defines the contract for session and registration calls.
type IAuthClient interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) error
}

// Login exchanges the user's phone number and name for a bearer token.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if fieldErr := common.ValidateStruct(req); fieldErr != nil {
		return nil, fmt.Errorf("invalid login request: field %s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}

	log := logger.Log.WithField("phone_number", req.PhoneNumber)
	log.Info("Logging in")

	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		log.WithError(err).Warn("Login failed")
		return nil, err
	}
	return &resp, nil
}

// Register creates a new user. The caller logs in separately afterwards.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) error {
	if fieldErr := common.ValidateStruct(req); fieldErr != nil {
		return fmt.Errorf("invalid register request: field %s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}

	log := logger.Log.WithField("phone_number", req.PhoneNumber)
	log.Info("Registering user")

	if err := c.do(ctx, http.MethodPost, "/users/", nil, req, nil); err != nil {
		log.WithError(err).Warn("Registration failed")
		return err
	}
	return nil
}
