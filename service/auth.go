package service

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Token claim names shared with the HTTP middleware.
const (
	ClaimOperatorID = "operatorID"
	ClaimUsername   = "username"
)

type Auth struct {
	operatorRepo i.OperatorRepo
	tokenizer    i.Tokenizer
	tokenTTL     time.Duration
}

var _ i.Authenticator = &Auth{}

// NewAuthService creates an Auth issuing tokens valid for tokenTTL.
func NewAuthService(repo i.OperatorRepo, tokenizer i.Tokenizer, tokenTTL time.Duration) (*Auth, error) {
	if repo == nil || tokenizer == nil {
		return nil, errors.New("operator repository and tokenizer are required")
	}
	if tokenTTL <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}

	return &Auth{
		operatorRepo: repo,
		tokenizer:    tokenizer,
		tokenTTL:     tokenTTL,
	}, nil
}

func (a *Auth) Register(ctx context.Context, username, password string) (*dmn.Operator, error) {
	if _, err := a.operatorRepo.ByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, i.ErrNotFound) {
		return nil, err
	}

	operator, err := dmn.NewOperator(dmn.OperatorConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return nil, err
	}

	err = a.operatorRepo.Save(ctx, operator)
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, i.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return operator, nil
}

func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.Operator, string, error) {
	operator, err := a.operatorRepo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !operator.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimOperatorID: operator.ID.String(),
		ClaimUsername:   operator.Username,
	}, a.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	return operator, token, nil
}
