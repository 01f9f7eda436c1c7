package service

import (
	"errors"

	"github.com/google/uuid"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid secret key")
	ErrAccountNotFound    = errors.New("warehouseman not found")
	ErrAccountInactive    = errors.New("account is inactive")
)

type AuthService interface {
	Login(secretKey string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginResponse struct {
	Token string                     `json:"token"`
	User  model.WarehousemanResponse `json:"user"`
}

type TokenValidationResponse struct {
	User model.WarehousemanResponse `json:"user"`
}

type authService struct {
	warehousemanRepo repository.WarehousemanRepository
}

func NewAuthService(warehousemanRepo repository.WarehousemanRepository) AuthService {
	return &authService{warehousemanRepo: warehousemanRepo}
}

// Login authenticates a warehouseman by secret key alone; the key is both
// credential and identity. Keys are stored as bcrypt hashes, so the match
// is a compare across the fleet rather than a lookup. Fleets are a
// handful of workers, not thousands.
func (s *authService) Login(secretKey string) (*LoginResponse, error) {
	if secretKey == "" {
		return nil, ErrInvalidCredentials
	}

	warehousemen, err := s.warehousemanRepo.FindAll()
	if err != nil {
		return nil, errors.New("failed to load accounts")
	}

	var user *model.Warehouseman
	for i := range warehousemen {
		if warehousemen[i].CheckSecretKey(secretKey) {
			user = &warehousemen[i]
			break
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	// Single session: a fresh token version invalidates older tokens.
	newTokenVersion := uuid.New().String()
	now := timeNow()
	user.TokenVersion = newTokenVersion
	user.LastSeenAt = &now
	if err := s.warehousemanRepo.Update(user); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, user.Name, user.WarehouseID, newTokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.warehousemanRepo.FindByID(claims.WarehousemanID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	// Strict session check against the DB.
	if user.TokenVersion != claims.TokenVersion {
		return nil, errors.New("session expired (logged in on another device)")
	}

	return &TokenValidationResponse{User: user.ToResponse()}, nil
}
