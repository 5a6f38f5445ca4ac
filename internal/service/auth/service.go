package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careplan/careplan-backend-go/internal/domain/auth"
	"github.com/careplan/careplan-backend-go/internal/domain/employee"
	"github.com/careplan/careplan-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	employees  employee.EmployeeRepository
	jwtService jwt.Service
}

func NewService(employees employee.EmployeeRepository, jwtService jwt.Service) *Service {
	return &Service{employees: employees, jwtService: jwtService}
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	emp, err := s.employees.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(emp)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The old
// token is revoked so it cannot be replayed.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if token.Expiration().Before(time.Now()) {
		return auth.LoginResponse{}, auth.ErrTokenExpired
	}

	idVal, ok := token.Get("employee_id")
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	employeeID, ok := idVal.(string)
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	s.jwtService.RevokeToken(refreshToken)
	return s.issueTokens(emp)
}

// Me returns the authenticated employee's own profile.
func (s *Service) Me(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Logout revokes the refresh token. Access tokens simply age out.
func (s *Service) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}

func (s *Service) issueTokens(emp employee.Employee) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role, emp.PrimaryLocationID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
