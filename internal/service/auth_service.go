package service

import (
	"fmt"
	"time"

	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// StaffClaims 运营后台 JWT 载荷
type StaffClaims struct {
	StaffID  uint   `json:"staff_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// UserClaims 顾客令牌载荷（仅校验，签发在外部身份服务）
type UserClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthService 认证服务
type AuthService struct {
	staffRepo        repository.StaffRepository
	staffSecret      []byte
	staffExpireHours int
	userSecret       []byte
}

// NewAuthService 创建认证服务
func NewAuthService(staffRepo repository.StaffRepository, staffSecret string, staffExpireHours int, userSecret string) *AuthService {
	if staffExpireHours <= 0 {
		staffExpireHours = 12
	}
	return &AuthService{
		staffRepo:        staffRepo,
		staffSecret:      []byte(staffSecret),
		staffExpireHours: staffExpireHours,
		userSecret:       []byte(userSecret),
	}
}

// HashPassword bcrypt 加密口令
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword 校验口令
func VerifyPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// StaffLogin 运营账号登录，成功返回签名令牌
func (s *AuthService) StaffLogin(username, password string) (string, *models.Staff, error) {
	staff, err := s.staffRepo.GetByUsername(username)
	if err != nil {
		return "", nil, fmt.Errorf("load staff: %w", err)
	}
	if staff == nil || !VerifyPassword(staff.Password, password) {
		return "", nil, ErrInvalidCredentials
	}
	if !staff.Active {
		return "", nil, ErrStaffDisabled
	}

	token, err := s.generateStaffToken(staff)
	if err != nil {
		return "", nil, err
	}
	return token, staff, nil
}

func (s *AuthService) generateStaffToken(staff *models.Staff) (string, error) {
	now := time.Now()
	claims := StaffClaims{
		StaffID:  staff.ID,
		Username: staff.Username,
		Role:     staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.staffExpireHours) * time.Hour)),
			Subject:   staff.Username,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.staffSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseStaffToken 解析运营令牌
func (s *AuthService) ParseStaffToken(tokenString string) (*StaffClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &StaffClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.staffSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseUserToken 校验外部身份服务签发的顾客令牌
func (s *AuthService) ParseUserToken(tokenString string) (*UserClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.userSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
