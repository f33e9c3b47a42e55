package auth

import (
	"github.com/jhoicas/lagerhub/internal/application/dto"
	"github.com/jhoicas/lagerhub/internal/domain"
	"github.com/jhoicas/lagerhub/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials cuenta única del operador del dashboard, cargada desde la
// configuración. El hash es bcrypt.
type Credentials struct {
	Username     string
	PasswordHash string
}

// UseCase login del operador: valida credenciales y emite JWT.
type UseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(creds Credentials, jwtCfg JWTConfig) *UseCase {
	return &UseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login verifica username/password contra la cuenta configurada y
// genera el JWT. Devuelve ErrUnauthorized en cualquier discrepancia
// (mismo error para usuario y contraseña incorrectos).
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.creds.PasswordHash == "" {
		// login deshabilitado: sin hash configurado nadie entra
		return nil, domain.ErrUnauthorized
	}
	if in.Username != uc.creds.Username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.creds.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}
