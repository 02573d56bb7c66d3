// Package auth controla el acceso a la sección de informaciones y reportes.
// El sistema no tiene cuentas de usuario: una sola contraseña compartida
// habilita la sección y a cambio se emite un token Bearer de corta vida.
package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/domain"
	pkgjwt "github.com/boadigital/bazar-ops/pkg/jwt"
)

// JWTConfig parámetros de emisión del token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase valida la contraseña de informaciones y emite el token.
type AuthUseCase struct {
	infoPassword string
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso. infoPassword acepta un hash bcrypt
// ($2a$..., $2b$...) o texto plano para instalaciones de desarrollo.
func NewAuthUseCase(infoPassword string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{infoPassword: infoPassword, jwtCfg: jwtCfg}
}

// Authorize compara la contraseña y emite un token con el claim de
// informaciones. Contraseña no configurada o incorrecta ⇒ ErrUnauthorized.
func (uc *AuthUseCase) Authorize(in dto.AuthorizeRequest) (*dto.AuthorizeResponse, error) {
	if uc.infoPassword == "" {
		return nil, domain.ErrUnauthorized
	}
	if !uc.passwordOK(in.Password) {
		return nil, domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, "informaciones", true, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthorizeResponse{Token: token}, nil
}

func (uc *AuthUseCase) passwordOK(password string) bool {
	if strings.HasPrefix(uc.infoPassword, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(uc.infoPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(uc.infoPassword), []byte(password)) == 1
}
