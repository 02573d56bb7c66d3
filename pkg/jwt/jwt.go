package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la
// aplicación: el nombre mostrado del usuario autorizado y si es admin
// (allow == "A" en telefonos.csv).
type Claims struct {
	jwt.RegisteredClaims
	Nombre  string `json:"nombre"`
	EsAdmin bool   `json:"es_admin"`
}

// Generate genera un token JWT firmado con el nombre y el flag de admin.
func Generate(secret, nombre string, esAdmin bool, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   nombre,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Nombre:  nombre,
		EsAdmin: esAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el nombre y el flag de admin.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (nombre string, esAdmin bool, err error) {
	if secret == "" {
		return "", false, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", false, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", false, fmt.Errorf("claims inválidos")
	}
	return claims.Nombre, claims.EsAdmin, nil
}
