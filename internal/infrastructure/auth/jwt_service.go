package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/siddrai7/communebackend-sub001/domain"
)

// JWTServiceImpl implements domain.TokenService. Tokens are stateless:
// verification is signature plus expiry only, never a store lookup, so
// claims reflect the principal at mint time.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTService creates a new JWT token service
func NewJWTService(secretKey string, issuer string, accessTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Mint implements domain.TokenService
func (j *JWTServiceImpl) Mint(p *domain.Principal) (string, error) {
	return j.mint(p.ID, p.Email, p.Role)
}

func (j *JWTServiceImpl) mint(principalID uint, email string, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"principal_id": principalID,
		"email":        email,
		"role":         role.String(),
		"iss":          j.issuer,
		"iat":          now.Unix(),
		"exp":          now.Add(j.accessTTL).Unix(),
		"jti":          j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Verify implements domain.TokenService
func (j *JWTServiceImpl) Verify(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		if token != nil {
			// jwt.Parse validates exp itself; distinguish expiry so the
			// caller sees the most specific error
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if exp, ok := claims["exp"].(float64); ok && time.Unix(int64(exp), 0).Before(time.Now()) {
					return nil, domain.ErrTokenExpired
				}
			}
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	principalID, ok := claims["principal_id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	role, ok := domain.ParseRole(roleStr)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	return &domain.TokenClaims{
		PrincipalID: uint(principalID),
		Email:       email,
		Role:        role,
		IssuedAt:    int64(iat),
		ExpiresAt:   int64(exp),
	}, nil
}

// Refresh implements domain.TokenService. Claims carry over unchanged;
// current principal status and role are not re-checked.
func (j *JWTServiceImpl) Refresh(tokenString string) (string, error) {
	claims, err := j.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return j.mint(claims.PrincipalID, claims.Email, claims.Role)
}
