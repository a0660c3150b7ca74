package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"booking_api/internal/domain"
)

// realmAccessClaim holds the role set, Keycloak-style: {"roles": [...]}.
const realmAccessClaim = "realm_access"

// JWTResolver verifies a bearer token against the configured issuer and
// audience. The subject claim becomes the user id; roles come from the
// realm_access claim. A missing or unparseable realm_access yields an empty
// role set, not an error.
type JWTResolver struct {
	secret   []byte
	issuer   string
	audience string
}

func NewJWTResolver(secret []byte, issuer, audience string) *JWTResolver {
	return &JWTResolver{secret: secret, issuer: issuer, audience: audience}
}

func (j *JWTResolver) Resolve(r *http.Request) (domain.Identity, error) {
	raw := bearerToken(r)
	if raw == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	tok, err := jwt.Parse(raw,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return j.secret, nil
		},
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(j.audience),
	)
	if err != nil || !tok.Valid {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return domain.Identity{UserID: sub, Roles: rolesFrom(claims)}, nil
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

type realmAccess struct {
	Roles []string `json:"roles"`
}

// rolesFrom accepts realm_access either as a nested claim object or as a
// JSON string containing one.
func rolesFrom(claims jwt.MapClaims) []domain.Role {
	switch v := claims[realmAccessClaim].(type) {
	case string:
		var ra realmAccess
		if err := json.Unmarshal([]byte(v), &ra); err != nil {
			return nil
		}
		return toRoles(ra.Roles)
	case map[string]any:
		raw, _ := v["roles"].([]any)
		out := make([]domain.Role, 0, len(raw))
		for _, r := range raw {
			if s, ok := r.(string); ok {
				out = append(out, domain.Role(s))
			}
		}
		return out
	}
	return nil
}

func toRoles(ss []string) []domain.Role {
	out := make([]domain.Role, 0, len(ss))
	for _, s := range ss {
		out = append(out, domain.Role(s))
	}
	return out
}
