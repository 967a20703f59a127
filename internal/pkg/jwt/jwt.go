package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/ttl-ops/portal-backend-go/internal/domain/user"
)

// Service verifies access tokens minted by the upstream identity provider
// and exposes the actor identity carried in their claims. Token issuance,
// refresh and revocation live upstream, not in this service.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ActorFromContext(ctx context.Context) (user.Actor, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// ActorFromContext reads the verified claims placed in the request context by
// the jwtauth verifier middleware.
func (j *JWTService) ActorFromContext(ctx context.Context) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return user.Actor{}, fmt.Errorf("role claim is missing or invalid")
	}

	return user.Actor{UserID: userID, Role: user.Role(roleStr)}, nil
}
