package graph

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the app-only token fields worth showing to an operator.
type Claims struct {
	AppID     string   `json:"appid"`
	TenantID  string   `json:"tid"`
	Roles     []string `json:"roles"`
	AppName   string   `json:"app_displayname"`
	ObjectID  string   `json:"oid"`
	jwt.RegisteredClaims
}

func (c Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// InspectToken decodes a token without verifying its signature. The result
// is for display only.
func InspectToken(raw string) (Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return Claims{}, fmt.Errorf("decode access token: %w", err)
	}
	return claims, nil
}
