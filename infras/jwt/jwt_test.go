package jwt_test

import (
	"errors"
	"testing"

	"roomescape/config"
	"roomescape/infras/jwt"
)

func newTestService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "roomescape"
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestService()

	pair, err := svc.GenerateTokenPair(1, "alice@example.com", "member")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pair.TokenType != "Bearer" {
		t.Errorf("expected token type Bearer, got %s", pair.TokenType)
	}

	if pair.ExpiresIn != 15*60 {
		t.Errorf("expected expires_in %d, got %d", 15*60, pair.ExpiresIn)
	}

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error validating access token: %v", err)
	}

	if claims.MemberID != 1 {
		t.Errorf("expected member id 1, got %d", claims.MemberID)
	}

	if claims.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", claims.Email)
	}

	if claims.Role != "member" {
		t.Errorf("expected role member, got %s", claims.Role)
	}

	if claims.Type != jwt.AccessToken {
		t.Errorf("expected access token type, got %s", claims.Type)
	}
}

func TestValidateToken_WrongType(t *testing.T) {
	svc := newTestService()

	pair, err := svc.GenerateTokenPair(1, "alice@example.com", "member")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Refresh token cannot pass as an access token: different secret.
	if _, err := svc.ValidateToken(pair.RefreshToken, jwt.AccessToken); err == nil {
		t.Error("expected an error validating a refresh token as access")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService()

	if _, err := svc.ValidateToken("not-a-token", jwt.AccessToken); !errors.Is(err, jwt.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRefreshTokens(t *testing.T) {
	svc := newTestService()

	pair, err := svc.GenerateTokenPair(1, "alice@example.com", "member")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error refreshing: %v", err)
	}

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error validating refreshed access token: %v", err)
	}

	if claims.MemberID != 1 {
		t.Errorf("expected member id to carry over, got %d", claims.MemberID)
	}

	if _, err := svc.RefreshTokens(pair.AccessToken); err == nil {
		t.Error("expected an error refreshing with an access token")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing bearer prefix", header: "Token abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if token != tt.want {
				t.Errorf("expected %q, got %q", tt.want, token)
			}
		})
	}
}
