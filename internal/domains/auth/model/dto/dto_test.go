package dto_test

import (
	"roomescape/infras/jwt"
	"roomescape/internal/domains/auth/model/dto"
	"roomescape/shared/constant"
	"testing"
)

func TestRegisterRequest_ToMemberModel(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	}

	member := req.ToMemberModel("registrar", "hashed-password")

	if member.Name != "Alice" {
		t.Errorf("expected name Alice, got %s", member.Name)
	}

	if member.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", member.Email)
	}

	if member.Password != "hashed-password" {
		t.Error("expected the hashed password, not the plain one")
	}

	if member.Role != constant.RoleMember {
		t.Errorf("expected role %s, got %s", constant.RoleMember, member.Role)
	}

	if member.CreatedBy != "registrar" || member.ModifiedBy != "registrar" {
		t.Error("expected audit fields to carry the username")
	}

	if member.CreatedAt.IsZero() || member.ModifiedAt.IsZero() {
		t.Error("expected audit timestamps to be set")
	}
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	pair := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	res := &dto.LoginResponse{}
	res.FromTokenPair(pair)

	if res.AccessToken != "access" || res.RefreshToken != "refresh" {
		t.Errorf("unexpected tokens: %+v", res)
	}

	if res.ExpiresIn != 900 {
		t.Errorf("expected expires_in 900, got %d", res.ExpiresIn)
	}
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	pair := &jwt.TokenPair{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		ExpiresIn:    900,
	}

	res := &dto.RefreshTokenResponse{}
	res.FromTokenPair(pair)

	if res.AccessToken != "new-access" || res.RefreshToken != "new-refresh" {
		t.Errorf("unexpected tokens: %+v", res)
	}
}
