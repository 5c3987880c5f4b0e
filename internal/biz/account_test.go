package biz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	v1 "cinemadia/api/cinemadia/v1"

	kerrors "github.com/go-kratos/kratos/v2/errors"
)

func validRegistration(username string) *RegisterRequest {
	return &RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	}
}

func TestRegister(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()

	user, session, err := uc.account.Register(ctx, validRegistration("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret-pass" {
		t.Error("password stored in clear")
	}
	if _, ok := uc.store.profiles[user.ID]; !ok {
		t.Error("profile not created with the user")
	}
	if session.UserID != user.ID || len(session.Token) != 64 {
		t.Errorf("session = %+v", session)
	}

	viewer, err := uc.account.Authenticate(ctx, session.Token)
	if err != nil || viewer.Username != "alice" {
		t.Errorf("authenticate = %+v, %v", viewer, err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()
	if _, _, err := uc.account.Register(ctx, validRegistration("alice")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := uc.account.Register(ctx, validRegistration("alice"))
	if !v1.IsValidationFailed(err) {
		t.Fatalf("err = %v, want VALIDATION_FAILED", err)
	}
	if msg := kerrors.FromError(err).Metadata["username"]; !strings.Contains(msg, "already exists") {
		t.Errorf("username message = %q", msg)
	}
	if len(uc.store.users) != 1 || len(uc.store.profiles) != 1 {
		t.Errorf("users=%d profiles=%d, want 1/1", len(uc.store.users), len(uc.store.profiles))
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(r *RegisterRequest)
		field string
	}{
		{"blank username", func(r *RegisterRequest) { r.Username = " " }, "username"},
		{"bad username", func(r *RegisterRequest) { r.Username = "al ice" }, "username"},
		{"long username", func(r *RegisterRequest) { r.Username = strings.Repeat("a", 151) }, "username"},
		{"blank email", func(r *RegisterRequest) { r.Email = "" }, "email"},
		{"short password", func(r *RegisterRequest) { r.Password1, r.Password2 = "abc", "abc" }, "password1"},
		{"numeric password", func(r *RegisterRequest) { r.Password1, r.Password2 = "12345678", "12345678" }, "password1"},
		{"mismatch", func(r *RegisterRequest) { r.Password2 = "other-pass" }, "password2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCases()
			req := validRegistration("bob")
			tt.edit(req)
			_, _, err := uc.account.Register(context.Background(), req)
			if !v1.IsValidationFailed(err) {
				t.Fatalf("err = %v, want VALIDATION_FAILED", err)
			}
			if kerrors.FromError(err).Metadata[tt.field] == "" {
				t.Errorf("no message for %q: %v", tt.field, kerrors.FromError(err).Metadata)
			}
			if len(uc.store.users) != 0 || len(uc.store.profiles) != 0 {
				t.Error("rejected registration left rows behind")
			}
		})
	}
}

func TestLoginLogout(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()
	if _, _, err := uc.account.Register(ctx, validRegistration("alice")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := uc.account.Login(ctx, "alice", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, _, err := uc.account.Login(ctx, "nobody", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v", err)
	}

	_, session, err := uc.account.Login(ctx, "alice", "s3cret-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.account.Logout(ctx, session.Token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.account.Authenticate(ctx, session.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("after logout: err = %v", err)
	}
}

func TestAuthenticateExpired(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()
	user, _, err := uc.account.Register(ctx, validRegistration("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.store.sessions["stale"] = &Session{Token: "stale", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Minute)}

	if _, err := uc.account.Authenticate(ctx, "stale"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
	if _, ok := uc.store.sessions["stale"]; ok {
		t.Error("expired session not removed")
	}
}

func TestProfile(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()
	user, _, err := uc.account.Register(ctx, validRegistration("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	movie := uc.store.addMovie(&Movie{Title: "Dune"})
	if _, err := uc.library.ToggleFavorite(ctx, user.ID, movie.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.reviews.Submit(ctx, user.ID, movie.ID, 9, "loved it"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	overview, err := uc.account.Profile(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := overview.Activity
	if a.FavoritesCount != 1 || a.ReviewsCount != 1 || a.WatchlistCount != 0 || len(a.RecentFavorites) != 1 {
		t.Errorf("activity = %+v", a)
	}

	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	profile, err := uc.account.UpdateProfile(ctx, user.ID, &UpdateProfileRequest{Bio: "hi", BirthDate: &birth, FavoriteGenres: "Drama"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Bio != "hi" || !profile.BirthDate.Equal(birth) {
		t.Errorf("profile = %+v", profile)
	}

	if _, err := uc.account.Profile(ctx, ""); !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("anonymous profile: err = %v", err)
	}
}

func TestUploadAvatar(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()
	user, _, err := uc.account.Register(ctx, validRegistration("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := uc.account.UploadAvatar(ctx, user.ID, "me.PNG", strings.NewReader("png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Avatar != "/media/avatars/me.PNG" || string(uc.store.media[profile.Avatar]) != "png" {
		t.Errorf("avatar = %q", profile.Avatar)
	}

	if _, err := uc.account.UploadAvatar(ctx, user.ID, "script.sh", strings.NewReader("x")); !v1.IsValidationFailed(err) {
		t.Errorf("err = %v, want VALIDATION_FAILED", err)
	}
}

func TestUpdateProfileKeepsUploadedAvatar(t *testing.T) {
	uc := newUseCases()
	ctx := context.Background()
	user, _, err := uc.account.Register(ctx, validRegistration("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uploaded, err := uc.account.UploadAvatar(ctx, user.ID, "me.png", strings.NewReader("png"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := uc.account.UpdateProfile(ctx, user.ID, &UpdateProfileRequest{Bio: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Avatar != uploaded.Avatar {
		t.Errorf("avatar after bio-only update = %q, want %q", profile.Avatar, uploaded.Avatar)
	}
	overview, err := uc.account.Profile(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Profile.Avatar != uploaded.Avatar || overview.Profile.Bio != "hi" {
		t.Errorf("stored profile = %+v", overview.Profile)
	}

	cleared := ""
	profile, err = uc.account.UpdateProfile(ctx, user.ID, &UpdateProfileRequest{Bio: "hi", Avatar: &cleared})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Avatar != "" {
		t.Errorf("explicit empty avatar should clear it, got %q", profile.Avatar)
	}
}
