package service

import (
	"context"
	"net/http"
	"time"

	v1 "cinemadia/api/cinemadia/v1"
	"cinemadia/internal/biz"
	"cinemadia/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
)

// DefaultCookieName is the session cookie used when none is configured.
const DefaultCookieName = "sessionid"

// AccountService implements registration, login and profile endpoints
type AccountService struct {
	accountUC    *biz.AccountUseCase
	cookieName   string
	cookieSecure bool
	log          *log.Helper
}

// NewAccountService creates a new AccountService
func NewAccountService(c *conf.Auth, accountUC *biz.AccountUseCase, logger log.Logger) *AccountService {
	s := &AccountService{
		accountUC:  accountUC,
		cookieName: DefaultCookieName,
		log:        log.NewHelper(logger),
	}
	if c != nil {
		if c.CookieName != "" {
			s.cookieName = c.CookieName
		}
		s.cookieSecure = c.CookieSecure
	}
	return s
}

// CookieName returns the name of the session cookie
func (s *AccountService) CookieName() string {
	return s.cookieName
}

// Register implements sign-up; the new user is signed in right away
func (s *AccountService) Register(ctx context.Context, req *v1.RegisterRequest) (*v1.RegisterReply, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	user, session, err := s.accountUC.Register(ctx, &biz.RegisterRequest{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password1: req.Password1,
		Password2: req.Password2,
	})
	if err != nil {
		return nil, err
	}
	s.setSessionCookie(ctx, session.Token, s.accountUC.SessionTTL())
	s.log.WithContext(ctx).Infof("registered user %s", user.Username)
	return &v1.RegisterReply{User: userToReply(user), Redirect: "/"}, nil
}

// Login implements sign-in
func (s *AccountService) Login(ctx context.Context, req *v1.LoginRequest) (*v1.LoginReply, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	user, session, err := s.accountUC.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	s.setSessionCookie(ctx, session.Token, s.accountUC.SessionTTL())
	return &v1.LoginReply{
		User:     userToReply(user),
		Token:    session.Token,
		Redirect: "/",
	}, nil
}

// Logout ends the caller's session and clears the cookie
func (s *AccountService) Logout(ctx context.Context, req *v1.LogoutRequest) (*v1.LogoutReply, error) {
	if v, ok := biz.ViewerFromContext(ctx); ok {
		if err := s.accountUC.Logout(ctx, v.Token); err != nil {
			return nil, err
		}
	}
	s.setSessionCookie(ctx, "", -1)
	return &v1.LogoutReply{Redirect: "/"}, nil
}

// GetProfile implements the profile page
func (s *AccountService) GetProfile(ctx context.Context, req *v1.GetProfileRequest) (*v1.GetProfileReply, error) {
	overview, err := s.accountUC.Profile(ctx, biz.ViewerID(ctx))
	if err != nil {
		return nil, err
	}
	return &v1.GetProfileReply{
		User:     userToReply(overview.User),
		Profile:  profileToReply(overview.Profile),
		Activity: activityToReply(overview.Activity),
	}, nil
}

// UpdateProfile implements profile editing
func (s *AccountService) UpdateProfile(ctx context.Context, req *v1.UpdateProfileRequest) (*v1.UpdateProfileReply, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	update := &biz.UpdateProfileRequest{
		Bio:            req.Bio,
		Avatar:         req.Avatar,
		FavoriteGenres: req.FavoriteGenres,
	}
	if req.BirthDate != "" {
		d, err := time.Parse(dateLayout, req.BirthDate)
		if err != nil {
			return nil, biz.ValidationError(map[string]string{"birth_date": "Enter a valid date."})
		}
		update.BirthDate = &d
	}
	profile, err := s.accountUC.UpdateProfile(ctx, biz.ViewerID(ctx), update)
	if err != nil {
		return nil, err
	}
	return &v1.UpdateProfileReply{Profile: profileToReply(profile)}, nil
}

// UploadAvatar stores the uploaded image as the caller's avatar
func (s *AccountService) UploadAvatar(ctx context.Context, req *v1.UploadAvatarRequest) (*v1.UploadAvatarReply, error) {
	profile, err := s.accountUC.UploadAvatar(ctx, biz.ViewerID(ctx), req.Filename, req.Content)
	if err != nil {
		return nil, err
	}
	return &v1.UploadAvatarReply{Profile: profileToReply(profile)}, nil
}

// setSessionCookie writes the session cookie on the reply; a negative ttl
// expires it.
func (s *AccountService) setSessionCookie(ctx context.Context, token string, ttl time.Duration) {
	tr, ok := transport.FromServerContext(ctx)
	if !ok {
		return
	}
	cookie := &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	} else {
		cookie.MaxAge = int(ttl.Seconds())
	}
	tr.ReplyHeader().Add("Set-Cookie", cookie.String())
}
