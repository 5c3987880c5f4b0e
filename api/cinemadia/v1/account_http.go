package v1

import (
	context "context"

	"github.com/go-kratos/kratos/v2/errors"
	http "github.com/go-kratos/kratos/v2/transport/http"
)

const OperationAccountRegister = "/api.cinemadia.v1.Account/Register"
const OperationAccountLogin = "/api.cinemadia.v1.Account/Login"
const OperationAccountLogout = "/api.cinemadia.v1.Account/Logout"
const OperationAccountGetProfile = "/api.cinemadia.v1.Account/GetProfile"
const OperationAccountUpdateProfile = "/api.cinemadia.v1.Account/UpdateProfile"
const OperationAccountUploadAvatar = "/api.cinemadia.v1.Account/UploadAvatar"

type AccountHTTPServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterReply, error)
	Login(context.Context, *LoginRequest) (*LoginReply, error)
	Logout(context.Context, *LogoutRequest) (*LogoutReply, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileReply, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileReply, error)
	UploadAvatar(context.Context, *UploadAvatarRequest) (*UploadAvatarReply, error)
}

func RegisterAccountHTTPServer(s *http.Server, srv AccountHTTPServer) {
	r := s.Route("/")
	r.POST("/api/v1/register", _Account_Register0_HTTP_Handler(srv))
	r.POST("/api/v1/login", _Account_Login0_HTTP_Handler(srv))
	r.POST("/api/v1/logout", _Account_Logout0_HTTP_Handler(srv))
	r.GET("/api/v1/profile", _Account_GetProfile0_HTTP_Handler(srv))
	r.POST("/api/v1/profile", _Account_UpdateProfile0_HTTP_Handler(srv))
	r.POST("/api/v1/profile/avatar", _Account_UploadAvatar0_HTTP_Handler(srv))
}

func _Account_Register0_HTTP_Handler(srv AccountHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in RegisterRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationAccountRegister)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Register(ctx, req.(*RegisterRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(201, out.(*RegisterReply))
	}
}

func _Account_Login0_HTTP_Handler(srv AccountHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in LoginRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationAccountLogin)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Login(ctx, req.(*LoginRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*LoginReply))
	}
}

func _Account_Logout0_HTTP_Handler(srv AccountHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in LogoutRequest
		http.SetOperation(ctx, OperationAccountLogout)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Logout(ctx, req.(*LogoutRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*LogoutReply))
	}
}

func _Account_GetProfile0_HTTP_Handler(srv AccountHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetProfileRequest
		http.SetOperation(ctx, OperationAccountGetProfile)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetProfile(ctx, req.(*GetProfileRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*GetProfileReply))
	}
}

func _Account_UpdateProfile0_HTTP_Handler(srv AccountHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in UpdateProfileRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationAccountUpdateProfile)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.UpdateProfile(ctx, req.(*UpdateProfileRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*UpdateProfileReply))
	}
}

func _Account_UploadAvatar0_HTTP_Handler(srv AccountHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		file, header, err := ctx.Request().FormFile("avatar")
		if err != nil {
			return errors.New(422, ErrorReason_VALIDATION_FAILED.String(), "avatar file is required").
				WithMetadata(map[string]string{"avatar": "This field is required."})
		}
		defer file.Close()
		in := UploadAvatarRequest{
			Filename: header.Filename,
			Size:     header.Size,
			Content:  file,
		}
		http.SetOperation(ctx, OperationAccountUploadAvatar)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.UploadAvatar(ctx, req.(*UploadAvatarRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*UploadAvatarReply))
	}
}
