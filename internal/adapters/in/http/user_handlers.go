package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"veggo/internal/core/application/usecases/commands"
	"veggo/internal/core/application/usecases/queries"
	"veggo/internal/core/domain/model/kernel"
	"veggo/internal/core/domain/model/user"
	"veggo/internal/core/ports"
)

// SignupUser handles POST /api/user/signup.
func (s *Server) SignupUser(ctx echo.Context) error {
	var req signupUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	home, err := optionalGeoPoint(req.HomeLat, req.HomeLng)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(),
		req.Username,
		req.Email,
		req.Password,
		req.Phone,
		req.Address,
		home,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userProfileResponse(created))
}

// LoginUser handles POST /api/user/login.
func (s *Server) LoginUser(ctx echo.Context) error {
	return s.login(ctx, ports.ActorUser)
}

// GetUserProfile handles GET /api/user/profile.
func (s *Server) GetUserProfile(ctx echo.Context) error {
	userID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetUserProfileQuery(userID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetUserProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// UpdateUserProfile handles PUT /api/user/profile/update.
func (s *Server) UpdateUserProfile(ctx echo.Context) error {
	userID, err := actorUUID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req updateProfileRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	home, err := optionalGeoPoint(req.HomeLat, req.HomeLng)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateProfileCommand(userID, user.ProfileUpdate{
		Username: req.Username,
		Phone:    req.Phone,
		Address:  req.Address,
		Home:     home,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.UpdateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetUserProfileQuery(userID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetUserProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// VerifyEmail handles GET /api/user/verify-email?token=...
func (s *Server) VerifyEmail(ctx echo.Context) error {
	cmd, err := commands.NewVerifyEmailCommand(ctx.QueryParam("token"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.VerifyEmail.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "email verified"})
}

// ForgotPassword handles POST /api/user/forgot-password. The response is
// the same whether or not the email has an account.
func (s *Server) ForgotPassword(ctx echo.Context) error {
	var req forgotPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRequestPasswordResetCommand(req.Email)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.RequestPasswordReset.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Message: "if the email is registered, a reset link has been sent",
	})
}

// ResetPassword handles POST /api/user/reset-password.
func (s *Server) ResetPassword(ctx echo.Context) error {
	var req resetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewResetPasswordCommand(req.Token, req.NewPassword)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.ResetPassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// login verifies stored credentials for the given actor kind and mints a
// bearer token.
func (s *Server) login(ctx echo.Context, kind ports.ActorKind) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateQuery(req.Email, req.Password, kind)
	if err != nil {
		return s.writeError(ctx, err)
	}

	actor, err := s.handlers.Authenticate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	token, err := s.issuer.Issue(actor.ID, actor.Kind, tokenTTL)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token: token,
		ID:    actor.ID,
		Name:  actor.Name,
		Kind:  string(actor.Kind),
	})
}

// userProfileResponse shapes a freshly created account like the profile
// read model, so signup and profile reads return the same document.
func userProfileResponse(u *user.User) queries.UserView {
	view := queries.UserView{
		ID:        u.ID().String(),
		Username:  u.Username(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Address:   u.Address(),
		Verified:  u.IsVerified(),
		CreatedAt: u.CreatedAt(),
	}
	if home := u.Home(); home != nil {
		lat, lng := home.Lat(), home.Lng()
		view.HomeLat = &lat
		view.HomeLng = &lng
	}
	return view
}

// optionalGeoPoint builds a point when both coordinates are present.
// Supplying only one of the pair is rejected.
func optionalGeoPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errInvalidCoordinatePair
	}
	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
