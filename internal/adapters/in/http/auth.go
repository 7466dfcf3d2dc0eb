package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Register handles POST /api/v1/auth/register - creates an account of any
// role.
func (s *Server) Register(ctx echo.Context) error {
	var request RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := account.RoleFromString(request.Role)
	if err != nil {
		return badRequest(ctx, "Unknown role: "+request.Role)
	}

	accountID := kernel.NewUUID()
	command, err := commands.NewRegisterAccountCommand(
		accountID,
		request.Name, request.Email, request.Password, request.Phone,
		role,
		request.Address, request.City, request.District,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.commands.RegisterAccount.Handle(ctx.Request().Context(), command); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{ID: accountID.String()})
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues a
// bearer token. Credential failures are indistinguishable from unknown
// emails.
func (s *Server) Login(ctx echo.Context) error {
	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	uow := s.uowFactory.Create()
	acc, err := uow.AccountRepository().GetByEmail(ctx.Request().Context(), request.Email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return unauthorized(ctx)
		}
		return fail(ctx, err)
	}

	if err = bcrypt.CompareHashAndPassword(
		[]byte(acc.PasswordHash()), []byte(request.Password),
	); err != nil {
		return unauthorized(ctx)
	}

	if acc.IsBlocked() {
		return fail(ctx, account.ErrAccountBlocked)
	}

	token, err := s.tokens.Issue(acc)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Invalid email or password",
	})
}
