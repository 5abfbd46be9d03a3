package identity

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer handles HTTP requests related to authentication.
type IdentityServer struct {
	authService i.Authenticator
}

// NewIdentityServer creates a new IdentityServer.
func NewIdentityServer(a i.Authenticator) *IdentityServer {
	return &IdentityServer{
		authService: a,
	}
}

// RegisterPublic registers public routes.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/register", c.register)
		auth.POST("/login", c.login)
	}
}

// RegisterProtected registers privileged routes.
func (c *IdentityServer) RegisterProtected(route *gin.RouterGroup) {
}

// register handles operator registration.
func (c *IdentityServer) register(ctx *gin.Context) {
	var request AuthRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	operator, err := c.authService.Register(ctx.Request.Context(), request.Username, request.Password)
	if err != nil {
		ctx.JSON(registerStatus(err), gin.H{"error": err.Error()})
		return
	}

	response := &RegisterResponse{
		ID:       operator.ID.String(),
		Username: operator.Username,
	}
	ctx.JSON(http.StatusCreated, response)
}

// login handles operator login.
func (c *IdentityServer) login(ctx *gin.Context) {
	var request AuthRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	operator, token, err := c.authService.SignIn(ctx.Request.Context(), request.Username, request.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while signing in"})
		return
	}

	response := &AuthResponse{
		ID:       operator.ID.String(),
		Username: operator.Username,
		Token:    token,
	}
	ctx.JSON(http.StatusOK, response)
}

func registerStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, dmn.ErrUsernameTooShort),
		errors.Is(err, dmn.ErrUsernameTooLong),
		errors.Is(err, dmn.ErrUsernameFormat),
		errors.Is(err, dmn.ErrWeakPassword):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
