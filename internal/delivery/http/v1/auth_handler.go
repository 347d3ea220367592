package v1

import (
	"net/http"

	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/login", loginLimiter, handler.Login)
		publicAuth.POST("/register", handler.Register)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=jobseeker employer"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login godoc
// @Summary      User Login
// @Description  Authenticate with email and password, returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response{data=LoginResponse}
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", LoginResponse{Token: token, User: user})
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new job seeker or employer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration details"
// @Success      201  {object}  response.Response{data=domain.User}
// @Failure      400  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created", user)
}

// Me godoc
// @Summary      Current user
// @Description  Get the authenticated user's account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", user)
}
