package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/innovators-conclave/backend/internal/domain"
	"github.com/innovators-conclave/backend/internal/service"
	"github.com/innovators-conclave/backend/pkg/logger"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.POST("/logout", h.logout)
	api.POST("/verify-email", h.verifyEmail)
	api.POST("/resend-verification", h.resendVerification)
	api.POST("/reset-password-request", h.resetPasswordRequest)
	api.POST("/reset-password", h.resetPassword)

	api.GET("/me", h.userIdentityMiddleware, h.me)
}

type registerRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Country     string `json:"country"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Profession  string `json:"profession"`
	CollegeName string `json:"collegeName"`
	CompanyName string `json:"companyName"`
}

type registerResponse struct {
	Message                   string `json:"message"`
	Email                     string `json:"email"`
	RequiresEmailVerification bool   `json:"requiresEmailVerification"`
}

// @Summary Register
// @Tags Auth
// @Description Creates an unconfirmed account plus its profile row and emails a verification code
// @Accept json
// @Produce json
// @Param input body registerRequest true "registration fields"
// @Success 200 {object} registerResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "All required fields must be filled")
		return
	}

	// Field presence is re-checked server-side even though the form validates
	// client-side, with one stable message per missing-field class.
	if req.FullName == "" || req.PhoneNumber == "" || req.Email == "" || req.Password == "" ||
		req.Gender == "" || req.DateOfBirth == "" || req.Country == "" || req.State == "" ||
		req.Pincode == "" || req.Profession == "" {
		newErrorResponse(c, http.StatusBadRequest, "All required fields must be filled")
		return
	}

	if req.Profession == string(domain.ProfessionStudent) && req.CollegeName == "" {
		newErrorResponse(c, http.StatusBadRequest, "College name is required for students")
		return
	}

	if req.Profession == string(domain.ProfessionProfessional) && req.CompanyName == "" {
		newErrorResponse(c, http.StatusBadRequest, "Company name is required for professionals")
		return
	}

	err := h.services.Auth.SignUp(c.Request.Context(), service.SignUpInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
		Gender:      domain.Gender(req.Gender),
		DateOfBirth: req.DateOfBirth,
		Country:     req.Country,
		State:       req.State,
		Pincode:     req.Pincode,
		Profession:  domain.Profession(req.Profession),
		CollegeName: req.CollegeName,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExist) {
			newErrorResponse(c, http.StatusBadRequest, "Email already registered")
			return
		}
		logger.Error("registration failed", zap.Error(err))
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create user profile")
		return
	}

	c.JSON(http.StatusOK, registerResponse{
		Message:                   "Registration successful! Please check your email for the verification code.",
		Email:                     req.Email,
		RequiresEmailVerification: true,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type loginResponse struct {
	Message string          `json:"message"`
	Session sessionResponse `json:"session"`
	User    interface{}     `json:"user"`
}

type unconfirmedResponse struct {
	Error                     string `json:"error"`
	RequiresEmailVerification bool   `json:"requiresEmailVerification"`
}

// @Summary Login
// @Tags Auth
// @Description Password login; an unconfirmed email is the one distinguished failure
// @Accept json
// @Produce json
// @Param input body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.services.Auth.SignIn(c.Request.Context(), service.SignInInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailNotConfirmed) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unconfirmedResponse{
				Error:                     "Please verify your email before logging in",
				RequiresEmailVerification: true,
			})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Error("login failed", zap.Error(err))
		newErrorResponse(c, http.StatusInternalServerError, "Login failed")
		return
	}

	// The profile lookup is best-effort: without it the login still succeeds
	// with a minimal user object.
	var user interface{}
	if result.Profile != nil {
		user = result.Profile
	} else {
		user = gin.H{"email": result.Email}
	}

	c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		Session: sessionResponse{
			AccessToken:  result.Tokens.AccessToken,
			RefreshToken: result.Tokens.RefreshToken.String(),
			ExpiresIn:    int64(result.Tokens.AccessTTL.Seconds()),
		},
		User: user,
	})
}

type logoutRequest struct {
	AccessToken string `json:"accessToken"`
}

// @Summary Logout
// @Tags Auth
// @Description Revokes the sessions belonging to the presented access token
// @Accept json
// @Produce json
// @Param input body logoutRequest true "access token"
// @Success 200 {object} messageResponse
// @Failure 500 {object} errorResponse
// @Router /logout [post]
func (h *Handler) logout(c *gin.Context) {
	var req logoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	if err := h.services.Auth.SignOut(c.Request.Context(), req.AccessToken); err != nil {
		logger.Error("logout failed", zap.Error(err))
		newErrorResponse(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

type verifyEmailRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type verifyEmailResponse struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified"`
}

// @Summary Verify email
// @Tags Auth
// @Description Consumes the 6-digit code and confirms the account
// @Accept json
// @Produce json
// @Param input body verifyEmailRequest true "email and code"
// @Success 200 {object} verifyEmailResponse
// @Failure 400 {object} errorResponse
// @Router /verify-email [post]
func (h *Handler) verifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Token == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email and verification code are required")
		return
	}

	if err := h.services.Auth.VerifyEmail(c.Request.Context(), req.Email, req.Token); err != nil {
		if errors.Is(err, service.ErrInvalidVerificationCode) {
			newErrorResponse(c, http.StatusBadRequest, "Invalid or expired verification code")
			return
		}
		logger.Error("email verification failed", zap.Error(err))
		newErrorResponse(c, http.StatusInternalServerError, "Verification failed")
		return
	}

	c.JSON(http.StatusOK, verifyEmailResponse{
		Message:  "Email verified successfully! You can now login.",
		Verified: true,
	})
}

type emailOnlyRequest struct {
	Email string `json:"email"`
}

// @Summary Resend verification code
// @Tags Auth
// @Description Issues a fresh code, invalidating the previous one
// @Accept json
// @Produce json
// @Param input body emailOnlyRequest true "email"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /resend-verification [post]
func (h *Handler) resendVerification(c *gin.Context) {
	var req emailOnlyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.services.Auth.ResendVerification(c.Request.Context(), req.Email); err != nil {
		logger.Error("resend verification failed", zap.Error(err))
		newErrorResponse(c, http.StatusInternalServerError, "Failed to resend verification code")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Verification code resent successfully"})
}

// @Summary Request password reset
// @Tags Auth
// @Description Emails a single-use reset link
// @Accept json
// @Produce json
// @Param input body emailOnlyRequest true "email"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /reset-password-request [post]
func (h *Handler) resetPasswordRequest(c *gin.Context) {
	var req emailOnlyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.services.Auth.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		logger.Error("password reset request failed", zap.Error(err))
		newErrorResponse(c, http.StatusInternalServerError, "Failed to send reset email")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Password reset email sent"})
}

type resetPasswordRequest struct {
	AccessToken string `json:"accessToken"`
	Password    string `json:"password"`
}

// @Summary Commit password reset
// @Tags Auth
// @Description Consumes a reset token from the emailed link and sets the new password
// @Accept json
// @Produce json
// @Param input body resetPasswordRequest true "token and new password"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Router /reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AccessToken == "" || req.Password == "" {
		newErrorResponse(c, http.StatusBadRequest, "Token and new password are required")
		return
	}

	if err := h.services.Auth.ResetPassword(c.Request.Context(), req.AccessToken, req.Password); err != nil {
		if errors.Is(err, service.ErrPasswordTooShort) {
			newErrorResponse(c, http.StatusBadRequest, "Password must be at least 6 characters long")
			return
		}
		if errors.Is(err, service.ErrInvalidResetToken) {
			newErrorResponse(c, http.StatusBadRequest, "Invalid password reset link. Please request a new one.")
			return
		}
		logger.Error("password reset failed", zap.Error(err))
		newErrorResponse(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Password updated successfully"})
}

// @Summary Current profile
// @Tags Auth
// @Description Returns the profile row of the authenticated user
// @Produce json
// @Success 200 {object} domain.UserProfile
// @Failure 401
// @Failure 404 {object} errorResponse
// @Security UserAuth
// @Router /me [get]
func (h *Handler) me(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.services.Auth.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Profile not found")
			return
		}
		logger.Error("profile fetch failed", zap.Error(err))
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
