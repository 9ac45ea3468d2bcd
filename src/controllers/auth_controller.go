package controllers

import (
	"time"

	"Backend-EaseForm/src/services"
	"Backend-EaseForm/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// RegisterHost godoc
// @Summary      Register host credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.Host
// @Failure      400  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func RegisterHost(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	host, err := services.RegisterHost(req.Email, req.Password, req.Name)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(host)
}

// LoginHost godoc
// @Summary      Login as host
// @Tags         auth
// @Accept       json
// @Produce      json
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func LoginHost(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	host, err := services.AuthenticateHost(req.Email, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateJWT(host.ID.Hex(), host.Email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	refreshToken := uuid.NewString()
	if err := utils.StoreRefreshToken(host.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Session store failed")
	}

	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"expiresIn":    86400,
		"host": fiber.Map{
			"id":    host.ID.Hex(),
			"name":  host.Name,
			"email": host.Email,
		},
		"message": "Login successful",
	})
}

// RefreshToken godoc
// @Summary      Rotate tokens from a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		HostID       string `json:"hostId"`
		Email        string `json:"email"`
		RefreshToken string `json:"refreshToken"`
	}

	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.HostID == "" || req.RefreshToken == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "hostId and refreshToken are required")
	}

	valid, err := utils.ValidateRefreshToken(req.HostID, req.RefreshToken)
	if err != nil || !valid {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	token, err := utils.GenerateJWT(req.HostID, req.Email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	// Rotate the refresh token on every use.
	newRefresh := uuid.NewString()
	if err := utils.StoreRefreshToken(req.HostID, newRefresh, refreshTokenTTL); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Session store failed")
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": newRefresh,
		"expiresIn":    86400,
	})
}

// Logout godoc
// @Summary      Logout, revoking the current tokens
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Router       /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	hostID, _ := c.Locals("hostId").(string)
	token, _ := c.Locals("token").(string)

	if token != "" {
		// Blacklist for as long as the access token could still be valid.
		_ = utils.BlacklistToken(token, 24*time.Hour)
	}
	if hostID != "" {
		_ = utils.DeleteRefreshToken(hostID)
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}
