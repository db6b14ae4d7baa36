package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (h *AuthController) Signup(c *gin.Context) {
	var input services.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Auth.Register(input)
	if err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.Created(c, "registration successful", user)
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	token, user, err := h.Auth.Login(input.Email, input.Password)
	if err != nil {
		utils.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}
	utils.OK(c, "login successful", gin.H{"token": token, "user": user})
}

func (h *AuthController) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	h.Auth.ForgotPassword(input.Email)
	utils.OK(c, "If the email exists, a reset code has been sent", nil)
}

func (h *AuthController) ResetPassword(c *gin.Context) {
	var input struct {
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.Auth.ResetPassword(input.Code, input.NewPassword); err != nil {
		utils.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.OK(c, "password has been reset", nil)
}
