package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/services"
)

type UsersController struct {
	users        UserManager
	auditService *audit.Service
}

func NewUsersController(users UserManager, auditService *audit.Service) *UsersController {
	return &UsersController{users: users, auditService: auditService}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

type emailRequest struct {
	Email string `json:"email" binding:"required"`
}

// CreateUser registers a library member
// POST /user
func (uc *UsersController) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.users.CreateUser(services.CreateUserInput(req))
	if err != nil {
		respondServiceError(c, err, "create user")
		return
	}

	uc.auditService.LogUserChange(GetRequestID(c), entities.AuditEventCreate, user)
	respondCreated(c, "user created", user)
}

// GetUser returns a member by email
// GET /user?email=...
func (uc *UsersController) GetUser(c *gin.Context) {
	email, ok := emailFromRequest(c)
	if !ok {
		return
	}

	user, err := uc.users.GetUser(email)
	if err != nil {
		respondServiceError(c, err, "get user")
		return
	}
	respondSuccess(c, "user found", user)
}

// UpdateUser renames a member
// PATCH /user
func (uc *UsersController) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := uc.users.UpdateUser(services.UpdateUserInput(req))
	if err != nil {
		respondServiceError(c, err, "update user")
		return
	}

	uc.auditService.LogUserChange(GetRequestID(c), entities.AuditEventUpdate, user)
	respondSuccess(c, "user updated", user)
}

// DeleteUser soft deletes a member by email
// DELETE /user?email=...
func (uc *UsersController) DeleteUser(c *gin.Context) {
	email, ok := emailFromRequest(c)
	if !ok {
		return
	}

	user, err := uc.users.DeleteUser(email)
	if err != nil {
		respondServiceError(c, err, "delete user")
		return
	}

	uc.auditService.LogUserChange(GetRequestID(c), entities.AuditEventDelete, user)
	respondSuccess(c, "user deleted", nil)
}

// emailFromRequest reads the email from the query string, falling back to a
// JSON body.
func emailFromRequest(c *gin.Context) (string, bool) {
	if email := c.Query("email"); email != "" {
		return email, true
	}

	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return "", false
	}
	return req.Email, true
}
