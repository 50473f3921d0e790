package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/users/users/dto"
	"fitcoach_backend/internals/features/users/users/model"
	helper "fitcoach_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🔍 GET /api/u/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "Profile fetched successfully", dto.ToUserDTO(user))
}

// ✏️ PATCH /api/u/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	// Partial update
	if body.UserName != nil {
		user.UserName = *body.UserName
	}
	if body.UserGoalWeight != nil {
		user.UserGoalWeight = body.UserGoalWeight
	}
	if body.UserHeightCm != nil {
		user.UserHeightCm = body.UserHeightCm
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile updated successfully", dto.ToUserDTO(user))
}

// 📄 GET /api/a/clients (daftar client milik coach, paginated)
func (ctrl *UserController) GetMyClients(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.UserModel{}).
		Where("user_coach_id = ? AND user_is_active = ?", coachID, true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count clients")
	}

	var clients []model.UserModel
	if err := q.
		Order("user_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&clients).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve clients")
	}

	resp := make([]dto.UserDTO, len(clients))
	for i, u := range clients {
		resp[i] = dto.ToUserDTO(u)
	}

	return helper.JsonList(c, "Clients fetched successfully", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
