package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	checkinModel "fitcoach_backend/internals/features/checkins/checkins/model"
	"fitcoach_backend/internals/features/progress/analytics/dto"
	"fitcoach_backend/internals/features/progress/analytics/service"
	userModel "fitcoach_backend/internals/features/users/users/model"
	helper "fitcoach_backend/internals/helpers"
)

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// 🔍 GET /api/u/progress — progres client sendiri
func (ctrl *ProgressController) GetMyProgress(c *fiber.Ctx) error {
	clientID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.respondProgress(c, clientID)
}

// 🔍 GET /api/a/clients/:client_id/progress — progres client milik coach
func (ctrl *ProgressController) GetClientProgress(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client ID")
	}

	// Pastikan client memang milik coach ini
	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_coach_id = ?", clientID, coachID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify client")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Client is not assigned to you")
	}

	return ctrl.respondProgress(c, clientID)
}

// respondProgress: satu-satunya titik akses DB; ambil riwayat ascending lalu
// serahkan ke service murni
func (ctrl *ProgressController) respondProgress(c *fiber.Ctx, clientID uuid.UUID) error {
	var checkins []checkinModel.CheckinModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("checkin_client_id = ?", clientID).
		Order("checkin_date ASC").
		Find(&checkins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve check-in history")
	}

	var user userModel.UserModel
	meta := service.ClientMeta{ClientID: clientID}
	if err := ctrl.DB.First(&user, "user_id = ?", clientID).Error; err == nil {
		meta.GoalWeight = user.UserGoalWeight
	}

	metrics := service.ComputeProgress(checkins, meta, time.Now())
	return helper.JsonOK(c, "Progress fetched successfully", dto.ToClientProgressDTO(metrics))
}
