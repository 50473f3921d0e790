package controller

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	checkinModel "fitcoach_backend/internals/features/checkins/checkins/model"
	"fitcoach_backend/internals/features/checkins/schedule/dto"
	"fitcoach_backend/internals/features/checkins/schedule/model"
	"fitcoach_backend/internals/features/checkins/schedule/service"
	helper "fitcoach_backend/internals/helpers"
	"fitcoach_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type CheckinScheduleController struct {
	DB *gorm.DB
}

func NewCheckinScheduleController(db *gorm.DB) *CheckinScheduleController {
	return &CheckinScheduleController{DB: db}
}

// ➕ POST /api/a/checkin-schedules
// Buat schedule + langsung materialisasi seed pending ±3 bulan ke depan.
func (ctrl *CheckinScheduleController) CreateCheckinSchedule(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateCheckinScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	daysJSON, err := sonic.Marshal(body.CheckinScheduleSelectedDays)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid selected days")
	}

	newSchedule := model.CheckinScheduleModel{
		CheckinScheduleCoachID:        coachID,
		CheckinScheduleClientID:       body.CheckinScheduleClientID,
		CheckinScheduleFrequency:      body.CheckinScheduleFrequency,
		CheckinScheduleSelectedDays:   datatypes.JSON(daysJSON),
		CheckinScheduleIntervalValue:  body.CheckinScheduleIntervalValue,
		CheckinScheduleIntervalUnit:   body.CheckinScheduleIntervalUnit,
		CheckinScheduleStartAt:        body.CheckinScheduleStartAt,
		CheckinScheduleWindowOpenDay:  body.CheckinScheduleWindowOpenDay,
		CheckinScheduleWindowCloseDay: body.CheckinScheduleWindowCloseDay,
		CheckinScheduleIsActive:       true,
	}

	if body.CheckinScheduleWindowOpenTime != nil {
		tod, err := dbtime.Parse(*body.CheckinScheduleWindowOpenTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format window_open_time harus HH:MM")
		}
		newSchedule.CheckinScheduleWindowOpenTime = &tod
	}
	if body.CheckinScheduleWindowCloseTime != nil {
		tod, err := dbtime.Parse(*body.CheckinScheduleWindowCloseTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format window_close_time harus HH:MM")
		}
		newSchedule.CheckinScheduleWindowCloseTime = &tod
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&newSchedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}

	seeded, err := service.MaterializeSchedule(ctrl.DB.WithContext(c.Context()), newSchedule, time.Now(), service.ScheduleHorizon)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate scheduled check-ins")
	}

	return helper.JsonCreated(c, "Schedule created successfully", fiber.Map{
		"schedule":        dto.ToCheckinScheduleDTO(newSchedule),
		"seeded_checkins": seeded,
	})
}

// 📄 GET /api/a/checkin-schedules?client_id=
func (ctrl *CheckinScheduleController) GetCheckinSchedules(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.CheckinScheduleModel{}).
		Where("checkin_schedule_coach_id = ?", coachID)

	if clientID := c.Query("client_id"); clientID != "" {
		id, err := uuid.Parse(clientID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "client_id tidak valid")
		}
		q = q.Where("checkin_schedule_client_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var schedules []model.CheckinScheduleModel
	if err := q.
		Order("checkin_schedule_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve schedules")
	}

	resp := make([]dto.CheckinScheduleDTO, len(schedules))
	for i, s := range schedules {
		resp[i] = dto.ToCheckinScheduleDTO(s)
	}

	return helper.JsonList(c, "Schedules fetched successfully", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 GET /api/a/checkin-schedules/:id
func (ctrl *CheckinScheduleController) GetCheckinScheduleByID(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Schedule ID is required")
	}

	var schedule model.CheckinScheduleModel
	if err := ctrl.DB.First(&schedule, "checkin_schedule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	if !schedule.IsOwnedBy(coachID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Schedule milik coach lain")
	}

	return helper.JsonOK(c, "Schedule fetched successfully", dto.ToCheckinScheduleDTO(schedule))
}

// ✏️ PATCH /api/a/checkin-schedules/:id
// Ubah recurrence → materialisasi ulang (tanggal yang sudah ada tidak diduplikasi).
func (ctrl *CheckinScheduleController) UpdateCheckinSchedule(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Schedule ID is required")
	}

	var body dto.UpdateCheckinScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var schedule model.CheckinScheduleModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&schedule, "checkin_schedule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	if !schedule.IsOwnedBy(coachID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Schedule milik coach lain")
	}

	// Partial update
	recurrenceChanged := false
	if body.CheckinScheduleFrequency != nil {
		schedule.CheckinScheduleFrequency = *body.CheckinScheduleFrequency
		recurrenceChanged = true
	}
	if body.CheckinScheduleSelectedDays != nil {
		daysJSON, err := sonic.Marshal(body.CheckinScheduleSelectedDays)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid selected days")
		}
		schedule.CheckinScheduleSelectedDays = datatypes.JSON(daysJSON)
		recurrenceChanged = true
	}
	if body.CheckinScheduleIntervalValue != nil {
		schedule.CheckinScheduleIntervalValue = body.CheckinScheduleIntervalValue
		recurrenceChanged = true
	}
	if body.CheckinScheduleIntervalUnit != nil {
		schedule.CheckinScheduleIntervalUnit = body.CheckinScheduleIntervalUnit
		recurrenceChanged = true
	}
	if body.CheckinScheduleStartAt != nil {
		schedule.CheckinScheduleStartAt = *body.CheckinScheduleStartAt
		recurrenceChanged = true
	}
	if body.CheckinScheduleIsActive != nil {
		schedule.CheckinScheduleIsActive = *body.CheckinScheduleIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}

	if recurrenceChanged && schedule.CheckinScheduleIsActive {
		if _, err := service.MaterializeSchedule(ctrl.DB.WithContext(c.Context()), schedule, time.Now(), service.ScheduleHorizon); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to regenerate scheduled check-ins")
		}
	}

	return helper.JsonUpdated(c, "Schedule updated successfully", dto.ToCheckinScheduleDTO(schedule))
}

// ❌ DELETE /api/a/checkin-schedules/:id
// Soft delete schedule + bersihkan seed pending yang belum lewat.
func (ctrl *CheckinScheduleController) DeleteCheckinSchedule(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Schedule ID is required")
	}

	var schedule model.CheckinScheduleModel
	if err := ctrl.DB.First(&schedule, "checkin_schedule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	if !schedule.IsOwnedBy(coachID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Schedule milik coach lain")
	}

	if err := ctrl.DB.Delete(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}

	if err := ctrl.DB.
		Where("checkin_schedule_id = ? AND checkin_status = ? AND checkin_date > ?",
			id, checkinModel.CheckinStatusPending, time.Now()).
		Delete(&checkinModel.CheckinModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clean up pending check-ins")
	}

	return helper.JsonDeleted(c, "Schedule deleted successfully", fiber.Map{"checkin_schedule_id": id})
}
