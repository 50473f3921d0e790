package controller

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/checkins/checkins/dto"
	"fitcoach_backend/internals/features/checkins/checkins/model"
	questionModel "fitcoach_backend/internals/features/checkins/questionnaire/model"
	scoring "fitcoach_backend/internals/features/checkins/questionnaire/service"
	scheduleModel "fitcoach_backend/internals/features/checkins/schedule/model"
	scheduleService "fitcoach_backend/internals/features/checkins/schedule/service"
	userModel "fitcoach_backend/internals/features/users/users/model"
	helper "fitcoach_backend/internals/helpers"
)

var validate = validator.New()

type CheckinController struct {
	DB *gorm.DB
}

func NewCheckinController(db *gorm.DB) *CheckinController {
	return &CheckinController{DB: db}
}

// ➕ POST /api/u/checkins
// Check-in spontan (di luar jadwal): langsung di-skor dan tersimpan completed.
func (ctrl *CheckinController) CreateCheckin(c *fiber.Ctx) error {
	clientID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SubmitCheckinRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	now := time.Now()
	newCheckin := model.CheckinModel{
		CheckinClientID:    clientID,
		CheckinDate:        now,
		CheckinCheckedInAt: &now,
		CheckinStatus:      model.CheckinStatusCompleted,
		CheckinNotes:       body.CheckinNotes,
	}

	// coach diambil dari profil client (kalau ada)
	var client userModel.UserModel
	if err := ctrl.DB.First(&client, "user_id = ?", clientID).Error; err == nil {
		newCheckin.CheckinCoachID = client.UserCoachID
	}

	if err := ctrl.fillAnswersAndScores(c, &newCheckin, body); err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&newCheckin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create check-in")
	}

	return helper.JsonCreated(c, "Check-in submitted successfully", dto.ToCheckinDTO(newCheckin))
}

// ✏️ PATCH /api/u/checkins/:id/submit
// Isi seed pending dari schedule. Menghormati response window schedule.
func (ctrl *CheckinController) SubmitScheduledCheckin(c *fiber.Ctx) error {
	clientID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Check-in ID is required")
	}

	var body dto.SubmitCheckinRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var checkin model.CheckinModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&checkin, "checkin_id = ? AND checkin_client_id = ?", id, clientID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Check-in not found")
	}
	if checkin.CheckinStatus != model.CheckinStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Check-in sudah pernah disubmit")
	}

	// response window dari schedule pemilik seed
	if checkin.CheckinScheduleID != nil {
		var sched scheduleModel.CheckinScheduleModel
		if err := ctrl.DB.
			First(&sched, "checkin_schedule_id = ?", *checkin.CheckinScheduleID).Error; err == nil {
			if !scheduleService.IsWindowOpenAt(sched, time.Now()) {
				return helper.JsonError(c, fiber.StatusForbidden, "Check-in window sedang tutup")
			}
		}
	}

	now := time.Now()
	checkin.CheckinCheckedInAt = &now
	checkin.CheckinStatus = model.CheckinStatusCompleted
	checkin.CheckinNotes = body.CheckinNotes

	if err := ctrl.fillAnswersAndScores(c, &checkin, body); err != nil {
		return err
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&checkin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit check-in")
	}

	return helper.JsonUpdated(c, "Check-in submitted successfully", dto.ToCheckinDTO(checkin))
}

// ensureClientOfCoach: pastikan client memang ter-assign ke coach ini
func (ctrl *CheckinController) ensureClientOfCoach(c *fiber.Ctx, clientID string, coachID uuid.UUID) error {
	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_coach_id = ?", clientID, coachID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify client")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "Client is not assigned to you")
	}
	return nil
}

// fillAnswersAndScores: load pertanyaan aktif → skor → isi payload jsonb.
func (ctrl *CheckinController) fillAnswersAndScores(c *fiber.Ctx, checkin *model.CheckinModel, body dto.SubmitCheckinRequest) error {
	var questions []questionModel.CheckinQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("checkin_question_is_active = ?", true).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	score := scoring.ScoreQuestionnaire(scoring.AnswerSet(body.CheckinAnswers), questions)

	answersJSON, err := sonic.Marshal(body.CheckinAnswers)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid answers")
	}
	scoresJSON, err := sonic.Marshal(score)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode scores")
	}

	checkin.CheckinAnswers = datatypes.JSON(answersJSON)
	checkin.CheckinScores = datatypes.JSON(scoresJSON)

	if body.CheckinMeasurements != nil {
		measurementsJSON, err := sonic.Marshal(body.CheckinMeasurements)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid measurements")
		}
		checkin.CheckinMeasurements = datatypes.JSON(measurementsJSON)
	}
	return nil
}

// 📄 GET /api/u/checkins?status= (riwayat check-in milik sendiri)
func (ctrl *CheckinController) GetMyCheckins(c *fiber.Ctx) error {
	clientID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.CheckinModel{}).
		Where("checkin_client_id = ?", clientID)

	if status := c.Query("status"); status != "" {
		q = q.Where("checkin_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count check-ins")
	}

	var checkins []model.CheckinModel
	if err := q.
		Order("checkin_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&checkins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve check-ins")
	}

	resp := make([]dto.CheckinDTO, len(checkins))
	for i, ci := range checkins {
		resp[i] = dto.ToCheckinDTO(ci)
	}

	return helper.JsonList(c, "Check-ins fetched successfully", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🔍 GET /api/u/checkins/:id
func (ctrl *CheckinController) GetCheckinByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Check-in ID is required")
	}

	var checkin model.CheckinModel
	if err := ctrl.DB.First(&checkin, "checkin_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Check-in not found")
	}

	// hanya pemilik atau coach-nya yang boleh lihat
	isOwner := checkin.CheckinClientID == userID
	isCoach := checkin.CheckinCoachID != nil && *checkin.CheckinCoachID == userID
	if !isOwner && !isCoach {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh mengakses check-in milik orang lain")
	}

	return helper.JsonOK(c, "Check-in fetched successfully", dto.ToCheckinDTO(checkin))
}

// 📷 POST /api/u/checkins/:id/photos (multipart: photo, angle=front|back|side)
func (ctrl *CheckinController) UploadCheckinPhoto(c *fiber.Ctx) error {
	clientID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Check-in ID is required")
	}

	angle := c.FormValue("angle")
	if angle != model.PhotoAngleFront && angle != model.PhotoAngleBack && angle != model.PhotoAngleSide {
		return helper.JsonError(c, fiber.StatusBadRequest, "angle harus front, back, atau side")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File photo tidak ditemukan")
	}

	var checkin model.CheckinModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&checkin, "checkin_id = ? AND checkin_client_id = ?", id, clientID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Check-in not found")
	}

	photoURL, err := helper.UploadProgressPhoto(clientID, angle, fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// merge ke payload photos yang sudah ada
	photos := map[string]string{}
	if len(checkin.CheckinPhotos) > 0 {
		_ = sonic.Unmarshal(checkin.CheckinPhotos, &photos)
	}
	if old, ok := photos[angle]; ok && old != "" {
		// foto lama diganti: hapus dari storage, gagal pun tidak fatal
		_ = helper.DeleteFromStorage(old)
	}
	photos[angle] = photoURL

	photosJSON, err := sonic.Marshal(photos)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode photos")
	}
	checkin.CheckinPhotos = datatypes.JSON(photosJSON)

	if err := ctrl.DB.WithContext(c.Context()).Save(&checkin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save photo")
	}

	return helper.JsonUpdated(c, "Photo uploaded successfully", fiber.Map{
		"checkin_id": checkin.CheckinID,
		"angle":      angle,
		"url":        photoURL,
	})
}

// 📄 GET /api/a/clients/:client_id/checkins (riwayat check-in client, untuk coach)
func (ctrl *CheckinController) GetClientCheckins(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	clientID := c.Params("client_id")
	if clientID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Client ID is required")
	}

	if err := ctrl.ensureClientOfCoach(c, clientID, coachID); err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&model.CheckinModel{}).
		Where("checkin_client_id = ?", clientID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count check-ins")
	}

	var checkins []model.CheckinModel
	if err := q.
		Order("checkin_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&checkins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve check-ins")
	}

	resp := make([]dto.CheckinDTO, len(checkins))
	for i, ci := range checkins {
		resp[i] = dto.ToCheckinDTO(ci)
	}

	return helper.JsonList(c, "Check-ins fetched successfully", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✏️ PATCH /api/a/checkins/:id/feedback (feedback + status review dari coach)
func (ctrl *CheckinController) GiveCheckinFeedback(c *fiber.Ctx) error {
	coachID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Check-in ID is required")
	}

	var body dto.CoachFeedbackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var checkin model.CheckinModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&checkin, "checkin_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Check-in not found")
	}
	// coach yang ter-assign di record, atau coach pemilik client-nya
	if !checkin.IsCoachedBy(coachID) {
		if err := ctrl.ensureClientOfCoach(c, checkin.CheckinClientID.String(), coachID); err != nil {
			return err
		}
	}
	if checkin.CheckinStatus == model.CheckinStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Check-in belum disubmit client")
	}

	now := time.Now()
	checkin.CheckinCoachID = &coachID
	checkin.CheckinCoachFeedback = &body.CheckinCoachFeedback
	checkin.CheckinCoachFeedbackAt = &now
	if body.CheckinStatus != "" {
		checkin.CheckinStatus = body.CheckinStatus
	} else {
		checkin.CheckinStatus = model.CheckinStatusReviewed
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&checkin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save feedback")
	}

	return helper.JsonUpdated(c, "Feedback saved successfully", dto.ToCheckinDTO(checkin))
}
