package controller

import (
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fitcoach_backend/internals/features/checkins/questionnaire/dto"
	"fitcoach_backend/internals/features/checkins/questionnaire/model"
	helper "fitcoach_backend/internals/helpers"
)

var validate = validator.New()

type CheckinQuestionController struct {
	DB *gorm.DB
}

func NewCheckinQuestionController(db *gorm.DB) *CheckinQuestionController {
	return &CheckinQuestionController{DB: db}
}

// ➕ POST /api/a/checkin-questions
func (ctrl *CheckinQuestionController) CreateCheckinQuestion(c *fiber.Ctx) error {
	var body dto.CreateCheckinQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	weight := body.CheckinQuestionWeight
	if weight <= 0 {
		weight = 1.0
	}

	optionsJSON, err := sonic.Marshal(body.CheckinQuestionOptions)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question options")
	}

	newQuestion := model.CheckinQuestionModel{
		CheckinQuestionText:     body.CheckinQuestionText,
		CheckinQuestionCategory: model.NormalizeCategory(body.CheckinQuestionCategory),
		CheckinQuestionWeight:   weight,
		CheckinQuestionOptions:  datatypes.JSON(optionsJSON),
		CheckinQuestionIsActive: true,
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&newQuestion).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	return helper.JsonCreated(c, "Question created successfully", dto.ToCheckinQuestionDTO(newQuestion))
}

// 📄 GET /api/a/checkin-questions (support pagination ?page=&per_page=)
func (ctrl *CheckinQuestionController) GetAllCheckinQuestions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.CheckinQuestionModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var questions []model.CheckinQuestionModel
	if err := ctrl.DB.
		Order("checkin_question_id ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	resp := make([]dto.CheckinQuestionDTO, len(questions))
	for i, q := range questions {
		resp[i] = dto.ToCheckinQuestionDTO(q)
	}

	return helper.JsonList(c, "Questions fetched successfully", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 📄 GET /api/u/checkin-questions/active (daftar pertanyaan untuk form check-in)
func (ctrl *CheckinQuestionController) GetActiveCheckinQuestions(c *fiber.Ctx) error {
	var questions []model.CheckinQuestionModel
	if err := ctrl.DB.
		Where("checkin_question_is_active = ?", true).
		Order("checkin_question_id ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	resp := make([]dto.CheckinQuestionDTO, len(questions))
	for i, q := range questions {
		resp[i] = dto.ToCheckinQuestionDTO(q)
	}

	return helper.JsonOK(c, "Active questions fetched successfully", resp)
}

// ✏️ PATCH /api/a/checkin-questions/:id
func (ctrl *CheckinQuestionController) UpdateCheckinQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question ID is required")
	}

	var body dto.UpdateCheckinQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var question model.CheckinQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&question, "checkin_question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	// Partial update
	if body.CheckinQuestionText != nil {
		question.CheckinQuestionText = *body.CheckinQuestionText
	}
	if body.CheckinQuestionCategory != nil {
		question.CheckinQuestionCategory = model.NormalizeCategory(*body.CheckinQuestionCategory)
	}
	if body.CheckinQuestionWeight != nil {
		question.CheckinQuestionWeight = *body.CheckinQuestionWeight
	}
	if len(body.CheckinQuestionOptions) > 0 {
		optionsJSON, err := sonic.Marshal(body.CheckinQuestionOptions)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question options")
		}
		question.CheckinQuestionOptions = datatypes.JSON(optionsJSON)
	}
	if body.CheckinQuestionIsActive != nil {
		question.CheckinQuestionIsActive = *body.CheckinQuestionIsActive
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	return helper.JsonUpdated(c, "Question updated successfully", dto.ToCheckinQuestionDTO(question))
}

// ❌ DELETE /api/a/checkin-questions/:id (soft delete, skor lama tidak dihitung ulang)
func (ctrl *CheckinQuestionController) DeleteCheckinQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question ID is required")
	}

	if err := ctrl.DB.Delete(&model.CheckinQuestionModel{}, "checkin_question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}

	return helper.JsonDeleted(c, "Question deleted successfully", fiber.Map{"checkin_question_id": id})
}
