package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melcantwell27/quizWhiz/internal/controller"
	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/model"
	"github.com/melcantwell27/quizWhiz/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService) *AdminQuizController {
	return &AdminQuizController{adminQuizService: adminQuizService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a quiz with its questions
// @Description MCQs without points are worth 5. FTQs must state their points.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz with MCQs and FTQs"
// @Success 201 {object} dto.QuizWithAnswersDTO "Quiz created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	quiz, err := c.adminQuizService.CreateQuiz(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create quiz")
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// AddMCQ godoc
// @Summary (Admin) Add a multiple choice question to a quiz
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param question body dto.MCQCreateDTO true "Question with choices"
// @Success 201 {object} dto.MCQWithAnswersDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{quiz_id}/mcqs [post]
func (c *AdminQuizController) AddMCQ(ctx *gin.Context) {
	quizID, ok := controller.ParamID(ctx, "quiz_id", "Quiz")
	if !ok {
		return
	}
	var req dto.MCQCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	mcq, err := c.adminQuizService.AddMCQ(ctx.Request.Context(), quizID, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to add question")
		return
	}
	ctx.JSON(http.StatusCreated, mcq)
}

// AddFTQ godoc
// @Summary (Admin) Add a free text question to a quiz
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param question body dto.FTQCreateDTO true "Question and points"
// @Success 201 {object} dto.FTQDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{quiz_id}/ftqs [post]
func (c *AdminQuizController) AddFTQ(ctx *gin.Context) {
	quizID, ok := controller.ParamID(ctx, "quiz_id", "Quiz")
	if !ok {
		return
	}
	var req dto.FTQCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	ftq, err := c.adminQuizService.AddFTQ(ctx.Request.Context(), quizID, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to add question")
		return
	}
	ctx.JSON(http.StatusCreated, ftq)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz
// @Description Removes the quiz, its questions and every attempt on it.
// @Tags Admin - Quizzes
// @Param quiz_id path int true "Quiz ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParamID(ctx, "quiz_id", "Quiz")
	if !ok {
		return
	}
	if err := c.adminQuizService.DeleteQuiz(ctx.Request.Context(), quizID); err != nil {
		controller.RespondError(ctx, err, "Failed to delete quiz")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Description The ref has the form mcq:<id> or ftq:<id>. Existing answers to it are kept and score zero.
// @Tags Admin - Quizzes
// @Param ref path string true "Question reference, e.g. mcq:12"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid question reference"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{ref} [delete]
func (c *AdminQuizController) DeleteQuestion(ctx *gin.Context) {
	ref, err := model.ParseQuestionRef(ctx.Param("ref"))
	if err != nil {
		controller.BadRequest(ctx, "Invalid question reference", err)
		return
	}
	if err := c.adminQuizService.DeleteQuestion(ctx.Request.Context(), ref); err != nil {
		controller.RespondError(ctx, err, "Failed to delete question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteAttempt godoc
// @Summary (Admin) Delete an attempt and its answers
// @Tags Admin - Attempts
// @Param attempt_id path int true "Attempt ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /admin/attempts/{attempt_id} [delete]
func (c *AdminQuizController) DeleteAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParamID(ctx, "attempt_id", "Attempt")
	if !ok {
		return
	}
	if err := c.adminQuizService.DeleteAttempt(ctx.Request.Context(), attemptID); err != nil {
		controller.RespondError(ctx, err, "Failed to delete attempt")
		return
	}
	ctx.Status(http.StatusNoContent)
}
