package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melcantwell27/quizWhiz/internal/controller"
	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

// StartAttempt godoc
// @Summary Start or resume a quiz attempt
// @Description Returns the student's in-progress attempt for the quiz if there is one (200), otherwise creates it (201).
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt body dto.AttemptStartDTO true "Quiz and student IDs"
// @Success 200 {object} dto.AttemptDTO "Existing attempt resumed"
// @Success 201 {object} dto.AttemptDTO "Attempt created"
// @Failure 400 {object} dto.ErrorResponse "Invalid body"
// @Failure 404 {object} dto.ErrorResponse "Quiz or student not found, or quiz has no questions"
// @Router /attempts [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	var req dto.AttemptStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartAttempt: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	attempt, created, err := c.attemptService.Start(ctx.Request.Context(), req.StudentID, req.QuizID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to start attempt")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, attempt)
}

// GetAttempt godoc
// @Summary Get an attempt
// @Tags Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParamID(ctx, "attempt_id", "Attempt")
	if !ok {
		return
	}
	attempt, err := c.attemptService.Get(ctx.Request.Context(), attemptID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve attempt")
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// CurrentQuestion godoc
// @Summary Get the question the attempt is on
// @Description MCQ choices are returned without their correctness.
// @Tags Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.CurrentQuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Quiz already completed"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found or quiz has no questions"
// @Router /attempts/{attempt_id}/current_question [get]
func (c *AttemptController) CurrentQuestion(ctx *gin.Context) {
	attemptID, ok := controller.ParamID(ctx, "attempt_id", "Attempt")
	if !ok {
		return
	}
	question, err := c.attemptService.CurrentQuestion(ctx.Request.Context(), attemptID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve current question")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description MCQs take choice_id. FTQs take answer (or free_text_response); any non-blank text is correct.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param answer body dto.AnswerSubmitDTO true "Answer to the current question"
// @Success 200 {object} dto.AnswerSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Quiz already completed, missing or invalid choice"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id}/answer [post]
func (c *AttemptController) SubmitAnswer(ctx *gin.Context) {
	attemptID, ok := controller.ParamID(ctx, "attempt_id", "Attempt")
	if !ok {
		return
	}
	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("SubmitAnswer: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	resp, err := c.attemptService.SubmitAnswer(ctx.Request.Context(), attemptID, service.Submission{
		ChoiceID: req.ChoiceID,
		Text:     req.Text(),
	})
	if err != nil {
		controller.RespondError(ctx, err, "Failed to submit answer")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Results godoc
// @Summary Get the graded results of a completed attempt
// @Tags Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptResultsDTO
// @Failure 400 {object} dto.ErrorResponse "Quiz not yet completed"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id}/results [get]
func (c *AttemptController) Results(ctx *gin.Context) {
	attemptID, ok := controller.ParamID(ctx, "attempt_id", "Attempt")
	if !ok {
		return
	}
	results, err := c.attemptService.Results(ctx.Request.Context(), attemptID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve results")
		return
	}
	ctx.JSON(http.StatusOK, results)
}
