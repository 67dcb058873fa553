package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melcantwell27/quizWhiz/internal/controller"
	"github.com/melcantwell27/quizWhiz/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Description Get every quiz ordered by name.
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.ListQuizzes(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve quizzes")
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary Get a quiz with its questions
// @Description Choices are returned without their correctness.
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParamID(ctx, "quiz_id", "Quiz")
	if !ok {
		return
	}
	quiz, err := c.quizService.GetQuiz(ctx.Request.Context(), quizID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve quiz")
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// GetQuizWithAnswers godoc
// @Summary Get a quiz including correct answers
// @Description Same as GetQuiz but every choice carries is_correct. Used by the results view.
// @Tags Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizWithAnswersDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id}/with_answers [get]
func (c *QuizController) GetQuizWithAnswers(ctx *gin.Context) {
	quizID, ok := controller.ParamID(ctx, "quiz_id", "Quiz")
	if !ok {
		return
	}
	log.Debug().Uint("quizID", quizID).Msg("Quiz with answers requested")
	quiz, err := c.quizService.GetQuizWithAnswers(ctx.Request.Context(), quizID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve quiz")
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}
