package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melcantwell27/quizWhiz/internal/controller"
	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService service.StudentService
	attemptService service.AttemptService
}

func NewStudentController(studentService service.StudentService, attemptService service.AttemptService) *StudentController {
	return &StudentController{studentService: studentService, attemptService: attemptService}
}

// Register godoc
// @Summary Register a student
// @Description Emails are unique and compared case-insensitively.
// @Tags Students
// @Accept json
// @Produce json
// @Param student body dto.StudentRegisterDTO true "Name and email"
// @Success 201 {object} dto.StudentAuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or email already registered"
// @Router /students [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.StudentRegisterDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Register: Failed to bind JSON")
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	student, err := c.studentService.Register(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to register student")
		return
	}
	ctx.JSON(http.StatusCreated, dto.StudentAuthResponse{Message: "Student registered successfully", Student: *student})
}

// Login godoc
// @Summary Log a student in by email
// @Tags Students
// @Accept json
// @Produce json
// @Param credentials body dto.StudentLoginDTO true "Email"
// @Success 200 {object} dto.StudentAuthResponse
// @Failure 400 {object} dto.ErrorResponse "Email missing"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.StudentLoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BadRequest(ctx, "Invalid request body", err)
		return
	}
	student, err := c.studentService.Login(ctx.Request.Context(), req.Email)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to log in")
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentAuthResponse{Message: "Login successful", Student: *student})
}

// GetStudent godoc
// @Summary Get a student
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.StudentDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	studentID, ok := controller.ParamID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	student, err := c.studentService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve student")
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// ListAttempts godoc
// @Summary List a student's attempts
// @Description Newest first, across all quizzes.
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {array} dto.AttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/attempts [get]
func (c *StudentController) ListAttempts(ctx *gin.Context) {
	studentID, ok := controller.ParamID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	attempts, err := c.attemptService.ListByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve attempts")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
