package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/melcantwell27/quizWhiz/internal/dto"
	"github.com/melcantwell27/quizWhiz/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error kind to the HTTP status returned for it.
func StatusFor(kind service.ErrorKind) int {
	switch kind {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindInvalidState, service.KindInvalidInput, service.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse. Errors the service layer did
// not classify are logged and hidden behind fallback.
func RespondError(ctx *gin.Context, err error, fallback string) {
	kind := service.KindOf(err)
	status := StatusFor(kind)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Str("request_id", ctx.GetString("request_id")).Msg(fallback)
		ctx.JSON(status, dto.ErrorResponse{Error: fallback})
		return
	}
	log.Warn().Err(err).Str("path", ctx.FullPath()).Str("kind", string(kind)).Msg("Request rejected")
	ctx.JSON(status, dto.ErrorResponse{Error: err.Error(), Kind: string(kind)})
}

// BadRequest is used for malformed path params and bodies.
func BadRequest(ctx *gin.Context, msg string, err error) {
	resp := dto.ErrorResponse{Error: msg, Kind: string(service.KindInvalidInput)}
	if err != nil {
		resp.Details = []string{err.Error()}
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

// ParamID parses a positive integer path parameter, writing a 400 on failure.
func ParamID(ctx *gin.Context, name, label string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || val == 0 {
		BadRequest(ctx, "Invalid "+label+" ID format", nil)
		return 0, false
	}
	return uint(val), true
}
