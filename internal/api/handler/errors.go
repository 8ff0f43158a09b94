package handler

import (
	"net/http"

	"github.com/vfg2006/rank-tracker-api/internal/usecases/ranking"
	"github.com/vfg2006/rank-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
)

// writeRankError converte qualquer erro do serviço de ranking na resposta padronizada
func writeRankError(w http.ResponseWriter, r *http.Request, err error) {
	rankErr := ranking.ClassifyError(err)

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"error_code": rankErr.Code,
		"error":      rankErr.Error(),
	})
	if apiErrors.StatusFor(rankErr.Code) >= http.StatusInternalServerError {
		logger.Error("rankings: falha ao processar requisição")
	} else {
		logger.Warn("rankings: requisição recusada")
	}

	var details any
	if rankErr.Keyword != "" {
		details = map[string]string{"keyword": rankErr.Keyword}
	}

	apiErrors.Write(w, apiErrors.APIError{
		Code:       rankErr.Code,
		Message:    rankErr.Error(),
		Suggestion: rankErr.Suggestion(),
		Details:    details,
	})
}
