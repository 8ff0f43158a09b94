package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/ranking"
	"github.com/vfg2006/rank-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
	"github.com/vfg2006/rank-tracker-api/pkg/middleware"
	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

// CheckKeyword verifica a posição de uma palavra-chave e grava a observação
func CheckKeyword(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.RankCheckRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !scopeClient(w, r, &req.ClientID) {
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"domain":  req.Domain,
			"keyword": req.Keyword,
		}).Info("rankings: verificando palavra-chave")

		observation, err := service.CheckKeyword(r.Context(), req)
		if err != nil {
			writeRankError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, observation)
	})
}

// RunBatch verifica um lote de palavras-chave do mesmo domínio
func RunBatch(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.BatchRankRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if !scopeClient(w, r, &req.ClientID) {
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"domain":     req.Domain,
			"batch_size": len(req.Keywords),
		}).Info("rankings: iniciando lote")

		response, err := service.RunBatch(r.Context(), req)
		if err != nil {
			writeRankError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// GetHistory lista as observações de um domínio ou cliente no intervalo de datas
func GetHistory(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato yyyy-mm-dd", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato yyyy-mm-dd", nil)
			return
		}
		if endDate != nil {
			// end_date inclui o dia inteiro
			endOfDay := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
			endDate = &endOfDay
		}

		filters := domain.RankFilters{
			Domain:    query.Get("domain"),
			Keyword:   query.Get("keyword"),
			ClientID:  query.Get("client_id"),
			StartDate: startDate,
			EndDate:   endDate,
		}
		if !scopeClientID(w, r, &filters.ClientID) {
			return
		}

		observations, err := service.GetHistory(r.Context(), filters)
		if err != nil {
			writeRankError(w, r, err)
			return
		}

		if observations == nil {
			observations = []domain.RankObservation{}
		}
		writeJSON(w, r, http.StatusOK, observations)
	})
}

// GetMonthlyReport retorna o relatório mensal de rankings
func GetMonthlyReport(service ranking.RankingService) http.Handler {
	return reportHandler(service.GetMonthlyReport)
}

// GetWeeklyReport retorna o relatório semanal (janelas de 7 dias) de rankings
func GetWeeklyReport(service ranking.RankingService) http.Handler {
	return reportHandler(service.GetWeeklyReport)
}

type reportBuilder func(ctx context.Context, filters domain.ReportFilters) (*domain.RankReport, error)

func reportHandler(build reportBuilder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.ReportFilters{
			Domain:   query.Get("domain"),
			ClientID: query.Get("client_id"),
		}
		if value := query.Get("periods"); value != "" {
			periods, err := strconv.Atoi(value)
			if err != nil || periods < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "periods deve ser um inteiro positivo", nil)
				return
			}
			filters.Periods = periods
		}
		if !scopeClientID(w, r, &filters.ClientID) {
			return
		}

		report, err := build(r.Context(), filters)
		if err != nil {
			writeRankError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

// scopeClient força o client_id do token quando o chamador é um cliente
func scopeClient(w http.ResponseWriter, r *http.Request, clientID **string) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || !claims.IsClient() {
		return true
	}
	if claims.ClientID == nil {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Token de cliente sem client_id", nil)
		return false
	}
	if *clientID != nil && **clientID != *claims.ClientID {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este cliente", nil)
		return false
	}
	*clientID = claims.ClientID
	return true
}

func scopeClientID(w http.ResponseWriter, r *http.Request, clientID *string) bool {
	var ptr *string
	if *clientID != "" {
		ptr = clientID
	}
	if !scopeClient(w, r, &ptr) {
		return false
	}
	if ptr != nil {
		*clientID = *ptr
	}
	return true
}
