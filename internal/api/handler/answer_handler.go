package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"code_tutor/internal/app/service"
	"code_tutor/internal/common"
	"code_tutor/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type AnswerHandler struct {
	answerService *service.AnswerService
}

func NewAnswerHandler(as *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: as}
}

func (h *AnswerHandler) RegisterRoutes(r chi.Router) {
	r.Post("/save-answer", h.saveAnswer)
	r.Get("/get-answer/{problemNumber}", h.getAnswer)
}

func (h *AnswerHandler) saveAnswer(w http.ResponseWriter, r *http.Request) {
	var answer model.Answer
	if err := json.NewDecoder(r.Body).Decode(&answer); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	saved, err := h.answerService.SaveAnswer(r.Context(), &answer)
	if err != nil {
		status := common.HTTPStatusFromError(err)
		if status == http.StatusInternalServerError {
			logrus.WithError(err).Error("Failed to save answer")
		}
		common.RespondWithError(w, status, common.PublicMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, saved)
}

func (h *AnswerHandler) getAnswer(w http.ResponseWriter, r *http.Request) {
	problemNumber := chi.URLParam(r, "problemNumber")
	// chi routes on RawPath when it is set, which leaves %2F and friends escaped.
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(problemNumber)
		if err != nil {
			common.RespondWithError(w, http.StatusBadRequest, "Invalid problem number")
			return
		}
		problemNumber = unescaped
	}

	answer, err := h.answerService.GetAnswerByProblemNumber(r.Context(), problemNumber)
	if err != nil {
		logrus.WithError(err).WithField("problem_number", problemNumber).Error("Failed to load answer")
		common.RespondWithError(w, common.HTTPStatusFromError(err), common.PublicMessage(err))
		return
	}
	if answer == nil {
		common.RespondWithError(w, http.StatusNotFound, "No answer for problem "+problemNumber)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, answer)
}
