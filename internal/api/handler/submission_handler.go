package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"code_tutor/internal/app/service"
	"code_tutor/internal/common"
	"code_tutor/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(ss *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: ss}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.submitCode)
	r.Get("/{userId}", h.listUserSubmissions) // ?include=answer joins the stored answer
}

func (h *SubmissionHandler) submitCode(w http.ResponseWriter, r *http.Request) {
	var submission model.CodeSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	saved, err := h.submissionService.SaveSubmission(r.Context(), &submission)
	if err != nil {
		// Persistence failures answer with a bare 500.
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":        submission.UserID,
			"problem_number": submission.ProblemNumber,
		}).Error("Failed to save code submission")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, saved)
}

func (h *SubmissionHandler) listUserSubmissions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var submissions []model.CodeSubmission
	if r.URL.Query().Get("include") == "answer" {
		submissions, err = h.submissionService.GetSubmissionsWithAnswers(r.Context(), userID)
	} else {
		submissions, err = h.submissionService.GetSubmissionsByUserID(r.Context(), userID)
	}
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to list code submissions")
		common.RespondWithError(w, common.HTTPStatusFromError(err), common.PublicMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, submissions)
}
