package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"evaluapp/models"
	"evaluapp/services"
)

// creationChecklist is shown next to a server-side creation failure.
var creationChecklist = []string{
	"Is the exam API reachable?",
	"Is the end date after the start date?",
	"Do all selected questions still exist?",
}

// ExamHandler serves the exam authoring form.
type ExamHandler struct {
	authoring *services.AuthoringService
}

func NewExamHandler(authoring *services.AuthoringService) *ExamHandler {
	return &ExamHandler{authoring: authoring}
}

type createExamForm struct {
	Title       string `form:"titulo"`
	Description string `form:"descripcion"`
	StartDate   string `form:"fechaInicio"`
	EndDate     string `form:"fechaFin"`
	QuestionIDs []int  `form:"preguntas"`
}

// NewExamForm renders the authoring form. A failed question fetch degrades
// to an empty list plus a message; the form still renders.
func (h *ExamHandler) NewExamForm(c *gin.Context) {
	h.renderForm(c, createExamForm{}, nil, nil)
}

// CreateExam validates and submits the form. Success clears the form by
// navigating back to the landing page; any failure re-renders the form with
// the message, the recorded faults and the user's input intact.
func (h *ExamHandler) CreateExam(c *gin.Context) {
	var form createExamForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, form, &services.ValidationError{Message: "invalid form input: " + err.Error()}, nil)
		return
	}

	start, err := time.Parse("2006-01-02", form.StartDate)
	if err != nil {
		h.renderForm(c, form, &services.ValidationError{Message: "start date is not a valid date"}, nil)
		return
	}
	end, err := time.Parse("2006-01-02", form.EndDate)
	if err != nil {
		h.renderForm(c, form, &services.ValidationError{Message: "end date is not a valid date"}, nil)
		return
	}

	_, faults, err := h.authoring.CreateExam(services.CreateExamRequest{
		Title:       form.Title,
		Description: form.Description,
		StartDate:   start,
		EndDate:     end,
		QuestionIDs: form.QuestionIDs,
	})
	if err != nil {
		h.renderForm(c, form, err, faults)
		return
	}

	c.Redirect(http.StatusSeeOther, "/?creado=1")
}

func (h *ExamHandler) renderForm(c *gin.Context, form createExamForm, createErr error, faults []models.Fault) {
	questions, loadFaults, loadErr := h.authoring.Questions()
	data := gin.H{
		"Questions": questions,
		"Form":      form,
		"Faults":    faults,
		"LoadWarn":  loadFaults,
	}
	if loadErr != nil {
		data["LoadError"] = loadErr.Error()
	}
	if createErr != nil {
		data["Error"] = createErr.Error()
		var verr *services.ValidationError
		if !errors.As(createErr, &verr) {
			// server-side failure: show the likely causes as well
			data["Checklist"] = creationChecklist
		}
	}
	c.HTML(http.StatusOK, "create.html", data)
}
