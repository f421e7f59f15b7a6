package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"trivia/internal/delivery/http/middleware"
	"trivia/internal/delivery/http/response"
	"trivia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuestionHandler holds dependencies for question-related handlers.
type QuestionHandler struct {
	uc     usecase.QuestionUsecase
	logger *slog.Logger
}

// NewQuestionHandler is the constructor for QuestionHandler, injected by Fx.
func NewQuestionHandler(uc usecase.QuestionUsecase, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the request to list all stored questions. The payload
// carries the bare question texts alongside the full records.
func (h *QuestionHandler) List(c echo.Context) error {
	questions, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	texts := make([]string, 0, len(questions))
	for _, question := range questions {
		texts = append(texts, question.Question)
	}

	return response.Success(c, http.StatusOK, echo.Map{
		"texts":     texts,
		"questions": questions,
	}, "Questions retrieved successfully")
}

// Get handles the request to fetch a single question by ID.
func (h *QuestionHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid question ID")
	}

	question, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, question, "Question retrieved successfully")
}

// Create handles the request to create a new question.
func (h *QuestionHandler) Create(c echo.Context) error {
	var input usecase.CreateQuestionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	question, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, question, "Question created successfully")
}

// Update handles the request to partially update an existing question.
func (h *QuestionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid question ID")
	}

	var input usecase.UpdateQuestionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	question, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, question, "Question updated successfully")
}

// Delete handles the request to remove a question. Deleting an ID that
// does not exist still succeeds.
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid question ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Question deleted successfully")
}

// Search handles the advanced search request, filtering by any
// combination of category, type and difficulty.
func (h *QuestionHandler) Search(c echo.Context) error {
	input := &usecase.SearchQuestionsInput{
		Category:   c.QueryParam("category"),
		Type:       c.QueryParam("type"),
		Difficulty: c.QueryParam("difficulty"),
	}

	questions, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, questions, "Questions retrieved successfully")
}

// Import handles the request to fetch questions from the external
// provider. Fetched questions are persisted only when the caller
// authenticated; anonymous callers just get the fetched batch back.
func (h *QuestionHandler) Import(c echo.Context) error {
	amount := 0
	if raw := c.QueryParam("amount"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid amount parameter")
		}
		amount = parsed
	}

	_, authenticated := c.Get(middleware.ContextKeyUserID).(uuid.UUID)

	output, err := h.uc.Import(c.Request().Context(), &usecase.ImportQuestionsInput{
		Amount:  amount,
		Persist: authenticated,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Questions fetched successfully"
	if output.Persisted {
		message = "Questions fetched and saved successfully"
	}

	return response.Success(c, http.StatusOK, output.Questions, message)
}
