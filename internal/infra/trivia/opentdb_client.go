// Package trivia implements the external trivia question provider against the
// Open Trivia DB public API.
package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"trivia/config"
	"trivia/internal/domain/entity"
	"trivia/internal/domain/service"

	"github.com/pkg/errors"
)

// Open Trivia DB response codes, see https://opentdb.com/api_config.php.
const (
	responseCodeSuccess      = 0
	responseCodeNoResults    = 1
	responseCodeInvalidParam = 2
	responseCodeRateLimited  = 5
	maxResponseBodyBytes     = 1 << 20
	defaultFetchAmount       = 10
)

// openTDBClient implements TriviaProvider by querying the Open Trivia DB API.
type openTDBClient struct {
	baseURL    string
	maxAmount  int
	httpClient *http.Client
	logger     *slog.Logger
}

// apiResponse is the wire format of an Open Trivia DB reply.
type apiResponse struct {
	ResponseCode int         `json:"response_code"`
	Results      []apiResult `json:"results"`
}

type apiResult struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// NewOpenTDBClient creates a TriviaProvider backed by the Open Trivia DB API.
func NewOpenTDBClient(cfg *config.Config, logger *slog.Logger) service.TriviaProvider {
	return &openTDBClient{
		baseURL:   cfg.OpenTrivia.BaseURL,
		maxAmount: cfg.OpenTrivia.MaxAmount,
		httpClient: &http.Client{
			Timeout: cfg.OpenTrivia.Timeout,
		},
		logger: logger,
	}
}

// Fetch retrieves up to amount questions from the remote API.
// A non-positive amount falls back to a small default; the configured cap
// bounds how much a single call may request.
func (c *openTDBClient) Fetch(ctx context.Context, amount int) ([]*entity.Question, error) {
	if amount <= 0 {
		amount = defaultFetchAmount
	}
	if amount > c.maxAmount {
		amount = c.maxAmount
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid trivia provider base URL")
	}
	query := reqURL.Query()
	query.Set("amount", strconv.Itoa(amount))
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	c.logger.Debug("Fetching external trivia questions",
		slog.String("url", reqURL.String()),
		slog.Int("amount", amount),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "trivia provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("trivia provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read trivia provider response")
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode trivia provider response")
	}

	if payload.ResponseCode != responseCodeSuccess {
		return nil, errors.Errorf("trivia provider rejected the request: %s", describeResponseCode(payload.ResponseCode))
	}

	questions := make([]*entity.Question, 0, len(payload.Results))
	for _, result := range payload.Results {
		questions = append(questions, &entity.Question{
			Category:         result.Category,
			Type:             result.Type,
			Difficulty:       result.Difficulty,
			Question:         result.Question,
			CorrectAnswer:    result.CorrectAnswer,
			IncorrectAnswers: result.IncorrectAnswers,
		})
	}

	return questions, nil
}

func describeResponseCode(code int) string {
	switch code {
	case responseCodeNoResults:
		return "not enough questions for the requested query"
	case responseCodeInvalidParam:
		return "invalid request parameter"
	case responseCodeRateLimited:
		return "rate limited"
	default:
		return fmt.Sprintf("response code %d", code)
	}
}
