package handlers

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/api/middleware"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/validator"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/models"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/utils"
)

// TextAcquirer resolves a job-description input into plain text
type TextAcquirer interface {
	Resolve(ctx context.Context, input string) *models.ParseResult
}

// SimilarityComputer produces the combined similarity result
type SimilarityComputer interface {
	ComputeSimilarity(ctx context.Context, resumeText string, jd *models.ParseResult, language string) (*models.SimilarityResult, error)
}

// PDFExtractor converts an uploaded PDF into plain text
type PDFExtractor interface {
	ExtractText(src io.ReaderAt, size int64) (string, error)
}

// ResumeChecker gates resume text before any LLM spend
type ResumeChecker interface {
	Validate(text, language string) validator.Result
}

// analyzeForm is the multipart form contract of POST /analyze/resume
type analyzeForm struct {
	JobDescription string `validate:"required,min=1"`
	Language       string `validate:"omitempty,max=32"`
}

var formValidator = playgroundvalidator.New()

// AnalyzeResumeHandler scores an uploaded resume against a job description
func AnalyzeResumeHandler(acquirer TextAcquirer, pdf PDFExtractor, checker ResumeChecker, engine SimilarityComputer) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.GetRequestID(c)
		logger := logging.LogWithRequestID(requestID)
		ctx := c.Request().Context()

		fileHeader, err := c.FormFile("resume")
		if err != nil {
			return utils.NewBadRequestError("Resume file is required")
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if mediaType, _, parseErr := mime.ParseMediaType(contentType); parseErr != nil || mediaType != "application/pdf" {
			return utils.NewBadRequestError("Only PDF files are supported")
		}

		form := analyzeForm{
			JobDescription: c.FormValue("job_description"),
			Language:       strings.TrimSpace(c.FormValue("language")),
		}
		if err := formValidator.Struct(form); err != nil {
			return utils.NewBadRequestError("Job description is required")
		}
		language := utils.GetStringOrDefault(form.Language, "en")

		file, err := fileHeader.Open()
		if err != nil {
			return utils.NewBadRequestError("Failed to read resume file")
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			return utils.NewBadRequestError("Failed to read resume file")
		}

		resumeText, err := pdf.ExtractText(bytes.NewReader(raw), int64(len(raw)))
		if err != nil {
			logger.Info("PDF text extraction failed", map[string]interface{}{
				"error": err.Error(),
			})
			return utils.NewNotResumeError(notValidMessage(language))
		}

		validation := checker.Validate(resumeText, language)
		if !validation.Accepted {
			return utils.NewNotResumeError(validation.Reason)
		}

		jd := acquirer.Resolve(ctx, form.JobDescription)
		if !jd.Success || strings.TrimSpace(jd.Content) == "" {
			return utils.NewJobDescriptionError(jd.Error)
		}

		result, err := engine.ComputeSimilarity(ctx, resumeText, jd, language)
		if err != nil {
			return err
		}

		logger.Info("Resume analysis completed", map[string]interface{}{
			"score":              result.Score,
			"total_missing":      result.TotalMissing,
			"is_position_closed": result.IsPositionClosed,
			"method":             jd.Method,
		})

		return c.JSON(http.StatusOK, models.AnalyzeResponse{
			Error: false,
			Data: models.AnalyzeData{
				Score:           utils.Round2(result.Score * 100),
				MissingKeywords: result.MissingKeywords,
				TotalMissing:    result.TotalMissing,
				Message:         buildMessage(result, language),
			},
		})
	}
}

// buildMessage combines the contextual feedback with a closed-position
// notice when the posting is no longer open
func buildMessage(result *models.SimilarityResult, language string) string {
	if !result.IsPositionClosed {
		return result.Feedback
	}

	notice := "Note: this position appears to be no longer accepting applications."
	if utils.IsPortuguese(language) {
		notice = "Atenção: esta vaga parece não estar mais aceitando candidaturas."
	}

	if result.Feedback == "" {
		return notice
	}
	return notice + " " + result.Feedback
}

func notValidMessage(language string) string {
	if utils.IsPortuguese(language) {
		return "O PDF não é um currículo válido"
	}
	return "The PDF is not a valid resume"
}
