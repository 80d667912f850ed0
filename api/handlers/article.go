// ABOUTME: Article handlers for the Huma API
// ABOUTME: Serves extracted article text and the per-strategy diagnostics report

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"rotter-news-api/api/dto/mappers"
	"rotter-news-api/api/dto/requests"
	"rotter-news-api/api/dto/responses"
	"rotter-news-api/core/article"
	"rotter-news-api/core/interfaces"
	"rotter-news-api/pkg/featureflags"
)

// ArticleHandler handles article extraction requests
type ArticleHandler struct {
	articleService interfaces.ArticleService
	flags          featureflags.Manager
}

// NewArticleHandler creates a new article handler. A nil flag manager leaves
// every optional endpoint disabled.
func NewArticleHandler(articleService interfaces.ArticleService, flags featureflags.Manager) *ArticleHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	return &ArticleHandler{
		articleService: articleService,
		flags:          flags,
	}
}

// RegisterRoutes registers all article-related routes
func (h *ArticleHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getArticle",
		Method:      http.MethodGet,
		Path:        "/getArticle",
		Summary:     "Extract article text",
		Description: "Fetches the article behind a feed link and returns its plain text. " +
			"An empty body means no strategy found readable text.",
		Tags: []string{"Articles"},
	}, h.GetArticle)

	huma.Register(api, huma.Operation{
		OperationID: "getArticleDiagnostics",
		Method:      http.MethodGet,
		Path:        "/getArticle/diagnostics",
		Summary:     "Report every fetch strategy",
		Description: "Runs each configured strategy independently and reports status, sizes and a preview",
		Tags:        []string{"Articles"},
	}, h.GetDiagnostics)
}

// GetArticleOutput defines the output for the GetArticle operation
type GetArticleOutput struct {
	Body responses.ArticleResponse
}

// GetArticle handles GET /getArticle
func (h *ArticleHandler) GetArticle(ctx context.Context, input *requests.ArticleRequest) (*GetArticleOutput, error) {
	if err := article.ValidateURL(input.URL); err != nil {
		return nil, toHumaError(err)
	}

	result := h.articleService.Extract(ctx, input.URL)
	return &GetArticleOutput{
		Body: responses.ArticleResponse{Body: result.Body},
	}, nil
}

// GetDiagnosticsOutput defines the output for the GetDiagnostics operation
type GetDiagnosticsOutput struct {
	Body responses.DiagnosticsResponse
}

// GetDiagnostics handles GET /getArticle/diagnostics
func (h *ArticleHandler) GetDiagnostics(ctx context.Context, input *requests.ArticleRequest) (*GetDiagnosticsOutput, error) {
	if !h.flags.IsEnabled(ctx, featureflags.ArticleDiagnostics) {
		return nil, huma.Error404NotFound("diagnostics are disabled")
	}
	if err := article.ValidateURL(input.URL); err != nil {
		return nil, toHumaError(err)
	}

	report := h.articleService.Diagnose(ctx, input.URL)
	return &GetDiagnosticsOutput{
		Body: mappers.ToDiagnosticsResponse(report),
	}, nil
}
