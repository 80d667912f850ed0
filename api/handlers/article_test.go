package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rotter-news-api/core/domain"
	"rotter-news-api/pkg/featureflags"
)

const articleURL = "https://rotter.net/forum/scoops1/922421.shtml"

func articleAPI(t *testing.T, svc *mockArticleService, flags featureflags.Manager) humatest.TestAPI {
	api := newTestAPI(t)
	NewArticleHandler(svc, flags).RegisterRoutes(api)
	return api
}

func TestArticleHandler_RegisterRoutes(t *testing.T) {
	api := articleAPI(t, &mockArticleService{}, nil)

	openapi := api.OpenAPI()
	require.NotNil(t, openapi.Paths)
	if assert.NotNil(t, openapi.Paths["/getArticle"]) {
		assert.NotNil(t, openapi.Paths["/getArticle"].Get)
	}
	assert.NotNil(t, openapi.Paths["/getArticle/diagnostics"])
}

func TestArticleHandler_GetArticle_Success(t *testing.T) {
	body := "ראש הממשלה הודיע הערב על צעדים חדשים"
	svc := &mockArticleService{
		extractFunc: func(ctx context.Context, rawURL string) domain.ExtractionResult {
			assert.Equal(t, articleURL, rawURL)
			return domain.ExtractionResult{Body: body, StrategyUsed: "reader"}
		},
	}
	api := articleAPI(t, svc, nil)

	resp := api.Get("/getArticle?url=" + url.QueryEscape(articleURL))

	require.Equal(t, http.StatusOK, resp.Code)
	decoded := decodeBody(t, resp)
	assert.Equal(t, body, decoded["body"])
	assert.Len(t, decoded, 1, "strategy details must not leak into the response")
}

func TestArticleHandler_GetArticle_AllStrategiesFailed(t *testing.T) {
	api := articleAPI(t, &mockArticleService{}, nil)

	resp := api.Get("/getArticle?url=" + url.QueryEscape(articleURL))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, map[string]interface{}{"body": ""}, decodeBody(t, resp))
}

func TestArticleHandler_GetArticle_InvalidURL(t *testing.T) {
	tests := map[string]string{
		"missing":     "/getArticle",
		"empty":       "/getArticle?url=",
		"no scheme":   "/getArticle?url=" + url.QueryEscape("rotter.net/forum/1.shtml"),
		"ftp":         "/getArticle?url=" + url.QueryEscape("ftp://rotter.net/1"),
		"no host":     "/getArticle?url=" + url.QueryEscape("https:///path"),
		"unparseable": "/getArticle?url=" + url.QueryEscape("http://[::1"),
	}

	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			svc := &mockArticleService{}
			api := articleAPI(t, svc, nil)

			resp := api.Get(path)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			decoded := decodeBody(t, resp)
			assert.NotEmpty(t, decoded["error"])
			assert.Zero(t, svc.calls, "service must not run for invalid input")
		})
	}
}

func TestArticleHandler_Diagnostics_Disabled(t *testing.T) {
	svc := &mockArticleService{}
	api := articleAPI(t, svc, featureflags.NewStaticManager(nil))

	resp := api.Get("/getArticle/diagnostics?url=" + url.QueryEscape(articleURL))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Zero(t, svc.calls)
}

func TestArticleHandler_Diagnostics_Enabled(t *testing.T) {
	svc := &mockArticleService{
		diagnoseFunc: func(ctx context.Context, rawURL string) domain.Diagnostics {
			return domain.Diagnostics{
				CanonicalURL: rawURL,
				Strategies: []domain.StrategyReport{
					{Name: "direct", Error: "timeout"},
					{Name: "reader", Status: 200, RawLength: 4000, BodyLength: 210, Qualified: true},
				},
			}
		},
	}
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.ArticleDiagnostics: true,
	})
	api := articleAPI(t, svc, flags)

	resp := api.Get("/getArticle/diagnostics?url=" + url.QueryEscape(articleURL))

	require.Equal(t, http.StatusOK, resp.Code)
	decoded := decodeBody(t, resp)
	assert.Equal(t, articleURL, decoded["canonicalUrl"])
	strategies, ok := decoded["strategies"].([]interface{})
	require.True(t, ok)
	require.Len(t, strategies, 2)
	assert.Equal(t, "timeout", strategies[0].(map[string]interface{})["error"])
	assert.Equal(t, true, strategies[1].(map[string]interface{})["qualified"])
}

func TestArticleHandler_Diagnostics_InvalidURL(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.ArticleDiagnostics: true,
	})
	api := articleAPI(t, &mockArticleService{}, flags)

	resp := api.Get("/getArticle/diagnostics")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NotEmpty(t, decodeBody(t, resp)["error"])
}
