// ABOUTME: Request DTOs for article extraction endpoints
// ABOUTME: The url is validated by the article package, not by struct tags

package requests

// ArticleRequest holds the query parameters of GET /getArticle
type ArticleRequest struct {
	URL string `query:"url" doc:"Article link taken from the feed" example:"https://rotter.net/forum/scoops1/922421.shtml"`
}
