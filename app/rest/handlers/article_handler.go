package handlers

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"news-service/app/domain"
	"news-service/app/port"
	custommw "news-service/app/rest/middleware"
	apperrors "news-service/app/utils/errors"
)

// ArticleHandler handles article HTTP requests
type ArticleHandler struct {
	articles port.ArticleUsecase
	ingest   port.IngestUsecase
	media    port.MediaResolver
	logger   *slog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articles port.ArticleUsecase, ingest port.IngestUsecase, media port.MediaResolver, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articles: articles,
		ingest:   ingest,
		media:    media,
		logger:   logger,
	}
}

type articleRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Content     string `json:"content" form:"content"`
	Category    string `json:"category" form:"category"`
	ImageURL    string `json:"imageUrl" form:"imageUrl"`
}

// List returns one page of articles.
func (h *ArticleHandler) List(c echo.Context) error {
	query := domain.NewListQuery(
		c.QueryParam("category"),
		c.QueryParam("search"),
		intParam(c, "page"),
		intParam(c, "limit"),
		c.QueryParam("sortBy"),
		c.QueryParam("order"),
	)

	page, err := h.articles.List(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Featured returns the newest articles for the landing view.
func (h *ArticleHandler) Featured(c echo.Context) error {
	articles, err := h.articles.Featured(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, articles)
}

// Categories returns the categories that currently have articles.
func (h *ArticleHandler) Categories(c echo.Context) error {
	categories, err := h.articles.Categories(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Get returns a single article; the read counts as a view.
func (h *ArticleHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	article, err := h.articles.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// Create stores a new article. Accepts JSON or multipart form data; an
// uploaded image wins only when no explicit imageUrl is given.
func (h *ArticleHandler) Create(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.NewValidation("invalid request body"))
	}

	imageURL := h.media.Resolve(c.Request().Context(), req.ImageURL, formFile(c, "image"))

	article, err := h.articles.Create(c.Request().Context(), domain.ArticleDraft{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    imageURL,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, article)
}

// Update applies a partial update. Only the fields present in the request
// change; a new image (URL or upload) replaces the old one.
func (h *ArticleHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	update, err := h.bindUpdate(c)
	if err != nil {
		return respondError(c, err)
	}

	article, err := h.articles.Update(c.Request().Context(), id, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// Delete removes an article.
func (h *ArticleHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.articles.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "article deleted"})
}

// ToggleLike flips the caller's like on the article. The like and unlike
// routes both land here; the stored state decides the direction.
func (h *ArticleHandler) ToggleLike(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}

	claims := custommw.GetClaims(c)
	if claims == nil {
		return respondError(c, apperrors.ErrUnauthorized)
	}

	result, err := h.articles.ToggleLike(c.Request().Context(), id, claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Ingest runs a full headline ingestion pass.
func (h *ArticleHandler) Ingest(c echo.Context) error {
	result, err := h.ingest.Run(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// bindUpdate builds a partial update from either JSON (absent keys stay
// nil) or a multipart form (blank fields stay nil).
func (h *ArticleHandler) bindUpdate(c echo.Context) (domain.ArticleUpdate, error) {
	update := domain.ArticleUpdate{}
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		setIfPresent := func(name string, dst **string) {
			if value := c.FormValue(name); value != "" {
				v := value
				*dst = &v
			}
		}
		setIfPresent("title", &update.Title)
		setIfPresent("description", &update.Description)
		setIfPresent("content", &update.Content)
		if value := c.FormValue("category"); value != "" {
			category := domain.Category(value)
			update.Category = &category
		}

		explicitURL := c.FormValue("imageUrl")
		file := formFile(c, "image")
		if explicitURL != "" || file != nil {
			url := h.media.Resolve(c.Request().Context(), explicitURL, file)
			update.ImageURL = &url
		}
		return update, nil
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Content     *string `json:"content"`
		Category    *string `json:"category"`
		ImageURL    *string `json:"imageUrl"`
	}
	if err := c.Bind(&req); err != nil {
		return update, apperrors.NewValidation("invalid request body")
	}

	update.Title = req.Title
	update.Description = req.Description
	update.Content = req.Content
	update.ImageURL = req.ImageURL
	if req.Category != nil {
		category := domain.Category(*req.Category)
		update.Category = &category
	}
	return update, nil
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NewValidation("invalid article id")
	}
	return id, nil
}

func intParam(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

func formFile(c echo.Context, name string) *multipart.FileHeader {
	file, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}
