package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-service/app/domain"
	mock_port "news-service/app/mocks"
	apperrors "news-service/app/utils/errors"
	"news-service/app/utils/logger"
)

type articleHandlerMocks struct {
	articles *mock_port.MockArticleUsecase
	ingest   *mock_port.MockIngestUsecase
	media    *mock_port.MockMediaResolver
}

func newArticleHandler(t *testing.T) (*ArticleHandler, articleHandlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := articleHandlerMocks{
		articles: mock_port.NewMockArticleUsecase(ctrl),
		ingest:   mock_port.NewMockIngestUsecase(ctrl),
		media:    mock_port.NewMockMediaResolver(ctrl),
	}

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewArticleHandler(mocks.articles, mocks.ingest, mocks.media, testLogger), mocks
}

func sampleArticle(t *testing.T) *domain.Article {
	t.Helper()

	article, err := domain.NewArticle(domain.ArticleDraft{
		Title:       "Chips get smaller",
		Description: "A fab update",
		Content:     "Long form body",
		Category:    "Technology",
		ImageURL:    "https://cdn.example.com/chips.jpg",
	})
	require.NoError(t, err)
	return article
}

func articleContext(t *testing.T, method, target, body string, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	return c, rec
}

func TestListArticles(t *testing.T) {
	handler, mocks := newArticleHandler(t)
	article := sampleArticle(t)

	expected := domain.NewListQuery("Technology", "chips", 2, 10, "views", "asc")
	mocks.articles.EXPECT().
		List(gomock.Any(), expected).
		Return(&domain.ArticlePage{
			Articles:   []*domain.Article{article},
			Pagination: domain.NewPagination(2, 10, 31),
		}, nil)

	c, rec := articleContext(t, http.MethodGet,
		"/v1/news?category=Technology&search=chips&page=2&limit=10&sortBy=views&order=asc", "", "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page domain.ArticlePage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Articles, 1)
	assert.Equal(t, article.Title, page.Articles[0].Title)
	assert.Equal(t, 4, page.Pagination.Pages)
}

func TestListArticles_DefaultsOnGarbageParams(t *testing.T) {
	handler, mocks := newArticleHandler(t)

	mocks.articles.EXPECT().
		List(gomock.Any(), domain.NewListQuery("", "", 0, 0, "", "")).
		Return(&domain.ArticlePage{Articles: []*domain.Article{}, Pagination: domain.NewPagination(1, 20, 0)}, nil)

	c, rec := articleContext(t, http.MethodGet,
		"/v1/news?page=abc&limit=-5&category=Bogus2&sortBy=password", "", "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetArticle(t *testing.T) {
	t.Run("returns the article", func(t *testing.T) {
		handler, mocks := newArticleHandler(t)
		article := sampleArticle(t)
		article.Views = 7

		mocks.articles.EXPECT().Get(gomock.Any(), article.ID).Return(article, nil)

		c, rec := articleContext(t, http.MethodGet, "/v1/news/"+article.ID.String(), "", article.ID.String())

		require.NoError(t, handler.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.Views)
	})

	t.Run("non-uuid id is a validation error", func(t *testing.T) {
		handler, _ := newArticleHandler(t)
		c, rec := articleContext(t, http.MethodGet, "/v1/news/not-a-uuid", "", "not-a-uuid")

		require.NoError(t, handler.Get(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		handler, mocks := newArticleHandler(t)
		id := uuid.New()

		mocks.articles.EXPECT().Get(gomock.Any(), id).Return(nil, apperrors.NewNotFound("article"))

		c, rec := articleContext(t, http.MethodGet, "/v1/news/"+id.String(), "", id.String())

		require.NoError(t, handler.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateArticle_JSON(t *testing.T) {
	handler, mocks := newArticleHandler(t)
	article := sampleArticle(t)

	mocks.media.EXPECT().
		Resolve(gomock.Any(), "https://cdn.example.com/chips.jpg", nil).
		Return("https://cdn.example.com/chips.jpg")
	mocks.articles.EXPECT().
		Create(gomock.Any(), domain.ArticleDraft{
			Title:       "Chips get smaller",
			Description: "A fab update",
			Content:     "Long form body",
			Category:    "Technology",
			ImageURL:    "https://cdn.example.com/chips.jpg",
		}).
		Return(article, nil)

	c, rec := articleContext(t, http.MethodPost, "/v1/news",
		`{"title":"Chips get smaller","description":"A fab update","content":"Long form body","category":"Technology","imageUrl":"https://cdn.example.com/chips.jpg"}`, "")

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateArticle_Multipart(t *testing.T) {
	handler, mocks := newArticleHandler(t)
	article := sampleArticle(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("title", "Chips get smaller"))
	require.NoError(t, writer.WriteField("description", "A fab update"))
	require.NoError(t, writer.WriteField("content", "Long form body"))
	require.NoError(t, writer.WriteField("category", "Technology"))
	part, err := writer.CreateFormFile("image", "chips.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/news", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	mocks.media.EXPECT().
		Resolve(gomock.Any(), "", gomock.Not(gomock.Nil())).
		Return("http://localhost:8080/uploads/image-1-abc.png")
	mocks.articles.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, draft domain.ArticleDraft) (*domain.Article, error) {
			assert.Equal(t, "Chips get smaller", draft.Title)
			assert.Equal(t, "http://localhost:8080/uploads/image-1-abc.png", draft.ImageURL)
			return article, nil
		})

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateArticle_DuplicateTitle(t *testing.T) {
	handler, mocks := newArticleHandler(t)

	mocks.media.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return("x")
	mocks.articles.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewConflict("an article with this title already exists"))

	c, rec := articleContext(t, http.MethodPost, "/v1/news",
		`{"title":"Chips get smaller","description":"d","content":"c","category":"Technology"}`, "")

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONFLICT")
}

func TestUpdateArticle_PartialJSON(t *testing.T) {
	handler, mocks := newArticleHandler(t)
	article := sampleArticle(t)

	mocks.articles.EXPECT().
		Update(gomock.Any(), article.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, update domain.ArticleUpdate) (*domain.Article, error) {
			require.NotNil(t, update.Title)
			assert.Equal(t, "New title", *update.Title)
			assert.Nil(t, update.Description)
			assert.Nil(t, update.Content)
			assert.Nil(t, update.Category)
			assert.Nil(t, update.ImageURL)
			return article, nil
		})

	c, rec := articleContext(t, http.MethodPut, "/v1/news/"+article.ID.String(),
		`{"title":"New title"}`, article.ID.String())

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateArticle_MultipartOnlySetFields(t *testing.T) {
	handler, mocks := newArticleHandler(t)
	article := sampleArticle(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("category", "Health"))
	require.NoError(t, writer.WriteField("imageUrl", "https://cdn.example.com/new.jpg"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/v1/news/"+article.ID.String(), &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(article.ID.String())

	mocks.media.EXPECT().
		Resolve(gomock.Any(), "https://cdn.example.com/new.jpg", nil).
		Return("https://cdn.example.com/new.jpg")
	mocks.articles.EXPECT().
		Update(gomock.Any(), article.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, update domain.ArticleUpdate) (*domain.Article, error) {
			assert.Nil(t, update.Title)
			require.NotNil(t, update.Category)
			assert.Equal(t, domain.CategoryHealth, *update.Category)
			require.NotNil(t, update.ImageURL)
			assert.Equal(t, "https://cdn.example.com/new.jpg", *update.ImageURL)
			return article, nil
		})

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteArticle(t *testing.T) {
	handler, mocks := newArticleHandler(t)
	id := uuid.New()

	mocks.articles.EXPECT().Delete(gomock.Any(), id).Return(nil)

	c, rec := articleContext(t, http.MethodDelete, "/v1/news/"+id.String(), "", id.String())

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestToggleLike(t *testing.T) {
	t.Run("toggles for the authenticated user", func(t *testing.T) {
		handler, mocks := newArticleHandler(t)
		articleID := uuid.New()
		userID := uuid.New()

		mocks.articles.EXPECT().
			ToggleLike(gomock.Any(), articleID, userID).
			Return(&domain.LikeResult{Likes: 3, Liked: true}, nil)

		c, rec := articleContext(t, http.MethodPatch, "/v1/news/"+articleID.String()+"/like", "", articleID.String())
		c.Set("claims", &domain.Claims{
			UserID:    userID,
			Username:  "reader",
			Role:      domain.RoleUser,
			IssuedAt:  time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		})

		require.NoError(t, handler.ToggleLike(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var result domain.LikeResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Liked)
		assert.Equal(t, 3, result.Likes)
	})

	t.Run("rejects when no claims are present", func(t *testing.T) {
		handler, _ := newArticleHandler(t)
		id := uuid.New()

		c, rec := articleContext(t, http.MethodPatch, "/v1/news/"+id.String()+"/like", "", id.String())

		require.NoError(t, handler.ToggleLike(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestIngest(t *testing.T) {
	t.Run("reports the run result", func(t *testing.T) {
		handler, mocks := newArticleHandler(t)

		mocks.ingest.EXPECT().Run(gomock.Any()).Return(&domain.IngestResult{
			TotalFetched:  30,
			TotalInserted: 12,
			ByCategory:    map[string]int{"Technology": 12},
			Failed:        []string{"Sports"},
		}, nil)

		c, rec := articleContext(t, http.MethodPost, "/v1/news/ingest", "", "")

		require.NoError(t, handler.Ingest(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var result domain.IngestResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 12, result.TotalInserted)
		assert.Equal(t, []string{"Sports"}, result.Failed)
	})

	t.Run("total provider failure maps to 502", func(t *testing.T) {
		handler, mocks := newArticleHandler(t)

		mocks.ingest.EXPECT().Run(gomock.Any()).
			Return(nil, apperrors.New(apperrors.ErrCodeUpstreamError, "news provider unavailable"))

		c, rec := articleContext(t, http.MethodPost, "/v1/news/ingest", "", "")

		require.NoError(t, handler.Ingest(c))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "UPSTREAM_ERROR")
	})
}

func TestFeaturedAndCategories(t *testing.T) {
	handler, mocks := newArticleHandler(t)
	article := sampleArticle(t)

	mocks.articles.EXPECT().Featured(gomock.Any()).Return([]*domain.Article{article}, nil)
	mocks.articles.EXPECT().Categories(gomock.Any()).Return([]string{"Health", "Technology"}, nil)

	c, rec := articleContext(t, http.MethodGet, "/v1/news/featured", "", "")
	require.NoError(t, handler.Featured(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), article.Title)

	c, rec = articleContext(t, http.MethodGet, "/v1/news/categories", "", "")
	require.NoError(t, handler.Categories(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Health")
}
