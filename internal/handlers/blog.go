package handlers

import (
	"net/http"
	"strconv"

	"fiscalblog/internal/logger"
	"fiscalblog/internal/models"
	"fiscalblog/internal/reqctx"
	"fiscalblog/internal/services"
	helpers "fiscalblog/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type BlogHandler struct {
	svc services.BlogService
}

func NewBlogHandler(svc services.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// selectPosts — выборка метаданных по query-параметрам category / tag / featured.
func (h *BlogHandler) selectPosts(r *http.Request) []models.PostMeta {
	q := r.URL.Query()
	switch {
	case q.Has("category"):
		return h.svc.ListByCategory(q.Get("category"))
	case q.Has("tag"):
		return h.svc.ListByTag(q.Get("tag"))
	case q.Get("featured") == "true":
		return h.svc.GetFeatured()
	default:
		return h.svc.GetAllPosts()
	}
}

// ListPosts
// @Summary      Метаданные всех статей
// @Description  Без текста, новые сверху. Фильтры взаимоисключающие: category, tag, featured.
// @Tags         blog
// @Produce      json
// @Param        category  query  string  false  "Категория"
// @Param        tag       query  string  false  "Тег"
// @Param        featured  query  bool    false  "Только избранные"
// @Success      200 {object} helpers.Response{data=[]models.PostMeta}
// @Router       /api/posts [get]
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	list := h.selectPosts(r)
	logger.WithCtx(r.Context()).Debug("blog: список метаданных", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// ListPostsWithContent
// @Summary      Статьи с текстом на языке
// @Description  Статьи без текста ни на одном языке исключаются из списка.
// @Tags         blog
// @Produce      json
// @Param        locale    path   string  true   "es | en | ca"
// @Param        category  query  string  false  "Категория"
// @Param        tag       query  string  false  "Тег"
// @Param        featured  query  bool    false  "Только избранные"
// @Success      200 {object} helpers.Response{data=[]models.FullPost}
// @Failure      400 {object} helpers.Response
// @Router       /api/{locale}/posts [get]
func (h *BlogHandler) ListPostsWithContent(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	loc, _ := reqctx.GetLocale(r.Context())

	list, err := h.svc.LoadContents(r.Context(), loc, h.selectPosts(r))
	if err != nil {
		log.Error("blog: ошибка загрузки списка", zap.Error(err))
		writeServiceError(w, err)
		return
	}

	log.Info("blog: список статей получен", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// GetPost
// @Summary      Статья по slug
// @Description  Slug любого языка; текст отдаётся на языке из пути (или на языке по умолчанию, fallbackUsed=true).
// @Tags         blog
// @Produce      json
// @Param        locale  path  string  true  "es | en | ca"
// @Param        slug    path  string  true  "Slug статьи"
// @Success      200 {object} helpers.Response{data=models.FullPost}
// @Failure      404 {object} helpers.Response
// @Router       /api/{locale}/posts/{slug} [get]
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	loc, _ := reqctx.GetLocale(r.Context())
	slug := mux.Vars(r)["slug"]

	post, err := h.svc.GetPostBySlug(r.Context(), slug, loc)
	if err != nil {
		log.Warn("blog: статья не отдана", zap.String("slug", slug), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	log.Info("blog: статья отдана",
		zap.String("post_id", post.ID),
		zap.Bool("fallback", post.FallbackUsed),
	)
	helpers.JSON(w, http.StatusOK, post)
}

// GetRelated
// @Summary      Похожие статьи
// @Tags         blog
// @Produce      json
// @Param        id     path   string  true   "ID статьи"
// @Param        limit  query  int     false  "Сколько вернуть (по умолч. 3, макс. 12)"
// @Success      200 {object} helpers.Response{data=[]models.PostMeta}
// @Failure      404 {object} helpers.Response
// @Router       /api/posts/{id}/related [get]
func (h *BlogHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	limit := clampAtoi(r.URL.Query().Get("limit"), 3, 1, 12)

	list, err := h.svc.GetRelated(id, limit)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("blog: похожие статьи не получены", zap.String("post_id", id), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Categories
// @Summary      Список категорий
// @Tags         blog
// @Produce      json
// @Success      200 {object} helpers.Response{data=[]string}
// @Router       /api/categories [get]
func (h *BlogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, h.svc.Categories())
}

// Tags
// @Summary      Список тегов
// @Tags         blog
// @Produce      json
// @Success      200 {object} helpers.Response{data=[]string}
// @Router       /api/tags [get]
func (h *BlogHandler) Tags(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, h.svc.Tags())
}

func clampAtoi(s string, def, min, max int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < min {
			return min
		}
		if n > max {
			return max
		}
		return n
	}
	return def
}
