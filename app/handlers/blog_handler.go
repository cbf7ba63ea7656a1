package handlers

import (
	"net/http"

	"github.com/JBlizzard-sketch/Autoscraper/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// BlogHandler serves the read-only editorial content.
type BlogHandler struct {
	blog   repositories.BlogStore
	render *render.Render
	logger *zap.Logger
}

func NewBlogHandler(blog repositories.BlogStore, rnd *render.Render, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{blog: blog, render: rnd, logger: logger}
}

func (h *BlogHandler) Posts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.GetBlogPosts(r.Context())
	if err != nil {
		h.logger.Error("get blog posts failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch blog posts")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) Post(w http.ResponseWriter, r *http.Request) {
	post, err := h.blog.GetBlogPostBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		respondEngineError(h.render, h.logger, w, err, "Blog post not found", "Failed to fetch blog post")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.blog.GetBlogCategories(r.Context())
	if err != nil {
		h.logger.Error("get blog categories failed", zap.Error(err))
		respondError(h.render, w, http.StatusInternalServerError, "Failed to fetch blog categories")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}
