package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aeromart/internal/common"
	"aeromart/internal/constants"
	"aeromart/internal/models/dtos"
	"aeromart/internal/models/entities"
	"aeromart/internal/services"
)

// GetBlogsHandler handles GET /api/blogs/lists. Posts come back with
// author and category joined.
func GetBlogsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := deps.Repo.Blog.FindAll(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch blogs")
			return
		}
		message := "Blogs found"
		if len(blogs) == 0 {
			message = "No blogs found"
		}
		common.RespondSuccess(w, message, blogs)
	}
}

// GetBlogByIdHandler handles GET /api/blogs/lists/{id}.
func GetBlogByIdHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blog, err := deps.Repo.Blog.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Blog not found")
			return
		}
		common.RespondSuccess(w, "Blog found", blog)
	}
}

// CreateBlogHandler handles POST /api/blogs. Multipart body with an
// optional coverImage file; the body is sanitized rich text.
func CreateBlogHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		title := r.FormValue("title")
		category := r.FormValue("category")
		author := r.FormValue("author")
		description := r.FormValue("description")
		if title == "" || category == "" || author == "" || description == "" {
			common.RespondError(w, nil, constants.MsgMissingFields, http.StatusBadRequest)
			return
		}

		categoryID, err := primitive.ObjectIDFromHex(category)
		if err != nil {
			common.RespondError(w, nil, "Invalid category id", http.StatusBadRequest)
			return
		}
		authorID, err := primitive.ObjectIDFromHex(author)
		if err != nil {
			common.RespondError(w, nil, "Invalid author id", http.StatusBadRequest)
			return
		}

		cover, err := uploadSingleFile(r, "coverImage", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}

		blog := &entities.Blog{
			Title:      title,
			CategoryID: categoryID,
			AuthorID:   authorID,
			Body:       common.SanitizeRichText(description),
			CoverImage: cover,
		}
		if err := deps.Repo.Blog.Insert(r.Context(), blog); err != nil {
			respondServiceError(w, err, "Failed to create blog")
			return
		}
		common.RespondSuccess(w, "Blog created", blog, http.StatusCreated)
	}
}

// UpdateBlogHandler handles PUT /api/blogs/update/{id}. The cover image
// is only replaced when a new file was uploaded.
func UpdateBlogHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		set := bson.M{}
		if values, ok := r.MultipartForm.Value["title"]; ok && len(values) > 0 {
			set["title"] = values[0]
		}
		if values, ok := r.MultipartForm.Value["description"]; ok && len(values) > 0 {
			set["description"] = common.SanitizeRichText(values[0])
		}
		if values, ok := r.MultipartForm.Value["category"]; ok && len(values) > 0 {
			categoryID, err := primitive.ObjectIDFromHex(values[0])
			if err != nil {
				common.RespondError(w, nil, "Invalid category id", http.StatusBadRequest)
				return
			}
			set["category"] = categoryID
		}
		if values, ok := r.MultipartForm.Value["author"]; ok && len(values) > 0 {
			authorID, err := primitive.ObjectIDFromHex(values[0])
			if err != nil {
				common.RespondError(w, nil, "Invalid author id", http.StatusBadRequest)
				return
			}
			set["author"] = authorID
		}

		cover, err := uploadSingleFile(r, "coverImage", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}
		if cover != "" {
			set["coverImage"] = cover
		}

		blog, err := deps.Repo.Blog.Update(r.Context(), chi.URLParam(r, "id"), set)
		if err != nil {
			respondServiceError(w, err, "Blog not found")
			return
		}
		common.RespondSuccess(w, "Blog updated", blog)
	}
}

// DeleteBlogHandler handles DELETE /api/blogs/delete/{id}.
func DeleteBlogHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blog, err := deps.Repo.Blog.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Blog not found")
			return
		}
		common.RespondSuccess(w, "Blog deleted", blog)
	}
}

// BulkDeleteBlogsHandler handles DELETE /api/blogs/bulkDelete.
func BulkDeleteBlogsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.BulkDeleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		deleted, err := deps.Repo.Blog.BulkDelete(r.Context(), req.IDs)
		if err != nil {
			respondServiceError(w, err, "Bulk delete failed")
			return
		}
		common.RespondSuccess(w, "Blogs deleted", map[string]int64{"deletedCount": deleted})
	}
}

/* ---------- blog taxonomy ---------- */

type blogCategoryRequest struct {
	Name string `json:"name"`
}

// GetBlogCategoriesHandler handles GET /api/blogCategories/lists.
func GetBlogCategoriesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := deps.Repo.BlogCategory.FindAll(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch blog categories")
			return
		}
		common.RespondSuccess(w, "Blog categories found", cats)
	}
}

// CreateBlogCategoryHandler handles POST /api/blogCategories.
func CreateBlogCategoryHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req blogCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			common.RespondError(w, err, constants.MsgMissingFields, http.StatusBadRequest)
			return
		}

		cat := &entities.BlogCategory{Name: req.Name, Slug: services.Slugify(req.Name)}
		if err := deps.Repo.BlogCategory.Insert(r.Context(), cat); err != nil {
			respondServiceError(w, err, "Failed to create blog category")
			return
		}
		common.RespondSuccess(w, "Blog category created", cat, http.StatusCreated)
	}
}

// DeleteBlogCategoryHandler handles DELETE /api/blogCategories/delete/{id}.
func DeleteBlogCategoryHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := deps.Repo.BlogCategory.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Blog category not found")
			return
		}
		common.RespondSuccess(w, "Blog category deleted", cat)
	}
}

// GetAuthorsHandler handles GET /api/authors/lists.
func GetAuthorsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authors, err := deps.Repo.Author.FindAll(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to fetch authors")
			return
		}
		common.RespondSuccess(w, "Authors found", authors)
	}
}

// CreateAuthorHandler handles POST /api/authors. Multipart body with an
// optional avatar file.
func CreateAuthorHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			common.RespondError(w, err, constants.MsgInvalidPayload, http.StatusBadRequest)
			return
		}

		name := r.FormValue("name")
		if name == "" {
			common.RespondError(w, nil, constants.MsgMissingFields, http.StatusBadRequest)
			return
		}

		avatar, err := uploadSingleFile(r, "avatar", deps.Services.Media)
		if err != nil {
			respondServiceError(w, err, "Image upload failed")
			return
		}

		author := &entities.Author{Name: name, Avatar: avatar}
		if err := deps.Repo.Author.Insert(r.Context(), author); err != nil {
			respondServiceError(w, err, "Failed to create author")
			return
		}
		common.RespondSuccess(w, "Author created", author, http.StatusCreated)
	}
}

// DeleteAuthorHandler handles DELETE /api/authors/delete/{id}.
func DeleteAuthorHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author, err := deps.Repo.Author.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, err, "Author not found")
			return
		}
		common.RespondSuccess(w, "Author deleted", author)
	}
}
