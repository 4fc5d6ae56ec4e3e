package routes

import (
	"github.com/go-chi/chi/v5"

	"aeromart/internal/api"
	"aeromart/internal/middleware"
)

// RegisterAPIRoutes mounts every resource under /api. Reads are public;
// writes sit behind the admin token.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	r.Route("/api/aircrafts", func(r chi.Router) {
		r.Get("/lists", api.GetAircraftsListsHandler(deps))
		r.Get("/lists/admin", api.GetAircraftListsByAdminHandler(deps))
		r.Get("/lists/search", api.GetAircraftsBySearchHandler(deps))
		r.Get("/lists/filters", api.GetAircraftsByFiltersHandler(deps))
		r.Get("/lists/ranges", api.GetJetRangesHandler(deps))
		r.Get("/lists/latest", api.GetLatestAircraftsHandler(deps))
		r.Get("/lists/{id}", api.GetAircraftByIdHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateAircraftHandler(deps))
			r.Put("/update/{id}", api.UpdateAircraftHandler(deps))
			r.Delete("/delete/{id}", api.DeleteAircraftHandler(deps))
			r.Delete("/bulkDelete", api.BulkDeleteAircraftHandler(deps))
		})
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/lists", api.GetCategoriesHandler(deps))
		r.Get("/lists/{id}", api.GetCategoryByIdHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateCategoryHandler(deps))
			r.Put("/update/{id}", api.UpdateCategoryHandler(deps))
			r.Delete("/delete/{id}", api.DeleteCategoryHandler(deps))
		})
	})

	r.Route("/api/reviews", func(r chi.Router) {
		r.Get("/lists", api.GetReviewsHandler(deps))
		r.Get("/lists/{id}", api.GetReviewByIdHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateReviewHandler(deps))
			r.Put("/update/{id}", api.UpdateReviewHandler(deps))
			r.Delete("/delete/{id}", api.DeleteReviewHandler(deps))
			r.Delete("/bulkDelete", api.BulkDeleteReviewsHandler(deps))
		})
	})

	r.Route("/api/teams", func(r chi.Router) {
		r.Get("/lists", api.GetTeamsHandler(deps))
		r.Get("/lists/{id}", api.GetTeamByIdHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateTeamHandler(deps))
			r.Put("/update/{id}", api.UpdateTeamHandler(deps))
			r.Delete("/delete/{id}", api.DeleteTeamHandler(deps))
			r.Delete("/bulkDelete", api.BulkDeleteTeamsHandler(deps))
		})
	})

	r.Route("/api/blogs", func(r chi.Router) {
		r.Get("/lists", api.GetBlogsHandler(deps))
		r.Get("/lists/{id}", api.GetBlogByIdHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateBlogHandler(deps))
			r.Put("/update/{id}", api.UpdateBlogHandler(deps))
			r.Delete("/delete/{id}", api.DeleteBlogHandler(deps))
			r.Delete("/bulkDelete", api.BulkDeleteBlogsHandler(deps))
		})
	})

	r.Route("/api/blogCategories", func(r chi.Router) {
		r.Get("/lists", api.GetBlogCategoriesHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateBlogCategoryHandler(deps))
			r.Delete("/delete/{id}", api.DeleteBlogCategoryHandler(deps))
		})
	})

	r.Route("/api/authors", func(r chi.Router) {
		r.Get("/lists", api.GetAuthorsHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateAuthorHandler(deps))
			r.Delete("/delete/{id}", api.DeleteAuthorHandler(deps))
		})
	})

	r.Route("/api/brands", func(r chi.Router) {
		r.Get("/lists", api.GetBrandsHandler(deps))
		r.Get("/lists/{id}", api.GetBrandByIdHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateBrandHandler(deps))
			r.Put("/update/{id}", api.UpdateBrandHandler(deps))
			r.Delete("/delete/{id}", api.DeleteBrandHandler(deps))
			r.Delete("/bulkDelete", api.BulkDeleteBrandsHandler(deps))
		})
	})

	r.Route("/api/videos", func(r chi.Router) {
		r.Get("/lists", api.GetVideosHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateVideoHandler(deps))
			r.Delete("/delete/{id}", api.DeleteVideoHandler(deps))
			r.Delete("/bulkDelete", api.BulkDeleteVideosHandler(deps))
		})
	})

	r.Route("/api/contacts", func(r chi.Router) {
		r.Get("/lists", api.GetContactsHandler(deps))
		r.Get("/lists/{id}", api.GetContactByIdHandler(deps))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Post("/", api.CreateContactHandler(deps))
			r.Put("/update/{id}", api.UpdateContactHandler(deps))
			r.Delete("/delete/{id}", api.DeleteContactHandler(deps))
		})
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", api.RegisterHandler(deps))
		r.Post("/login", api.LoginHandler(deps))
	})

	r.With(middleware.AuthMiddleware).Get("/api/analysis/lists", api.GetAnalysisHandler(deps))

	r.Get("/api/media/{id}", api.ServeMediaHandler(deps))
}
