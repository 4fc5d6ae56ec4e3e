package api

import (
	"net/http"
	"strconv"
	"strings"

	"aeromart/internal/apperrors"
	"aeromart/internal/common"
	"aeromart/internal/logging"
	"aeromart/internal/models/dtos"
	"aeromart/internal/services"
)

const (
	multipartMemoryLimit = 64 << 20
	maxGalleryFiles      = 20
)

// respondServiceError maps the service error taxonomy onto HTTP codes:
// validation 400, not found 404, anything else 500.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err):
		common.RespondError(w, err, fallback, http.StatusBadRequest)
	case apperrors.IsNotFound(err):
		common.RespondError(w, err, fallback, http.StatusNotFound)
	default:
		logging.Error("request failed", "error", err.Error())
		common.RespondError(w, err, fallback, http.StatusInternalServerError)
	}
}

func queryFloat(r *http.Request, name string) *float64 {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func splitSlugs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	slugs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			slugs = append(slugs, p)
		}
	}
	return slugs
}

func parseListParams(r *http.Request, adminView bool) dtos.ListParams {
	q := r.URL.Query()
	return dtos.ListParams{
		Status:      q.Get("status"),
		Categories:  splitSlugs(q.Get("categories")),
		MinPrice:    queryFloat(r, "minPrice"),
		MaxPrice:    queryFloat(r, "maxPrice"),
		MinAirframe: queryFloat(r, "minAirframe"),
		MaxAirframe: queryFloat(r, "maxAirframe"),
		MinEngine:   queryFloat(r, "minEngine"),
		MaxEngine:   queryFloat(r, "maxEngine"),
		Page:        queryInt(r, "page", 1),
		PageSize:    queryInt(r, "pageSize", 0),
		AdminView:   adminView,
	}
}

func parseFilterParams(r *http.Request) dtos.FilterParams {
	q := r.URL.Query()
	return dtos.FilterParams{
		Category:  strings.TrimSpace(q.Get("category")),
		Status:    q.Get("status"),
		Airframe:  queryFloat(r, "airframe"),
		Engine:    queryFloat(r, "engine"),
		Propeller: queryFloat(r, "propeller"),
		MinPrice:  queryFloat(r, "minPrice"),
		MaxPrice:  queryFloat(r, "maxPrice"),
		Search:    q.Get("search"),
		Page:      queryInt(r, "page", 1),
		PageSize:  queryInt(r, "pageSize", 0),
	}
}

var aircraftFormFields = []string{
	"title", "year", "price", "status", "category", "location",
	"latitude", "longitude", "overview", "description", "contactAgent",
	"airframe", "engine", "engineTwo", "propeller", "propellerTwo",
	"videoUrl", "index", "keepImages",
}

// parseAircraftForm reads the multipart fields into the raw form DTO,
// recording which fields were supplied at all.
func parseAircraftForm(r *http.Request) (dtos.AircraftForm, error) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		return dtos.AircraftForm{}, apperrors.NewValidation("Invalid multipart form")
	}

	form := dtos.AircraftForm{Present: map[string]bool{}}
	get := func(name string) string {
		if values, ok := r.MultipartForm.Value[name]; ok && len(values) > 0 {
			form.Present[name] = true
			return values[0]
		}
		return ""
	}

	for _, field := range aircraftFormFields {
		value := get(field)
		switch field {
		case "title":
			form.Title = value
		case "year":
			form.Year = value
		case "price":
			form.Price = value
		case "status":
			form.Status = value
		case "category":
			form.Category = value
		case "location":
			form.Location = value
		case "latitude":
			form.Latitude = value
		case "longitude":
			form.Longitude = value
		case "overview":
			form.Overview = value
		case "description":
			form.Description = value
		case "contactAgent":
			form.ContactAgent = value
		case "airframe":
			form.Airframe = value
		case "engine":
			form.Engine = value
		case "engineTwo":
			form.EngineTwo = value
		case "propeller":
			form.Propeller = value
		case "propellerTwo":
			form.PropellerTwo = value
		case "videoUrl":
			form.VideoURL = value
		case "index":
			form.Index = value
		case "keepImages":
			form.KeepImages = value
		}
	}
	return form, nil
}

// uploadSingleFile stores one named multipart file if present and
// returns its URL, or "" when the field was not sent.
func uploadSingleFile(r *http.Request, field string, media *services.MediaService) (string, error) {
	if r.MultipartForm == nil {
		return "", nil
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return "", nil
	}

	header := headers[0]
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	return media.Upload(r.Context(), file, header.Filename, header.Header.Get("Content-Type"), header.Size)
}

// uploadGallery stores the uploaded image files and returns their URLs.
// The gallery field is capped; the featured image is a single file.
func uploadGallery(r *http.Request, media *services.MediaService) (images []string, featured string, err error) {
	if r.MultipartForm == nil {
		return nil, "", nil
	}

	files := r.MultipartForm.File["images"]
	if len(files) > maxGalleryFiles {
		return nil, "", apperrors.NewValidation("Too many gallery images (max 20)")
	}
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, "", err
		}
		url, err := media.Upload(r.Context(), file, header.Filename, header.Header.Get("Content-Type"), header.Size)
		file.Close()
		if err != nil {
			return nil, "", err
		}
		images = append(images, url)
	}

	if headers := r.MultipartForm.File["featuredImage"]; len(headers) > 0 {
		header := headers[0]
		file, err := header.Open()
		if err != nil {
			return nil, "", err
		}
		url, err := media.Upload(r.Context(), file, header.Filename, header.Header.Get("Content-Type"), header.Size)
		file.Close()
		if err != nil {
			return nil, "", err
		}
		featured = url
	}
	return images, featured, nil
}
