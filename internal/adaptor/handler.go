package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/usecase"
	"food-ordering/pkg/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Restaurant *RestaurantHandler
	Food       *FoodHandler
	Order      *OrderHandler
	Review     *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Restaurant: NewRestaurantHandler(service.Restaurant, log),
		Food:       NewFoodHandler(service.Food, log),
		Order:      NewOrderHandler(service.Order, log),
		Review:     NewReviewHandler(service.Review, log),
	}
}

const (
	maxJSONBody      = 1 << 20
	maxMultipartBody = 32 << 20
	imagesField      = "images"
)

func entityRole(role string) entity.UserRole {
	return entity.UserRole(role)
}

// imageIDParam returns the image id captured by the trailing wildcard.
// Ids contain the storage folder, so they may arrive with a raw or an
// escaped slash.
func imageIDParam(r *http.Request) string {
	id := chi.URLParam(r, "*")
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// decodeUpdate decodes an update body. It returns nil when the body is
// malformed so the service can reject it after the ownership check.
func decodeUpdate[T any](w http.ResponseWriter, r *http.Request) *T {
	req := new(T)
	if err := decodeJSON(w, r, req); err != nil {
		return nil
	}
	return req
}

// readImages collects the files of the multipart images field. The caller
// must close the returned files.
func readImages(w http.ResponseWriter, r *http.Request) ([]storage.ImageUpload, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBody)
	if err := r.ParseMultipartForm(maxMultipartBody); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, func() {}, err
	}

	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File[imagesField]
	}

	files := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	uploads := make([]storage.ImageUpload, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, file)

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		uploads = append(uploads, storage.ImageUpload{
			Filename:    header.Filename,
			ContentType: contentType,
			Size:        header.Size,
			Body:        file,
		})
	}

	return uploads, closeAll, nil
}
