package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const upstreamTimeout = 10 * time.Second

// ImageHandler proxies a small set of logical image names to fixed upstream
// URLs, streaming back the upstream content type and bytes.
type ImageHandler struct {
	images map[string]string
	client *http.Client
}

// NewImageHandler maps logical names to upstream URLs.
func NewImageHandler(images map[string]string) *ImageHandler {
	return &ImageHandler{
		images: images,
		client: &http.Client{Timeout: upstreamTimeout},
	}
}

// Get streams one image.
//
// @Summary      Fetch a named brand image
// @Tags         images
// @Produce      octet-stream
// @Param        img  path  string  true  "Logical image name (logo, logo-light)"
// @Success      200
// @Failure      404  {string}  string  "Image not found"
// @Router       /api/img/{img} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	url, ok := h.images[c.Param("img")]
	if !ok {
		return c.String(http.StatusNotFound, "Image not found")
	}

	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodGet, url, nil)
	if err != nil {
		return c.String(http.StatusNotFound, "Image not found")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return c.String(http.StatusNotFound, "Image not found")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return c.String(http.StatusNotFound, "Image not found")
	}

	return c.Stream(http.StatusOK, resp.Header.Get("Content-Type"), resp.Body)
}
