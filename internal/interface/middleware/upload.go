package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/wisata-api/pkg/response"
)

const (
	ctxUploadKey = "uploaded_object"

	// room for the non-file form fields sent next to the image
	formOverheadBytes = 512 << 10

	msgImagesOnly = "images only (jpeg, jpg, png)"
)

var (
	allowedImageMIME = map[string]struct{}{"image/jpeg": {}, "image/jpg": {}, "image/png": {}}
	allowedImageExt  = map[string]struct{}{".jpeg": {}, ".jpg": {}, ".png": {}}
)

// ObjectStore is where accepted uploads are written.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

type UploadOptions struct {
	Field    string // multipart field carrying the file
	Folder   string // object folder, e.g. "contents"
	MaxBytes int64
	Required bool
	Now      func() time.Time
}

// UploadedObject is what UploadImage leaves on the context for the handler.
type UploadedObject struct {
	URL  string
	Path string
}

// UploadImage validates a single jpeg/png file under opts.Field, stores it at
// {Folder}/{unixMillis}-{filename} and exposes the result through UploadedFrom.
func UploadImage(store ObjectStore, opts UploadOptions) gin.HandlerFunc {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		if !isMultipart(c.Request) {
			if opts.Required {
				response.Abort(c, http.StatusBadRequest, "no file uploaded", "multipart/form-data expected")
				return
			}
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, opts.MaxBytes+formOverheadBytes)
		if err := c.Request.ParseMultipartForm(opts.MaxBytes + formOverheadBytes); err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				response.Abort(c, http.StatusBadRequest, "file too large", maxSizeMessage(opts.MaxBytes))
				return
			}
			response.Abort(c, http.StatusBadRequest, "invalid multipart form", err.Error())
			return
		}

		for field, fhs := range c.Request.MultipartForm.File {
			if field != opts.Field && len(fhs) > 0 {
				response.Abort(c, http.StatusBadRequest, "unexpected file field", field)
				return
			}
		}
		files := c.Request.MultipartForm.File[opts.Field]
		switch {
		case len(files) == 0:
			if opts.Required {
				response.Abort(c, http.StatusBadRequest, "no file uploaded", nil)
				return
			}
			c.Next()
			return
		case len(files) > 1:
			response.Abort(c, http.StatusBadRequest, "only one file allowed", nil)
			return
		}

		fh := files[0]
		if fh.Size > opts.MaxBytes {
			response.Abort(c, http.StatusBadRequest, "file too large", maxSizeMessage(opts.MaxBytes))
			return
		}
		declared, _, _ := mime.ParseMediaType(fh.Header.Get("Content-Type"))
		_, okMIME := allowedImageMIME[strings.ToLower(declared)]
		_, okExt := allowedImageExt[strings.ToLower(filepath.Ext(fh.Filename))]
		if !okMIME || !okExt {
			response.Abort(c, http.StatusBadRequest, msgImagesOnly, nil)
			return
		}

		f, err := fh.Open()
		if err != nil {
			response.Abort(c, http.StatusBadRequest, "unreadable file", err.Error())
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, opts.MaxBytes+1))
		_ = f.Close()
		if err != nil {
			response.Abort(c, http.StatusBadRequest, "unreadable file", err.Error())
			return
		}
		if int64(len(data)) > opts.MaxBytes {
			response.Abort(c, http.StatusBadRequest, "file too large", maxSizeMessage(opts.MaxBytes))
			return
		}
		sniffed := mimetype.Detect(data)
		if !sniffed.Is("image/jpeg") && !sniffed.Is("image/png") {
			response.Abort(c, http.StatusBadRequest, msgImagesOnly, "content is "+sniffed.String())
			return
		}

		objectPath := fmt.Sprintf("%s/%d-%s", opts.Folder, now().UnixMilli(), baseName(fh.Filename))
		url, err := store.Upload(c.Request.Context(), objectPath, sniffed.String(), data)
		if err != nil {
			response.Abort(c, http.StatusInternalServerError, "upload failed", err.Error())
			return
		}
		c.Set(ctxUploadKey, UploadedObject{URL: url, Path: objectPath})
		c.Next()
	}
}

// UploadedFrom returns the object stored by UploadImage for this request.
func UploadedFrom(c *gin.Context) (UploadedObject, bool) {
	v, ok := c.Get(ctxUploadKey)
	if !ok {
		return UploadedObject{}, false
	}
	obj, ok := v.(UploadedObject)
	return obj, ok
}

// DiscardUpload deletes this request's uploaded object, if any. Handlers call it
// when persisting the row that would reference the object fails.
func DiscardUpload(c *gin.Context, store ObjectStore) error {
	obj, ok := UploadedFrom(c)
	if !ok {
		return nil
	}
	return store.Delete(context.WithoutCancel(c.Request.Context()), obj.Path)
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

// baseName strips any client supplied directories, including Windows ones.
func baseName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return "upload"
	}
	return name
}

func maxSizeMessage(max int64) string {
	return fmt.Sprintf("maximum size is %.1f MiB", float64(max)/(1<<20))
}
