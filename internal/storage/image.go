package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

const MaxImageSize = 5 * 1024 * 1024

// allowed maps accepted extensions to the decoder name image.DecodeConfig
// reports for them.
var allowed = map[string]string{
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".png":  "png",
	".gif":  "gif",
	".webp": "webp",
}

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

type Image struct {
	Ext         string
	ContentType string
	Data        []byte
}

// ReadImage validates size, extension and the actual content of an upload
// and returns its bytes.
func ReadImage(fh *multipart.FileHeader) (*Image, error) {
	if fh == nil {
		return nil, httperr.ErrUpload("missing_file", "Por favor, envie um arquivo.")
	}
	if fh.Size > MaxImageSize {
		return nil, httperr.ErrUpload(
			"file_too_large",
			fmt.Sprintf("Por favor, envie uma imagem menor que %dMB.", MaxImageSize/(1024*1024)),
		)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	format, ok := allowed[ext]
	if !ok {
		return nil, invalidType()
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, httperr.ErrUpload("file_too_large", "Por favor, envie uma imagem menor que 5MB.")
	}

	_, decoded, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || decoded != format {
		return nil, invalidType()
	}

	return &Image{Ext: ext, ContentType: contentTypes[format], Data: data}, nil
}

func invalidType() error {
	return httperr.ErrUpload(
		"invalid_file_type",
		"Apenas imagens são permitidas (jpeg, jpg, png, gif, webp).",
	)
}
