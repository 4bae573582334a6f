package assistant

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImage = errors.New("invalid image payload")

// ParseDataURL decodifica "data:<media>;base64,<datos>".
func ParseDataURL(s string) (*Image, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "data:")
	if !ok {
		return nil, ErrInvalidImage
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrInvalidImage
	}
	mediaType, enc, ok := strings.Cut(meta, ";")
	if !ok || !strings.EqualFold(enc, "base64") {
		return nil, ErrInvalidImage
	}
	return DecodeImage(mediaType, payload)
}

// DecodeImage valida el media type y decodifica base64 estándar.
func DecodeImage(mediaType, b64 string) (*Image, error) {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, ErrInvalidImage
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidImage
	}
	return &Image{MediaType: mediaType, Data: data}, nil
}
