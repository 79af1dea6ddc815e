// Package media stores uploaded profile assets on disk. Images are
// normalized to JPEG with a WebP sidecar; music files are stored as-is.
package media

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"retrospace/internal/models"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	DefaultMediaDir            = "/tmp/retrospace/media"
	DefaultMaxUploadSizeMB     = 10
	ImageMaxSize               = 2048
	JPEGQuality                = 82
	WebPQuality                = 70
)

// UploadKind selects both the storage path and the validation applied to an
// uploaded file.
type UploadKind string

const (
	KindProfilePic UploadKind = "profile"
	KindCoverPhoto UploadKind = "cover"
	KindBackground UploadKind = "background"
	KindGallery    UploadKind = "gallery"
	KindMusic      UploadKind = "music"
)

// ParseUploadKind maps a route parameter to an UploadKind.
func ParseUploadKind(s string) (UploadKind, bool) {
	switch UploadKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindProfilePic:
		return KindProfilePic, true
	case KindCoverPhoto:
		return KindCoverPhoto, true
	case KindBackground:
		return KindBackground, true
	case KindGallery:
		return KindGallery, true
	case KindMusic:
		return KindMusic, true
	}
	return "", false
}

// IsImage reports whether the kind goes through the image pipeline.
func (k UploadKind) IsImage() bool {
	return k != KindMusic
}

// UploadInput carries one uploaded file through validation and storage.
type UploadInput struct {
	Username    string
	Kind        UploadKind
	Filename    string
	ContentType string
	Content     []byte
}

// StoredFile describes the result of a completed upload.
type StoredFile struct {
	// Path is the canonical relative path, slash-separated, stored on the
	// profile record and served under /media/.
	Path string `json:"path"`
	// WebPPath is the sidecar path for image uploads, empty for music.
	WebPPath  string `json:"webp_path,omitempty"`
	SizeBytes int64  `json:"size_bytes"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// Store writes uploads beneath a single root directory.
type Store struct {
	dir                string
	maxUploadSizeBytes int64
}

// NewStore returns a Store rooted at dir. Zero values fall back to defaults.
func NewStore(dir string, maxUploadSizeMB int) *Store {
	if dir == "" {
		dir = DefaultMediaDir
	}
	if maxUploadSizeMB <= 0 {
		maxUploadSizeMB = DefaultMaxUploadSizeMB
	}
	return &Store{
		dir:                dir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// Dir returns the storage root.
func (s *Store) Dir() string {
	return s.dir
}

// Save validates and persists one upload, returning the stored paths.
func (s *Store) Save(in UploadInput) (*StoredFile, error) {
	if in.Username == "" {
		return nil, models.NewValidationError("Invalid user")
	}
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if int64(len(in.Content)) > s.maxUploadSizeBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	if in.Kind.IsImage() {
		return s.saveImage(in)
	}
	return s.saveMusic(in)
}

func (s *Store) saveImage(in UploadInput) (*StoredFile, error) {
	detectedType := http.DetectContentType(in.Content)
	if !isAllowedImageMIME(detectedType) {
		return nil, models.NewValidationError("Invalid image type")
	}

	decoded, format, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return nil, models.NewValidationError("Invalid image file")
	}
	if !isSupportedDecodedFormat(format) {
		return nil, models.NewValidationError("Unsupported image format")
	}

	normalized := resizeToFit(decoded, ImageMaxSize, ImageMaxSize)

	encodedJPG, err := encodeJPEG(normalized, JPEGQuality)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	encodedWebP, err := encodeWebP(normalized, WebPQuality)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	name := contentHash(in.Username, encodedJPG)
	relJPG := filepath.ToSlash(filepath.Join(relDirFor(in.Kind, in.Username), name+".jpg"))
	relWebP := filepath.ToSlash(filepath.Join(relDirFor(in.Kind, in.Username), name+".webp"))
	absJPG := filepath.Join(s.dir, relJPG)
	absWebP := filepath.Join(s.dir, relWebP)

	if err := writeBytesToFile(absJPG, encodedJPG); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := writeBytesToFile(absWebP, encodedWebP); err != nil {
		_ = os.Remove(absJPG)
		return nil, models.NewInternalError(err)
	}

	b := normalized.Bounds()
	return &StoredFile{
		Path:      relJPG,
		WebPPath:  relWebP,
		SizeBytes: int64(len(encodedJPG)),
		Width:     b.Dx(),
		Height:    b.Dy(),
	}, nil
}

func (s *Store) saveMusic(in UploadInput) (*StoredFile, error) {
	detectedType := http.DetectContentType(in.Content)
	if !isAllowedAudioMIME(detectedType) {
		return nil, models.NewValidationError("Invalid audio type")
	}

	ext := strings.ToLower(filepath.Ext(in.Filename))
	if ext == "" {
		ext = audioExtFor(detectedType)
	}
	name := contentHash(in.Username, in.Content)
	rel := filepath.ToSlash(filepath.Join("music", name+ext))

	if err := writeBytesToFile(filepath.Join(s.dir, rel), in.Content); err != nil {
		return nil, models.NewInternalError(err)
	}

	return &StoredFile{
		Path:      rel,
		SizeBytes: int64(len(in.Content)),
	}, nil
}

// Remove deletes a stored file and its WebP sidecar when one exists. A path
// outside the store root is rejected.
func (s *Store) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return models.NewValidationError("Invalid media path")
	}
	abs := filepath.Join(s.dir, clean)
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return models.NewInternalError(err)
	}
	if strings.HasSuffix(clean, ".jpg") {
		_ = os.Remove(strings.TrimSuffix(abs, ".jpg") + ".webp")
	}
	return nil
}

func relDirFor(kind UploadKind, username string) string {
	switch kind {
	case KindGallery:
		return filepath.Join("gallery", username)
	default:
		return filepath.Join("profiles", username, string(kind))
	}
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isAllowedImageMIME(contentType string) bool {
	switch normalizeContentType(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func isAllowedAudioMIME(contentType string) bool {
	switch normalizeContentType(contentType) {
	case "audio/mpeg", "audio/mp3", "audio/ogg", "application/ogg", "audio/wave", "audio/wav", "audio/x-wav":
		return true
	default:
		return false
	}
}

func audioExtFor(contentType string) string {
	switch normalizeContentType(contentType) {
	case "audio/ogg", "application/ogg":
		return ".ogg"
	case "audio/wave", "audio/wav", "audio/x-wav":
		return ".wav"
	default:
		return ".mp3"
	}
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func isSupportedDecodedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "jpeg", "jpg", "png", "gif", "webp":
		return true
	default:
		return false
	}
}

func contentHash(username string, content []byte) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s:", username)
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))[:32]
}

func writeBytesToFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
