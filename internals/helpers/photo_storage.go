// file: internals/helpers/photo_storage.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	progressPhotoBucket = "progress-photos"
	maxPhotoUploadSize  = int64(5 * 1024 * 1024)

	// foto progress tidak butuh resolusi penuh
	photoMaxWidth    = 1280
	photoMaxHeight   = 1280
	photoWebPQuality = float32(80)
)

// UploadProgressPhoto: baca multipart file → kompres ke WebP → upload ke storage.
// Return public URL foto.
func UploadProgressPhoto(clientID uuid.UUID, angle string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxPhotoUploadSize {
		return "", fmt.Errorf("ukuran foto melebihi %dMB", maxPhotoUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file foto: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("gagal membaca file foto: %w", err)
	}

	webpBuf, err := CompressImageToWebP(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("gagal konversi foto ke webp: %w", err)
	}

	folder := fmt.Sprintf("%s/%s", clientID.String(), angle)
	filename := GenerateUniqueFilename(folder, fileHeader.Filename) + ".webp"

	if err := uploadToStorage(progressPhotoBucket, filename, "image/webp", webpBuf); err != nil {
		return "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		os.Getenv("STORAGE_PROJECT_URL"),
		progressPhotoBucket,
		url.PathEscape(filename),
	)
	return publicURL, nil
}

// CompressImageToWebP: decode jpeg/png → resize keep-aspect → encode webp lossy.
func CompressImageToWebP(data []byte) (*bytes.Buffer, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > photoMaxWidth || bounds.Dy() > photoMaxHeight {
		img = imaging.Fit(img, photoMaxWidth, photoMaxHeight, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: photoWebPQuality}); err != nil {
		return nil, err
	}
	return out, nil
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, sanitizeFilename(originalFilename))
}

func uploadToStorage(bucket, filename, contentType string, data *bytes.Buffer) error {
	storageURL := os.Getenv("STORAGE_PROJECT_URL")
	storageKey := os.Getenv("STORAGE_API_KEY")

	if storageURL == "" || storageKey == "" {
		return fmt.Errorf("STORAGE_PROJECT_URL atau STORAGE_API_KEY belum diset")
	}

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", storageURL, bucket, filename)

	req, err := http.NewRequest(http.MethodPut, uploadURL, data)
	if err != nil {
		return fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+storageKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Println("❌ Upload gagal:", string(body))
		return fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// ✅ Hapus file dari storage (dipakai saat check-in dihapus/diganti fotonya)
func DeleteFromStorage(fullURL string) error {
	bucket, path, err := extractStoragePath(fullURL)
	if err != nil {
		return err
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		os.Getenv("STORAGE_PROJECT_URL"), bucket, path)

	req, err := http.NewRequest(http.MethodDelete, deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+os.Getenv("STORAGE_API_KEY"))

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func extractStoragePath(fullURL string) (bucket string, path string, err error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", "", err
	}

	parts := strings.SplitN(u.Path, "/object/public/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("url tidak valid untuk public object")
	}

	pathParts := strings.SplitN(parts[1], "/", 2)
	if len(pathParts) < 2 {
		return "", "", fmt.Errorf("gagal ekstrak bucket dan path")
	}
	return pathParts[0], pathParts[1], nil
}
