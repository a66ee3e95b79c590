package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const productPublicPath = "/uploads/products"

func productUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "products")
	}
	return "uploads/products"
}

// saveProductImage stores the uploaded file under a uuid filename and
// returns its public URL.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := productUploadDir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	savePath := filepath.Join(dir, filename)

	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return fmt.Sprintf("%s/%s", productPublicPath, filename), nil
}

// removeProductImage deletes a previously uploaded image, if the URL
// points into our upload dir. External URLs are left alone.
func removeProductImage(imageURL string) {
	if imageURL == "" || filepath.Dir(imageURL) != productPublicPath {
		return
	}
	_ = os.Remove(filepath.Join(productUploadDir(), filepath.Base(imageURL)))
}
