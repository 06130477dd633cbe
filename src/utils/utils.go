package utils

import (
	"bytes"
	"net/http"

	"LibraryHub/src/core/database"
	storage_go "github.com/supabase-community/storage-go"
)

// UploadToSupabaseStorage uploads raw file contents (e.g. a generated QR
// image) to Supabase storage and returns the storage path, public URL, and
// detected content type.
func UploadToSupabaseStorage(fileBytes []byte, path string) (string, string, string, error) {
	// Initialize Supabase storage client
	storageClient, bucketName, err := database.SupabaseStorage()
	if err != nil {
		return "", "", "", err
	}

	// Detect content type based on file contents
	contentType := http.DetectContentType(fileBytes)

	// Upload the file to Supabase storage
	_, err = storageClient.UploadFile(bucketName, path, bytes.NewReader(fileBytes), storage_go.FileOptions{ContentType: &contentType})
	if err != nil {
		return "", "", "", err
	}

	// Get the public URL for the uploaded file
	response := storageClient.GetPublicUrl(bucketName, path)
	fileUrl := response.SignedURL

	return path, fileUrl, contentType, nil
}

// DeleteFromSupabaseStorage deletes a file from Supabase storage given the file path.
func DeleteFromSupabaseStorage(path string) error {
	// Initialize Supabase storage client
	storageClient, bucketName, err := database.SupabaseStorage()
	if err != nil {
		return err
	}

	// Delete the file from Supabase storage
	_, err = storageClient.RemoveFile(bucketName, []string{path})
	if err != nil {
		return err
	}

	return nil
}
