package storage_test

import (
	"testing"

	"github.com/FarazAhsan11/candidate-management/pkg/storage"

	"github.com/stretchr/testify/assert"
)

func TestValidResumeFile(t *testing.T) {
	t.Run("Should accept whitelisted documents", func(t *testing.T) {
		assert.True(t, storage.ValidResumeFile("cv.pdf", "application/pdf"))
		assert.True(t, storage.ValidResumeFile("cv.doc", "application/msword"))
		assert.True(t, storage.ValidResumeFile("cv.docx",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
		assert.True(t, storage.ValidResumeFile("notes.txt", "text/plain"))
	})

	t.Run("Should accept docx arriving as zip", func(t *testing.T) {
		assert.True(t, storage.ValidResumeFile("cv.docx", "application/zip"))
	})

	t.Run("Should tolerate case and charset parameters", func(t *testing.T) {
		assert.True(t, storage.ValidResumeFile("CV.PDF", "Application/PDF"))
		assert.True(t, storage.ValidResumeFile("notes.txt", "text/plain; charset=utf-8"))
	})

	t.Run("Should reject non-document types", func(t *testing.T) {
		assert.False(t, storage.ValidResumeFile("photo.png", "image/png"))
		assert.False(t, storage.ValidResumeFile("cv.exe", "application/octet-stream"))
		assert.False(t, storage.ValidResumeFile("cv", "application/pdf"))
	})

	t.Run("Should reject octet-stream even with a good extension", func(t *testing.T) {
		assert.False(t, storage.ValidResumeFile("cv.pdf", "application/octet-stream"))
	})
}

func TestMIMESubtype(t *testing.T) {
	assert.Equal(t, "pdf", storage.MIMESubtype("application/pdf"))
	assert.Equal(t, "plain", storage.MIMESubtype("text/plain; charset=utf-8"))
	assert.Equal(t, "vnd.openxmlformats-officedocument.wordprocessingml.document",
		storage.MIMESubtype("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	assert.Equal(t, "pdf", storage.MIMESubtype("pdf"))
}
