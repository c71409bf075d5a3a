package storage

import (
	"path/filepath"
	"strings"
)

// Resume uploads are documents only. Extensions and MIME types outside these
// whitelists are rejected before anything touches the blob store.
var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

var allowedResumeMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	// DOCX uploads from some browsers arrive as plain zip
	"application/zip": true,
}

// ValidResumeFile reports whether the filename/MIME pair is an acceptable
// resume document. application/octet-stream is deliberately not accepted.
func ValidResumeFile(filename, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedResumeExtensions[ext] {
		return false
	}
	mime := contentType
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return allowedResumeMIMETypes[strings.TrimSpace(strings.ToLower(mime))]
}

// MIMESubtype returns the text after the slash of a MIME type, the form the
// dashboard stores as resumeFileType (e.g. "application/pdf" -> "pdf").
func MIMESubtype(contentType string) string {
	mime := contentType
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	if i := strings.LastIndex(mime, "/"); i >= 0 {
		return strings.TrimSpace(mime[i+1:])
	}
	return strings.TrimSpace(mime)
}
