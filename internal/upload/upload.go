// Package upload turns teacher-provided lesson materials from a multipart
// form into prompt inputs: text and PDF files become aggregated lesson-plan
// text, images become base64 parts for the model to look at.
package upload

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/minhdangit/detinai/internal/model"
)

// Reading an entire upload into memory is fine at this size; anything
// larger is rejected before extraction.
const maxFileSize = 20 << 20

var imageMIMEs = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// ReadMaterials processes uploaded files. Text and PDF contents are
// concatenated into a single lesson-plan string with per-file separators;
// images come back as encoded parts. Files of other types, and files that
// fail to read, are skipped with a warning so one bad upload never sinks
// the whole request.
func ReadMaterials(files []*multipart.FileHeader) (string, []model.ImagePart) {
	var plan strings.Builder
	var images []model.ImagePart

	for _, fh := range files {
		if fh.Size > maxFileSize {
			slog.Warn("skipping oversized upload", "file", fh.Filename, "size", fh.Size)
			continue
		}
		data, err := readAll(fh)
		if err != nil {
			slog.Warn("skipping unreadable upload", "file", fh.Filename, "error", err)
			continue
		}

		mimeType := sniffType(fh, data)
		switch {
		case imageMIMEs[mimeType]:
			images = append(images, model.ImagePart{
				MIMEType: mimeType,
				Data:     base64.StdEncoding.EncodeToString(data),
			})
		case mimeType == "application/pdf":
			text, err := extractPDFText(data)
			if err != nil {
				slog.Warn("skipping PDF without extractable text", "file", fh.Filename, "error", err)
				continue
			}
			fmt.Fprintf(&plan, "\n\n--- Content from %s ---\n%s", fh.Filename, text)
		case mimeType == "text/plain":
			fmt.Fprintf(&plan, "\n\n--- Content from %s ---\n%s", fh.Filename, string(data))
		default:
			slog.Warn("skipping unsupported upload type", "file", fh.Filename, "type", mimeType)
		}
	}

	return strings.TrimSpace(plan.String()), images
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// sniffType trusts the content over the declared header. Browsers declare
// the type from the file extension; content sniffing catches renamed files.
func sniffType(fh *multipart.FileHeader, data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return "application/pdf"
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "image/png"
	case bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return "image/gif"
	}
	declared := fh.Header.Get("Content-Type")
	if i := strings.IndexByte(declared, ';'); i >= 0 {
		declared = declared[:i]
	}
	declared = strings.TrimSpace(declared)
	if declared == "" || declared == "application/octet-stream" {
		if strings.HasSuffix(strings.ToLower(fh.Filename), ".txt") {
			return "text/plain"
		}
	}
	if strings.HasPrefix(declared, "text/") {
		return "text/plain"
	}
	return declared
}

func extractPDFText(data []byte) (string, error) {
	rd, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	pt, err := rd.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract PDF text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, pt); err != nil {
		return "", fmt.Errorf("read PDF text: %w", err)
	}
	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", fmt.Errorf("no extractable text")
	}
	return text, nil
}
