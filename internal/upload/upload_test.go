package upload

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
)

// buildForm assembles a multipart form in memory and hands back the parsed
// file headers, the same shape the HTTP layer delivers.
func buildForm(t *testing.T, files map[string][]byte) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, data := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="materials"; filename="`+name+`"`)
		h.Set("Content-Type", "application/octet-stream")
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["materials"]
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), []byte("fakepixels")...)

func TestReadMaterialsText(t *testing.T) {
	fhs := buildForm(t, map[string][]byte{
		"giao-an.txt": []byte("Nội dung bài giảng về mạng máy tính."),
	})

	plan, images := ReadMaterials(fhs)
	if len(images) != 0 {
		t.Errorf("images = %d, want 0", len(images))
	}
	if !strings.Contains(plan, "--- Content from giao-an.txt ---") {
		t.Errorf("plan missing separator: %q", plan)
	}
	if !strings.Contains(plan, "mạng máy tính") {
		t.Errorf("plan missing content: %q", plan)
	}
	if strings.HasPrefix(plan, "\n") {
		t.Error("plan should be trimmed")
	}
}

func TestReadMaterialsImage(t *testing.T) {
	fhs := buildForm(t, map[string][]byte{"hinh.png": pngBytes})

	plan, images := ReadMaterials(fhs)
	if plan != "" {
		t.Errorf("plan = %q, want empty", plan)
	}
	if len(images) != 1 {
		t.Fatalf("images = %d, want 1", len(images))
	}
	if images[0].MIMEType != "image/png" {
		t.Errorf("mime = %q, want image/png", images[0].MIMEType)
	}
	decoded, err := base64.StdEncoding.DecodeString(images[0].Data)
	if err != nil {
		t.Fatalf("decode image data: %v", err)
	}
	if !bytes.Equal(decoded, pngBytes) {
		t.Error("image bytes changed through encoding")
	}
}

func TestReadMaterialsSkipsUnsupported(t *testing.T) {
	fhs := buildForm(t, map[string][]byte{
		"archive.zip": []byte("PK\x03\x04not really"),
		"notes.txt":   []byte("vẫn được giữ"),
	})

	plan, images := ReadMaterials(fhs)
	if len(images) != 0 {
		t.Errorf("images = %d, want 0", len(images))
	}
	if !strings.Contains(plan, "vẫn được giữ") {
		t.Errorf("text file lost: %q", plan)
	}
	if strings.Contains(plan, "archive.zip") {
		t.Errorf("unsupported file leaked into plan: %q", plan)
	}
}

func TestReadMaterialsBadPDF(t *testing.T) {
	fhs := buildForm(t, map[string][]byte{
		"bai-giang.pdf": []byte("%PDF-1.7 truncated garbage"),
	})

	plan, images := ReadMaterials(fhs)
	if plan != "" || len(images) != 0 {
		t.Errorf("broken PDF should be skipped, got plan=%q images=%d", plan, len(images))
	}
}

func TestSniffType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		declared string
		data     []byte
		want     string
	}{
		{"png magic wins", "x.bin", "application/octet-stream", pngBytes, "image/png"},
		{"jpeg magic", "x", "", []byte("\xff\xd8\xffrest"), "image/jpeg"},
		{"gif magic", "x", "", []byte("GIF89axxxx"), "image/gif"},
		{"pdf magic", "x", "text/plain", []byte("%PDF-1.4"), "application/pdf"},
		{"txt extension fallback", "notes.txt", "", []byte("hello"), "text/plain"},
		{"declared text subtype", "a.md", "text/markdown; charset=utf-8", []byte("hello"), "text/plain"},
		{"unknown stays unknown", "a.bin", "application/octet-stream", []byte("hello"), "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := &multipart.FileHeader{Filename: tt.filename, Header: textproto.MIMEHeader{}}
			if tt.declared != "" {
				fh.Header.Set("Content-Type", tt.declared)
			}
			if got := sniffType(fh, tt.data); got != tt.want {
				t.Errorf("sniffType = %q, want %q", got, tt.want)
			}
		})
	}
}
