package catalog

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newTestDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("content of "+n), 0o644); err != nil {
			t.Fatalf("writing fixture %s: %v", n, err)
		}
	}
	return dir
}

func TestList_CategoryFilter(t *testing.T) {
	dir := newTestDir(t, "elevation_1.png", "plan_1.pdf", "brochure.pdf")
	svc := New(dir)

	tests := []struct {
		name     string
		category string
		want     []string
	}{
		{
			name:     "elevation keeps only elevation prefix",
			category: "elevation",
			want:     []string{"elevation_1.png"},
		},
		{
			name:     "plan keeps only plan prefix",
			category: "plan",
			want:     []string{"plan_1.pdf"},
		},
		{
			name:     "empty category returns everything",
			category: "",
			want:     []string{"brochure.pdf", "elevation_1.png", "plan_1.pdf"},
		},
		{
			name:     "unknown category returns everything",
			category: "interior",
			want:     []string{"brochure.pdf", "elevation_1.png", "plan_1.pdf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(tt.category)
			if err != nil {
				t.Fatalf("List(%q) error = %v", tt.category, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("List(%q) = %v, want %v", tt.category, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("List(%q)[%d] = %q, want %q", tt.category, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestList_SkipsSubdirectories(t *testing.T) {
	dir := newTestDir(t, "brochure.pdf")
	if err := os.Mkdir(filepath.Join(dir, "plan_archive"), 0o755); err != nil {
		t.Fatal(err)
	}
	svc := New(dir)

	got, err := svc.List("")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0] != "brochure.pdf" {
		t.Errorf("List() = %v, want [brochure.pdf]", got)
	}
}

func TestList_UnreadableDir(t *testing.T) {
	svc := New(filepath.Join(t.TempDir(), "missing"))

	_, err := svc.List("")
	if !errors.Is(err, ErrEnumerate) {
		t.Errorf("List() error = %v, want ErrEnumerate", err)
	}
}

func TestOpen(t *testing.T) {
	dir := newTestDir(t, "plan_A.pdf")
	svc := New(dir)

	r, asset, err := svc.Open("plan_A.pdf")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if asset.ContentType != "application/pdf" {
		t.Errorf("ContentType = %q, want application/pdf", asset.ContentType)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading asset: %v", err)
	}
	if string(body) != "content of plan_A.pdf" {
		t.Errorf("unexpected body %q", body)
	}
	if asset.Size != int64(len(body)) {
		t.Errorf("Size = %d, want %d", asset.Size, len(body))
	}
}

func TestOpen_Rejections(t *testing.T) {
	dir := newTestDir(t, "plan_A.pdf")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	svc := New(dir)

	tests := []struct {
		name string
		file string
	}{
		{"absent file", "plan_B.pdf"},
		{"empty name", ""},
		{"parent traversal", "../plan_A.pdf"},
		{"deep traversal", "../../etc/passwd"},
		{"nested path", "nested/plan_A.pdf"},
		{"directory", "nested"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Open(tt.file)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Open(%q) error = %v, want ErrNotFound", tt.file, err)
			}
		})
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"a.pdf", "application/pdf"},
		{"a.jpg", "image/jpeg"},
		{"a.jpeg", "image/jpeg"},
		{"a.PNG", "image/png"},
		{"a.gif", "image/gif"},
		{"a.svg", "image/svg+xml"},
		{"a.zip", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := ContentTypeFor(tt.file); got != tt.want {
			t.Errorf("ContentTypeFor(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}
