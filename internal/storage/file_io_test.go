package storage

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mcoo/local-app/internal/model"
)

func sampleProject() model.Project {
	return model.Project{
		Version: model.ProjectVersion,
		Meta:    model.ProjectMeta{Title: "OP NORTH", Created: "2024-03-01T12:30:00.000Z", Classification: "UNCLASSIFIED//FOUO"},
		Canvas:  model.ProjectCanvas{Width: 1200, Height: 800, MapFileName: "ao.png"},
		Elements: []model.Element{
			{ID: "el_0001", Type: "unit", Label: "1-64 AR\nTF", X: 10, Y: -5, W: 80, H: 60, Rotation: 12.5, Color: "#1e40af", Opacity: 0.8, Visible: true},
			{ID: "el_0002", Type: "note", Body: "line one\nline two", W: 20, H: 20, Locked: true},
		},
	}
}

func TestFileEncode_WireFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := FileEncode(&buf, sampleProject()); err != nil {
		t.Fatalf("FileEncode() error = %v", err)
	}

	out := buf.String()
	for _, key := range []string{`"version": "1.0"`, `"mapFileName": "ao.png"`, `"classification"`, `"rotation": 12.5`, `"visible": false`} {
		if !strings.Contains(out, key) {
			t.Errorf("encoded document missing %s:\n%s", key, out)
		}
	}
	if !strings.Contains(out, "\n  \"meta\"") {
		t.Errorf("document is not indented with two spaces:\n%s", out)
	}

	buf.Reset()
	if err := FileEncode(&buf, model.Project{}); err != nil {
		t.Fatalf("FileEncode(empty) error = %v", err)
	}
	if !strings.Contains(buf.String(), `"elements": []`) {
		t.Errorf("empty project should encode an empty elements array:\n%s", buf.String())
	}
}

func TestFileDecode(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantInvalid bool
		check       func(t *testing.T, p model.Project)
	}{
		{
			name: "missing canvas and elements",
			in:   `{"version":"1.0"}`,
			check: func(t *testing.T, p model.Project) {
				if p.Canvas.Width != 0 || p.Canvas.Height != 0 || p.Elements == nil {
					t.Errorf("project = %+v", p)
				}
			},
		},
		{
			name: "missing visible stays hidden",
			in:   `{"elements":[{"id":"el_0001","type":"unit"}]}`,
			check: func(t *testing.T, p model.Project) {
				if len(p.Elements) != 1 || p.Elements[0].Visible {
					t.Errorf("elements = %+v", p.Elements)
				}
			},
		},
		{name: "not json", in: "hello", wantInvalid: true},
		{name: "truncated", in: `{"elements":[`, wantInvalid: true},
		{name: "null", in: "null", wantInvalid: true},
		{name: "wrong shape", in: `{"elements":"x"}`, wantInvalid: true},
		{name: "array", in: `[]`, wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FileDecode(strings.NewReader(tt.in))
			if tt.wantInvalid {
				if !errors.Is(err, ErrInvalidProject) {
					t.Fatalf("FileDecode() error = %v, want ErrInvalidProject", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FileDecode() error = %v", err)
			}
			tt.check(t, p)
		})
	}
}

func TestFileSaveLoad(t *testing.T) {
	dir := t.TempDir()

	path, err := FileSave(sampleProject(), filepath.Join(dir, "plans", "north"))
	if err != nil {
		t.Fatalf("FileSave() error = %v", err)
	}
	if filepath.Ext(path) != ProjectExt {
		t.Errorf("saved path = %q, want %s extension", path, ProjectExt)
	}

	got, err := FileLoad(filepath.Join(dir, "plans", "north"))
	if err != nil {
		t.Fatalf("FileLoad() error = %v", err)
	}
	want := sampleProject()
	if got.Meta != want.Meta || got.Canvas != want.Canvas || len(got.Elements) != len(want.Elements) {
		t.Fatalf("loaded = %+v, want %+v", got, want)
	}
	for i := range want.Elements {
		if got.Elements[i] != want.Elements[i] {
			t.Errorf("element %d = %+v, want %+v", i, got.Elements[i], want.Elements[i])
		}
	}
}

func TestFileSave_FailureKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path, err := FileSave(sampleProject(), filepath.Join(dir, "good"))
	if err != nil {
		t.Fatalf("FileSave() error = %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	broken := sampleProject()
	broken.Elements[0].Rotation = math.Inf(1)
	if _, err := FileSave(broken, path); err == nil {
		t.Fatalf("FileSave(unencodable) error = nil")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("failed save changed the file: %d bytes before, %d after", len(before), len(after))
	}
	if _, err := FileLoad(path); err != nil {
		t.Errorf("FileLoad() after failed save error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries after failed save, want only the project", len(entries))
	}
}

func TestFileSave_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path, err := FileSave(sampleProject(), filepath.Join(dir, "plan"))
	if err != nil {
		t.Fatalf("FileSave() error = %v", err)
	}

	next := sampleProject()
	next.Meta.Title = "OP SOUTH"
	next.Elements = next.Elements[:1]
	if _, err := FileSave(next, path); err != nil {
		t.Fatalf("FileSave(overwrite) error = %v", err)
	}

	got, err := FileLoad(path)
	if err != nil {
		t.Fatalf("FileLoad() error = %v", err)
	}
	if got.Meta.Title != "OP SOUTH" || len(got.Elements) != 1 {
		t.Errorf("loaded = %+v, want the overwritten project", got)
	}
	if info, err := os.Stat(path); err != nil || info.Mode().Perm() != 0644 {
		t.Errorf("saved file mode = %v, %v, want 0644", info, err)
	}
}

func TestFileLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := FileLoad(filepath.Join(dir, "missing.mcoo"))
	if err == nil || errors.Is(err, ErrInvalidProject) {
		t.Errorf("FileLoad(missing) error = %v, want a read error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("FileLoad(missing) error = %v, want os.ErrNotExist in chain", err)
	}

	bad := filepath.Join(dir, "bad.mcoo")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := FileLoad(bad); !errors.Is(err, ErrInvalidProject) {
		t.Errorf("FileLoad(bad) error = %v, want ErrInvalidProject", err)
	}
}

func TestProjectFileName(t *testing.T) {
	tests := map[string]string{
		"plan":        "plan.mcoo",
		"plan.mcoo":   "plan.mcoo",
		"plan.json":   "plan.json",
		"dir.v2/plan": "dir.v2/plan.mcoo",
	}
	for in, want := range tests {
		if got := ProjectFileName(in); got != want {
			t.Errorf("ProjectFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
