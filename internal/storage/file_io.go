// Package storage provides functionality for persisting MCOO projects and the
// shell command journal.
// This file handles the .mcoo project document format.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mcoo/local-app/internal/model"
)

// ProjectExt is the file extension of project documents.
const ProjectExt = ".mcoo"

// ErrInvalidProject reports a document that is not a well-formed project.
var ErrInvalidProject = errors.New("invalid .mcoo file")

// FileEncode writes the project as indented JSON.
func FileEncode(w io.Writer, project model.Project) error {
	if project.Elements == nil {
		project.Elements = []model.Element{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(project); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	return nil
}

// FileDecode reads a project document. Content that does not parse as a
// project object yields an error wrapping ErrInvalidProject; read failures
// are returned wrapped as they are.
func FileDecode(r io.Reader) (model.Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project: %w", err)
	}

	var project *model.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return model.Project{}, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	if project == nil {
		return model.Project{}, fmt.Errorf("%w: document is null", ErrInvalidProject)
	}
	if project.Elements == nil {
		project.Elements = []model.Element{}
	}
	return *project, nil
}

// FileSave writes the project to filename, adding ProjectExt when the name
// has no extension. It returns the path written.
func FileSave(project model.Project, filename string) (string, error) {
	filename = ProjectFileName(filename)
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create project directory '%s': %w", dir, err)
		}
	}

	var buf bytes.Buffer
	if err := FileEncode(&buf, project); err != nil {
		return "", err
	}

	// Write a sibling temp file and rename it over the target so an
	// existing project is replaced whole or not at all.
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to replace file: %w", err)
	}
	return filename, nil
}

// FileLoad reads a project document from filename, adding ProjectExt when
// the name has no extension.
func FileLoad(filename string) (model.Project, error) {
	f, err := os.Open(ProjectFileName(filename))
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	return FileDecode(f)
}

// ProjectFileName returns filename with ProjectExt appended when it has no extension.
func ProjectFileName(filename string) string {
	if filepath.Ext(filename) == "" {
		return filename + ProjectExt
	}
	return filename
}
