package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/mapimage"
	"mcoo/local-app/internal/model"
	"mcoo/local-app/internal/storage"
)

func initProjectCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"save":  handleProjectSave,
		"load":  handleProjectLoad,
		"info":  handleProjectInfo,
		"title": handleProjectTitle,
	}
}

func initCanvasCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"size": handleCanvasSize,
		"map":  handleCanvasMap,
		"zoom": handleCanvasZoom,
		"grid": handleCanvasGrid,
	}
}

// handleProjectSave writes the project. Without a file argument the
// session's current project file is used.
func handleProjectSave(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()

	file := s.ProjectFile
	if len(cmd.Args) > 0 {
		file = s.projectPath(cmd.Args[0])
	}
	if file == "" {
		return nil, fmt.Errorf("usage: project save <file> [title]")
	}
	if len(cmd.Args) > 1 {
		s.ProjectTitle = cmd.Args[1]
	}

	doc := s.Elements.ProjectExport(s.ProjectTitle)
	path, err := storage.FileSave(doc, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	s.Elements.MarkSaved()
	s.ProjectFile = path
	s.ProjectTitle = doc.Meta.Title

	s.logger.Info(ctx, "Project saved", log.Fields{"file": path, "elements": len(doc.Elements)})
	return fmt.Sprintf("Project saved to %s (%d elements)", path, len(doc.Elements)), nil
}

// handleProjectLoad replaces the editor state with a project file. Unsaved
// changes block the load unless --force is given.
func handleProjectLoad(s *Session, cmd model.Command) (interface{}, error) {
	ctx := context.Background()

	force := len(cmd.Args) > 1 && cmd.Args[1] == "--force"
	if len(cmd.Args) > 1 && !force {
		return nil, fmt.Errorf("usage: project load <file> [--force]")
	}
	if s.Elements.Dirty() && !force {
		return nil, fmt.Errorf("unsaved changes; save the project or use 'project load %s --force'", cmd.Args[0])
	}

	file := s.projectPath(cmd.Args[0])
	doc, err := storage.FileLoad(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	s.Elements.ProjectImport(doc)
	s.ProjectFile = file
	s.ProjectTitle = doc.Meta.Title

	s.logger.Info(ctx, "Project loaded", log.Fields{"file": file, "elements": len(doc.Elements)})
	return fmt.Sprintf("Project loaded from %s (%d elements)", file, len(doc.Elements)), nil
}

func handleProjectInfo(s *Session, cmd model.Command) (interface{}, error) {
	em := s.Elements
	return model.ProjectInfo{
		Title:    s.ProjectTitle,
		File:     s.ProjectFile,
		Canvas:   em.Canvas(),
		Zoom:     em.Zoom(),
		GridSize: em.GridSize(),
		Elements: em.Len(),
		Selected: em.SelectedID(),
		Undo:     em.HistoryPastLen(),
		Redo:     em.HistoryFutureLen(),
		NextID:   em.NextID(),
		Dirty:    em.Dirty(),
	}, nil
}

func handleProjectTitle(s *Session, cmd model.Command) (interface{}, error) {
	s.ProjectTitle = cmd.Args[0]
	return fmt.Sprintf("Project title set to %q", s.ProjectTitle), nil
}

func handleCanvasSize(s *Session, cmd model.Command) (interface{}, error) {
	w, errW := strconv.Atoi(cmd.Args[0])
	h, errH := strconv.Atoi(cmd.Args[1])
	if errW != nil || errH != nil || !s.Elements.CanvasSizeSet(w, h) {
		return nil, fmt.Errorf("invalid canvas size %sx%s", cmd.Args[0], cmd.Args[1])
	}
	return fmt.Sprintf("Canvas resized to %dx%d", w, h), nil
}

// handleCanvasMap sets the map image, sizing the canvas to it, or clears it.
func handleCanvasMap(s *Session, cmd model.Command) (interface{}, error) {
	if strings.EqualFold(cmd.Args[0], "clear") {
		s.Elements.MapImageClear()
		return "Map image cleared", nil
	}

	img, err := mapimage.Probe(cmd.Args[0])
	if err != nil {
		return nil, err
	}
	s.Elements.MapImageSet(img)
	return fmt.Sprintf("Map %s set, canvas %dx%d", img.FileName, img.Width, img.Height), nil
}

func handleCanvasZoom(s *Session, cmd model.Command) (interface{}, error) {
	if strings.EqualFold(cmd.Args[0], "reset") {
		s.Elements.ZoomReset()
	} else {
		z, err := parseFinite(cmd.Args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid zoom factor %q", cmd.Args[0])
		}
		s.Elements.ZoomSet(z)
	}
	return fmt.Sprintf("Zoom %d%%", int(s.Elements.Zoom()*100+0.5)), nil
}

func handleCanvasGrid(s *Session, cmd model.Command) (interface{}, error) {
	n, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid grid size %q", cmd.Args[0])
	}
	s.Elements.GridSizeSet(n)
	if s.Elements.GridSize() == 0 {
		return "Grid off", nil
	}
	return fmt.Sprintf("Grid %dpx", s.Elements.GridSize()), nil
}
