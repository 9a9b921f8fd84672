package model

// ProjectVersion is the document version written by export.
const ProjectVersion = "1.0"

// Project is the persisted form of the editor state.
type Project struct {
	Version  string        `json:"version"`
	Meta     ProjectMeta   `json:"meta"`
	Canvas   ProjectCanvas `json:"canvas"`
	Elements []Element     `json:"elements"`
}

// ProjectMeta holds descriptive document metadata.
type ProjectMeta struct {
	Title          string `json:"title"`
	Created        string `json:"created"`
	Classification string `json:"classification"`
}

// ProjectCanvas holds the canvas dimensions and the map reference.
type ProjectCanvas struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MapFileName string `json:"mapFileName"`
}

// Canvas describes the live canvas of an element store.
type Canvas struct {
	Width       int
	Height      int
	MapFileName string
	MapPath     string
}

// MapImage references a user supplied map image and its pixel size.
type MapImage struct {
	FileName string
	Path     string
	Width    int
	Height   int
}

// ProjectInfo summarises a session's editor state for display.
type ProjectInfo struct {
	Title    string
	File     string
	Canvas   Canvas
	Zoom     float64
	GridSize int
	Elements int
	Selected string
	Undo     int
	Redo     int
	NextID   int
	Dirty    bool
}
