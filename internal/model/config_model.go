package model

// Config represents the configuration settings for the application.
type Config struct {
	CanvasWidth  int    `json:"canvas_width"`
	CanvasHeight int    `json:"canvas_height"`
	HistoryLimit int    `json:"history_limit"`
	ProjectDir   string `json:"project_dir"`
	DatabaseDir  string `json:"database_dir"`
	DatabaseFile string `json:"database_file"`
	HistoryFile  string `json:"history_file"`
	LogFolder    string `json:"log_folder"`
	LogLevel     string `json:"log_level"`
	CommandLog   string `json:"command_log"`
	ErrorLog     string `json:"error_log"`
	InfoLog      string `json:"info_log"`
}
