package config

import "github.com/jainabhishek2004/Canvas-Drawing-App/internal/history"

// Base application details
const AppName = "canvasdraw"
const DefaultConfigFileName = "config.toml"

// Canvas defaults
const DefaultWidth = 1024
const DefaultHeight = 768
const DefaultHistoryLimit = history.DefaultLimit
const DefaultBackground = "#ffffff"

// Tool defaults
const DefaultTool = "pen"
const DefaultColor = "#000000"
const DefaultStrokeWidth = 3.0
