package pihello

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicFiles embed.FS

func helpTopics() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil
	}
	return sub
}
