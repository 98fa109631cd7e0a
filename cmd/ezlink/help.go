package ezlink

import "embed"

// topicFiles are the documents served by "ezlink help <topic>"
//
//go:embed topics/*.md
var topicFiles embed.FS
