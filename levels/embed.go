package levels

import "embed"

//go:embed *.json *.tmx
var LevelsFS embed.FS
