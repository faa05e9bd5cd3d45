// cmd/maskstat/main.go
package main

import (
	"maskstat/internal/app"
	"maskstat/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
