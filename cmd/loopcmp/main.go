// cmd/loopcmp/main.go
package main

import (
	"loopcmp/internal/app"
	"loopcmp/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
