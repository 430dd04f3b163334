// cmd/pickprimers/main.go
package main

import (
	"pickprimers/internal/app"
	"pickprimers/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
