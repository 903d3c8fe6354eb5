package main

import (
	"collabBoard/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
