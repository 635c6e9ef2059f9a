// cmd/main.go
package main

import (
	"go-bank-client/app"
)

func main() {
	app.Run()
}
