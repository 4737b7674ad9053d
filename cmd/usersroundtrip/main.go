// Command usersroundtrip writes a fixed list of users to backend/users.json,
// reads the file back and prints the decoded list.
//
// Any failure aborts the program with a panic.
package main

import (
	"context"

	"github.com/patric-chuzhbe/usersroundtrip/internal/app"
)

func main() {
	theApp, err := app.New()
	if err != nil {
		panic(err)
	}
	defer theApp.Close()

	if err := theApp.Run(context.Background()); err != nil {
		panic(err)
	}
}
