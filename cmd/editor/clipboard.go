package main

import (
	"log"

	"golang.design/x/clipboard"
)

// initClipboard reports whether the system clipboard can be used. Headless
// and some Linux sessions have none; exports then go to stdout or -out.
func initClipboard() bool {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return false
	}
	return true
}

func copyToClipboard(s string) {
	clipboard.Write(clipboard.FmtText, []byte(s))
}
