//go:build ebiten

// cmd/ringview/backend_ebiten.go
package main

import (
	"ringview/internal/backend/ebitenbackend"
	"ringview/internal/config"
	"ringview/internal/gfx"
)

func openWindow() (gfx.Window, error) {
	w, err := ebitenbackend.Open(ebitenbackend.Config{
		Width:      config.ScreenWidth,
		Height:     config.ScreenHeight,
		Title:      config.WindowTitle,
		TargetFPS:  config.TargetFPS,
		Background: config.BackgroundColor,
		Antialias:  config.Antialias,
		VSync:      config.VSync,
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}
