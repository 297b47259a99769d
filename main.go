package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/temidaradev/esset/v2"
	"golang.org/x/image/font/gofont/goregular"

	"cryptoview/internal/coinbase"
	"cryptoview/internal/config"
	"cryptoview/internal/market"
	"cryptoview/internal/poller"
	"cryptoview/internal/ui"
)

const baseFontSize = 12

const glyphsToPreload = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.,:/%$+-@() "

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("loading config: %v", err)
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if cfg.Logger.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	deviceScale := ebiten.Monitor().DeviceScaleFactor()
	scaledFontSize := baseFontSize * deviceScale
	fontFace, err := esset.GetFont(goregular.TTF, int(scaledFontSize))
	if err != nil {
		log.Fatalf("font could not be loaded with scaled size %f: %v", scaledFontSize, err)
	}

	tempImage := ebiten.NewImage(1, 1)
	text.Draw(tempImage, glyphsToPreload, fontFace, &text.DrawOptions{})

	lineHeight := scaledFontSize*1.5 + 5.0*deviceScale

	client := coinbase.NewClient(coinbase.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	})

	sel := market.Selection{CoinIndex: 0, Period: market.PeriodDay}

	var game *ui.Game
	p := poller.New(client, cfg.Poll.Interval, log, func(u poller.Update) {
		game.ApplyUpdate(u.Selection, u.Value, u.History)
	})
	game = ui.NewGame(ui.DefaultTheme(), fontFace, deviceScale, lineHeight, sel, p)

	if err := p.Start(sel); err != nil {
		log.Fatalf("starting poller: %v", err)
	}
	defer p.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Stop()
		os.Exit(0)
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
