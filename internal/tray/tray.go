// Package tray shows a Windows notification-area icon with shortcuts to the
// status page and to a clean shutdown.
package tray

import (
	"log"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"fyne.io/systray"
)

// ShutdownFunc is called when "Exit" is clicked
type ShutdownFunc func()

// Tray manages the system tray icon and menu
type Tray struct {
	url          string
	shutdownFunc ShutdownFunc
	once         sync.Once
	shuttingDown atomic.Bool
	menuOpen     *systray.MenuItem
	menuExit     *systray.MenuItem
}

// New creates a tray. url is the status page; empty when the server is disabled.
func New(url string, shutdownFn ShutdownFunc) *Tray {
	return &Tray{
		url:          url,
		shutdownFunc: shutdownFn,
	}
}

// StatusURL turns a listen address such as ":8080" into a browsable URL.
func StatusURL(addr string) string {
	if addr == "" {
		return ""
	}
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

// Run initializes and runs the system tray (blocks until Quit())
func (t *Tray) Run(iconData []byte) {
	systray.Run(func() {
		t.onReady(iconData)
	}, func() {
		t.onExit()
	})
}

func (t *Tray) tooltip() string {
	if t.url == "" {
		return "padlink"
	}
	return "padlink - " + t.url
}

func (t *Tray) onReady(iconData []byte) {
	if iconData != nil {
		systray.SetIcon(iconData)
	}
	systray.SetTitle("padlink")
	systray.SetTooltip(t.tooltip())

	t.menuOpen = systray.AddMenuItem("Open Status Page", "Open the status page in a browser")
	if t.url == "" {
		t.menuOpen.Disable()
	}
	t.menuExit = systray.AddMenuItem("Exit", "Zero the actuator and quit")

	go t.handleMenuClicks()

	log.Println("System tray initialized")
}

func (t *Tray) handleMenuClicks() {
	for {
		select {
		case <-t.menuOpen.ClickedCh:
			if !t.shuttingDown.Load() {
				t.openBrowser()
			}
		case <-t.menuExit.ClickedCh:
			if t.shuttingDown.CompareAndSwap(false, true) {
				t.once.Do(t.shutdownFunc)
				systray.Quit()
				return
			}
		}
	}
}

func (t *Tray) onExit() {
	t.shuttingDown.Store(true)
	log.Println("System tray exiting")
}

func (t *Tray) openBrowser() {
	if t.shuttingDown.Load() || t.url == "" {
		return
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", t.url)
	case "darwin":
		cmd = exec.Command("open", t.url)
	default:
		cmd = exec.Command("xdg-open", t.url)
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Failed to open browser: %v", err)
	}
}
