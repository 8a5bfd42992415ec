package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sethks/ground-item-organizer/internal/config"
	"github.com/sethks/ground-item-organizer/internal/ui"
)

// Run bootstraps and executes the Bubble Tea program. When a profile path is
// configured, a watcher feeds configuration changes into the simulator for
// the plugin's lifetime.
func Run(cfg config.Config) error {
	var watcher *config.Watcher
	if cfg.Profile != "" {
		w, err := config.NewWatcher(cfg.Profile, 250*time.Millisecond)
		if err != nil {
			return fmt.Errorf("watch profile: %w", err)
		}
		watcher = w
		defer watcher.Stop()
	}
	model := ui.NewModel(cfg, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
