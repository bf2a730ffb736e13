package tui

import (
	"fmt"

	"github.com/bochkarevko/timetable-bot/pkg/config"

	"github.com/charmbracelet/huh"
)

// RunProfileTUI edits the saved enrollment tracks and the service address.
// Leaving a track empty shows lessons of every section in that track.
func RunProfileTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Группа").
				Description("Пусто, если не важно").
				Value(&cfg.Group),
			huh.NewInput().
				Title("Алгоритмы").
				Value(&cfg.Algorithms),
			huh.NewInput().
				Title("Комбинаторика").
				Value(&cfg.Combinatorics),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Адрес сервиса расписания").
				Value(&cfg.BaseURL).
				Validate(func(s string) error {
					probe := *cfg
					probe.BaseURL = s
					return probe.Validate()
				}),
			huh.NewInput().
				Title("Цвет акцента (ANSI или #hex)").
				Value(&cfg.AccentColor),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Настройки сохранены"))
	fmt.Printf("Группа: %s\n", orDash(cfg.Group))
	fmt.Printf("Алгоритмы: %s\n", orDash(cfg.Algorithms))
	fmt.Printf("Комбинаторика: %s\n", orDash(cfg.Combinatorics))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
