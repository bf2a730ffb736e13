package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bochkarevko/timetable-bot/pkg/config"
	"github.com/bochkarevko/timetable-bot/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FetchDay loads one day for the profile. The spinner is drawn on stderr and
// only when stderr is a terminal, so stdout carries nothing but the caller's output.
func FetchDay(cfg *config.AppConfig, day string, profile timetable.Profile) ([]timetable.Lesson, error) {
	client := timetable.NewClient(cfg.BaseURL)

	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return client.FetchDay(context.Background(), day, profile)
	}

	var lessons []timetable.Lesson
	var err error
	fetched := false

	spinErr := spinner.New().
		Output(os.Stderr).
		Title(fmt.Sprintf("Fetching timetable for %s...", cases.Title(language.English).String(day))).
		Action(func() {
			lessons, err = client.FetchDay(context.Background(), day, profile)
			fetched = true
		}).
		Run()

	if err == nil && spinErr != nil {
		return nil, fmt.Errorf("spinner failed: %w", spinErr)
	}
	if err == nil && !fetched {
		return nil, fmt.Errorf("timetable for %q was not fetched", day)
	}

	return lessons, err
}

// RunDayTUI asks for a weekday and prints its lessons for the saved profile
func RunDayTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	day := timetable.DayOf(time.Now().In(loc))
	title := cases.Title(language.English)

	var options []huh.Option[string]
	for _, d := range timetable.Weekdays {
		options = append(options, huh.NewOption(title.String(d), d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Выберите день").
				Options(options...).
				Value(&day),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	lessons, err := FetchDay(cfg, day, cfg.Profile())
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Не удалось получить расписание: %v", err)))
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n%s", title.String(day))))
	fmt.Println(timetable.PrintDay(lessons))
	return nil
}

// RunNextLessonTUI prints today's next lesson
func RunNextLessonTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	lessons, err := FetchDay(cfg, timetable.DayOf(now), cfg.Profile())
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Не удалось получить расписание: %v", err)))
		return err
	}

	next, ok := timetable.NextLesson(lessons, now)
	if !ok {
		fmt.Println(mutedStyle.Render("Сегодня больше нет пар 🏖️"))
		return nil
	}

	fmt.Println(accentStyle.Render("Следующая пара:"))
	fmt.Println(next.Render())
	return nil
}
