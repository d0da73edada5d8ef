package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"

	"lingobot/internal/domain"
	"lingobot/internal/domain/entities"
)

func languages(n int) []entities.LanguageOption {
	out := make([]entities.LanguageOption, n)
	for i := range out {
		out[i] = entities.LanguageOption{Code: fmt.Sprintf("l%d", i), Name: fmt.Sprintf("Lang %03d", i)}
	}
	return out
}

func TestLanguageMenus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        int
		rows     int
		overflow int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{25, 1, 0},
		{26, 2, 0},
		{125, 5, 0},
		{133, 5, 8},
	}
	for _, tt := range tests {
		rows, overflow := LanguageMenus(languages(tt.n), "Choose")
		if len(rows) != tt.rows || overflow != tt.overflow {
			t.Errorf("n=%d: got %d rows / %d overflow, want %d / %d", tt.n, len(rows), overflow, tt.rows, tt.overflow)
		}
	}
}

func TestLanguageMenus_Content(t *testing.T) {
	t.Parallel()

	rows, _ := LanguageMenus([]entities.LanguageOption{{Code: "es", Name: "Spanish"}}, "Choose")
	row, ok := rows[0].(discordgo.ActionsRow)
	if !ok || len(row.Components) != 1 {
		t.Fatalf("unexpected row %#v", rows[0])
	}
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	if !ok {
		t.Fatalf("unexpected component %#v", row.Components[0])
	}
	if menu.CustomID != SelectLanguagePrefix+"0" {
		t.Errorf("unexpected custom ID %q", menu.CustomID)
	}
	if len(menu.Options) != 1 || menu.Options[0].Value != "es" || menu.Options[0].Label != "Spanish" {
		t.Errorf("unexpected options %+v", menu.Options)
	}
}

func TestReadAloud(t *testing.T) {
	t.Parallel()

	row := ReadAloudRow("abc-123", "Read aloud").(discordgo.ActionsRow)
	button := row.Components[0].(discordgo.Button)

	id, ok := ReadAloudTarget(button.CustomID)
	if !ok || id != "abc-123" {
		t.Errorf("ReadAloudTarget(%q) = %q, %v", button.CustomID, id, ok)
	}
	if _, ok := ReadAloudTarget(ReadAloudPrefix); ok {
		t.Error("empty ID should not match")
	}
	if _, ok := ReadAloudTarget("btn_join"); ok {
		t.Error("foreign ID should not match")
	}
}

func TestFilterLanguages(t *testing.T) {
	t.Parallel()

	options := []entities.LanguageOption{
		{Code: "eo", Name: "Esperanto"},
		{Code: "es", Name: "Spanish"},
		{Code: "et", Name: "Estonian"},
		{Code: "ne", Name: "Nepali"},
	}

	tests := []struct {
		query string
		limit int
		want  []string
	}{
		{"es", 25, []string{"es", "eo", "et"}},
		{"SPAN", 25, []string{"es"}},
		{"", 2, []string{"eo", "es"}},
		{"zz", 25, nil},
	}
	for _, tt := range tests {
		got := FilterLanguages(options, tt.query, tt.limit)
		if len(got) != len(tt.want) {
			t.Errorf("%q: got %+v, want %v", tt.query, got, tt.want)
			continue
		}
		for i, code := range tt.want {
			if got[i].Code != code {
				t.Errorf("%q[%d]: got %s, want %s", tt.query, i, got[i].Code, code)
			}
		}
	}
}

func TestLanguageChoices(t *testing.T) {
	t.Parallel()

	choices := LanguageChoices([]entities.LanguageOption{{Code: "es", Name: "Spanish"}})
	if len(choices) != 1 || choices[0].Name != "Spanish (es)" || choices[0].Value != "es" {
		t.Errorf("unexpected choices %+v", choices)
	}
}

func TestNoticeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{domain.ErrEmptyText, "input.empty"},
		{domain.ErrRecognitionUnavailable, "speech.unsupported"},
		{fmt.Errorf("%w: no-speech", domain.ErrRecognitionFailed), "speech.failed"},
		{fmt.Errorf("wrapped: %w", domain.ErrMessageNotFound), "message.missing"},
		{domain.ErrLanguageNotSelected, ""},
		{errors.New("other"), ""},
	}
	for _, tt := range tests {
		if got := NoticeKey(tt.err); got != tt.want {
			t.Errorf("NoticeKey(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
