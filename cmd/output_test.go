package cmd

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	lnkerrors "github.com/yarlson/lnkname/internal/errors"
	"github.com/yarlson/lnkname/internal/name"
)

func TestOutputConfig(t *testing.T) {
	tests := []struct {
		name           string
		colors         string
		emoji          bool
		expectError    bool
		expectedColors bool
		expectedEmoji  bool
	}{
		{
			name:           "auto mode",
			colors:         "auto",
			emoji:          true,
			expectError:    false,
			expectedColors: false, // TTY detection will return false in tests
			expectedEmoji:  true,
		},
		{
			name:           "always mode",
			colors:         "always",
			emoji:          false,
			expectError:    false,
			expectedColors: true,
			expectedEmoji:  false,
		},
		{
			name:           "never mode",
			colors:         "never",
			emoji:          true,
			expectError:    false,
			expectedColors: false,
			expectedEmoji:  true,
		},
		{
			name:        "invalid mode",
			colors:      "invalid",
			emoji:       true,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear NO_COLOR for consistent testing
			_ = os.Unsetenv("NO_COLOR")

			err := SetGlobalConfig(tt.colors, tt.emoji)

			if tt.expectError && err == nil {
				t.Errorf("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if !tt.expectError {
				if globalConfig.Colors != tt.expectedColors {
					t.Errorf("expected colors %v, got %v", tt.expectedColors, globalConfig.Colors)
				}
				if globalConfig.Emoji != tt.expectedEmoji {
					t.Errorf("expected emoji %v, got %v", tt.expectedEmoji, globalConfig.Emoji)
				}
			}
		})
	}
}

func TestNOCOLOREnvironmentVariable(t *testing.T) {
	// Test NO_COLOR environment variable with auto mode
	_ = os.Setenv("NO_COLOR", "1")
	defer func() { _ = os.Unsetenv("NO_COLOR") }()

	err := SetGlobalConfig("auto", true)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if globalConfig.Colors != false {
		t.Errorf("expected colors disabled when NO_COLOR is set, got %v", globalConfig.Colors)
	}
}

func TestWriterOutput(t *testing.T) {
	tests := []struct {
		name           string
		config         OutputConfig
		message        Message
		expectedOutput string
	}{
		{
			name:   "full formatting",
			config: OutputConfig{Colors: true, Emoji: true},
			message: Message{
				Text:  "test message",
				Color: ColorRed,
				Emoji: "✅",
				Bold:  true,
			},
			expectedOutput: "✅ \033[1m\033[31mtest message\033[0m",
		},
		{
			name:   "colors only",
			config: OutputConfig{Colors: true, Emoji: false},
			message: Message{
				Text:  "test message",
				Color: ColorRed,
				Emoji: "✅",
				Bold:  true,
			},
			expectedOutput: "\033[1m\033[31mtest message\033[0m",
		},
		{
			name:   "emoji only",
			config: OutputConfig{Colors: false, Emoji: true},
			message: Message{
				Text:  "test message",
				Color: ColorRed,
				Emoji: "✅",
				Bold:  true,
			},
			expectedOutput: "✅ test message",
		},
		{
			name:   "no formatting",
			config: OutputConfig{Colors: false, Emoji: false},
			message: Message{
				Text:  "test message",
				Color: ColorRed,
				Emoji: "✅",
				Bold:  true,
			},
			expectedOutput: "test message",
		},
		{
			name:           "plain message",
			config:         OutputConfig{Colors: true, Emoji: true},
			message:        Plain("plain text"),
			expectedOutput: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writer := NewWriter(&buf, tt.config)

			writer.Write(tt.message)
			if err := writer.Err(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if buf.String() != tt.expectedOutput {
				t.Errorf("expected %q, got %q", tt.expectedOutput, buf.String())
			}
		})
	}
}

func TestPredefinedMessages(t *testing.T) {
	tests := []struct {
		name    string
		creator func(string) Message
		text    string
	}{
		{"Success", Success, "operation succeeded"},
		{"Error", Error, "something failed"},
		{"Info", Info, "useful information"},
		{"Link", Link, "ou=people/cn=john"},
		{"Plain", Plain, "no formatting"},
	}

	var buf bytes.Buffer
	writer := NewWriter(&buf, OutputConfig{Colors: true, Emoji: true})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			msg := tt.creator(tt.text)

			writer.Write(msg)
			if err := writer.Err(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			output := buf.String()
			if !strings.Contains(output, tt.text) {
				t.Errorf("output should contain text %q, got %q", tt.text, output)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		config      OutputConfig
		contains    []string
		notContains []string
	}{
		{
			name:     "missing document with full formatting",
			err:      &lnkerrors.FileNotExistsError{Path: "/some/path.json", Err: os.ErrNotExist},
			config:   OutputConfig{Colors: true, Emoji: true},
			contains: []string{"❌", "/some/path.json", "💡", "stdin"},
		},
		{
			name:        "invalid name without emojis",
			err:         &lnkerrors.InvalidNameError{Name: `a\`, Err: name.ErrBadName},
			config:      OutputConfig{Colors: false, Emoji: false},
			contains:    []string{"Invalid composite name", "escape"},
			notContains: []string{"❌", "💡", "\033["},
		},
		{
			name:     "decode error shows cause",
			err:      &lnkerrors.DocumentDecodeError{Source: "-", Err: errors.New("unexpected token")},
			config:   OutputConfig{Colors: false, Emoji: true},
			contains: []string{"❌", "document from -", "unexpected token"},
		},
		{
			name:        "plain error",
			err:         errors.New("something went wrong"),
			config:      OutputConfig{Colors: false, Emoji: false},
			contains:    []string{"something went wrong"},
			notContains: []string{"💡"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, tt.config)

			writeError(w, tt.err)

			output := buf.String()
			for _, expected := range tt.contains {
				if !strings.Contains(output, expected) {
					t.Errorf("output should contain %q, got %q", expected, output)
				}
			}
			for _, notExpected := range tt.notContains {
				if strings.Contains(output, notExpected) {
					t.Errorf("output should not contain %q, got %q", notExpected, output)
				}
			}
		})
	}
}
