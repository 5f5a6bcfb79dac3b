package ui

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/Tomas-vilte/MateNotes/internal/errors"
	"github.com/Tomas-vilte/MateNotes/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	// Emojis with colors
	MateEmoji    = "🧉"
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	NotesEmoji   = Accent.Sprint("📝")
)

// SmartSpinner is a spinner with enhanced capabilities
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+MateEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

// Log prints a message above the spinner without killing the animation.
func (s *SmartSpinner) Log(msg string) {
	s.spinner.Stop()
	fmt.Printf("%s %s\n", InfoEmoji, msg)
	s.spinner.Start()
}

// UpdateMessage replaces the spinner suffix with a new message.
func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + MateEmoji + " " + msg
}

// Success stops the spinner and prints a success message.
func (s *SmartSpinner) Success(msg string) {
	s.spinner.Stop()
	fmt.Printf("%s %s\n", SuccessEmoji, msg)
}

// Error stops the spinner and prints an error message.
func (s *SmartSpinner) Error(msg string) {
	s.spinner.Stop()
	fmt.Printf("%s %s\n", Error.Sprint("❌"), msg)
}

// PrintError prints an error with its suggestion when it is an AppError.
func PrintError(err error) {
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintf(os.Stderr, "%s %s\n", Error.Sprint("❌"), appErr.Message)
		if appErr.Err != nil {
			fmt.Fprintf(os.Stderr, "   %s\n", Dim.Sprint(appErr.Err.Error()))
		}
		if appErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "%s %s\n", InfoEmoji, appErr.Suggestion)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", Error.Sprint("❌"), err.Error())
}

// AskToken prompts the user for a GitHub token on stdin.
func AskToken(trans *i18n.Translations) string {
	fmt.Print(trans.GetMessage("prompt.enter_token", 0, nil))
	reader := bufio.NewReader(os.Stdin)
	token, _ := reader.ReadString('\n')
	return strings.TrimSpace(token)
}
