package ui

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colores para los distintos tipos de mensaje
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	MateEmoji    = "🧉"
	SuccessEmoji = Success.Sprint("✅")
	ErrorEmoji   = Error.Sprint("❌")
	ChatEmoji    = Accent.Sprint("💬")
)

// SmartSpinner es un spinner con mensajes de estado
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner crea un spinner con un mensaje inicial
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

// Log pausa el spinner, imprime el mensaje y lo reanuda
func (s *SmartSpinner) Log(message string) {
	s.spinner.Stop()
	Dim.Println("  " + message)
	s.spinner.Start()
}

func (s *SmartSpinner) Success(message string) {
	s.spinner.Stop()
	Success.Printf("%s %s\n", SuccessEmoji, message)
}

func (s *SmartSpinner) Error(message string) {
	s.spinner.Stop()
	Error.Printf("%s %s\n", ErrorEmoji, message)
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}
