// Package presenter renders tracked secrets for people or for other programs.
package presenter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PolarWolf314/saas-template-companion/internal/envfile"
	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"
	"github.com/PolarWolf314/saas-template-companion/internal/keys"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Variable is the machine-readable form of one tracked secret.
type Variable struct {
	Slot    string `json:"slot,omitempty"`
	EnvName string `json:"env_name"`
	Value   string `json:"value"`
	Written bool   `json:"written"`
}

// Document is the top-level JSON object.
type Document struct {
	Variables []Variable `json:"variables"`
}

// Render writes set to w in the given format.
func Render(w io.Writer, set *envfile.Set, format string) error {
	switch format {
	case FormatTable, "":
		return Table(w, set)
	case FormatJSON:
		return JSON(w, set)
	default:
		return fmt.Errorf("%w: %q (expected %s or %s)", kerrors.ErrUnknownFormat, format, FormatTable, FormatJSON)
	}
}

// Table writes a two-column table of names and values.
func Table(w io.Writer, set *envfile.Set) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Environment variable name", "Value").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range set.Records() {
		t.Row(r.Name(), r.Value())
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// NewDocument converts set into its JSON document, preserving order.
func NewDocument(set *envfile.Set) Document {
	doc := Document{Variables: make([]Variable, 0, set.Len())}
	for _, r := range set.Records() {
		doc.Variables = append(doc.Variables, Variable{
			Slot:    keys.SlotFor(r.Name()),
			EnvName: r.Name(),
			Value:   r.Value(),
			Written: r.Written(),
		})
	}
	return doc
}

// JSON writes set as an indented JSON document.
func JSON(w io.Writer, set *envfile.Set) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(set))
}
