package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gofinances/internal/client/models"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseAmount accepts both "1234.5" and the Brazilian "1.234,50".
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// parseType maps user shorthands to a transaction type. Anything else is
// returned as typed so validation can report it.
func parseType(s string) models.TransactionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i", "in", "income", "+", "positive":
		return models.TransactionPositive
	case "o", "out", "outcome", "-", "negative":
		return models.TransactionNegative
	default:
		return models.TransactionType(s)
	}
}

// parseCategory accepts a 1-based position in models.Categories or a key.
func parseCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(models.Categories) {
		return models.Categories[n-1].Key
	}
	return s
}
